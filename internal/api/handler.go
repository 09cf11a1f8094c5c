// Package api exposes the extraction pipeline over HTTP.
package api

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/insightdelivered/statement-extractor/internal/models"
	"github.com/insightdelivered/statement-extractor/internal/parser"
	"github.com/insightdelivered/statement-extractor/internal/pipeline"
	"github.com/insightdelivered/statement-extractor/internal/writer"
)

const version = "1.0.0"

// pageBreak separates pages in client-side pre-extracted text.
const pageBreak = "\n---PAGE_BREAK---\n"

var defaultPipeline = pipeline.New(parser.New())

// ExtractResponse is the JSON body of POST /api/extract.
type ExtractResponse struct {
	Success      bool                       `json:"success"`
	Error        string                     `json:"error,omitempty"`
	Meta         *models.StatementMeta      `json:"meta,omitempty"`
	Transactions []models.TransactionRecord `json:"transactions"`
	CSV          string                     `json:"csv,omitempty"`
	TotalDebit   decimal.Decimal            `json:"totalDebit"`
	TotalCredit  decimal.Decimal            `json:"totalCredit"`
	Count        int                        `json:"count"`
	Version      string                     `json:"version,omitempty"`
}

// NewApp builds the fiber application with all routes registered.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: 32 << 20,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	Register(app)
	return app
}

// Register mounts the API routes on an existing app.
func Register(app *fiber.App) {
	app.Get("/api/health", HandleHealth)
	app.Post("/api/extract", HandleExtract)
}

// HandleHealth reports liveness.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"engine":  "fiber",
		"version": version,
	})
}

// HandleExtract accepts a statement upload (multipart field "file"), or
// pre-extracted text in the "extractedText" form value, and returns the
// structured result plus a rendered CSV. Form value "meta" set to
// "false" drops metadata rows from the CSV.
func HandleExtract(c *fiber.Ctx) error {
	includeMeta := c.FormValue("meta") != "false"

	st, status, err := extractStatement(c)
	if err != nil {
		return writeError(c, status, err.Error())
	}

	var csvBuf bytes.Buffer
	cw := &writer.CSVWriter{IncludeMeta: includeMeta}
	if err := cw.Write(&csvBuf, st); err != nil {
		return writeError(c, fiber.StatusInternalServerError, fmt.Sprintf("CSV generation failed: %v", err))
	}

	totalDebit, totalCredit := totals(st.Transactions)

	resp := ExtractResponse{
		Success:      true,
		Transactions: st.Transactions,
		CSV:          csvBuf.String(),
		TotalDebit:   totalDebit,
		TotalCredit:  totalCredit,
		Count:        len(st.Transactions),
		Version:      version,
	}
	if !st.Meta.IsEmpty() {
		meta := st.Meta
		resp.Meta = &meta
	}
	return c.JSON(resp)
}

// extractStatement picks the input source: client-side extracted text
// wins over a server-side parse of the uploaded file.
func extractStatement(c *fiber.Ctx) (*models.Statement, int, error) {
	if text := c.FormValue("extractedText"); text != "" {
		var pages []models.Page
		for _, p := range strings.Split(text, pageBreak) {
			if p = strings.TrimSpace(p); p != "" {
				pages = append(pages, models.Page{Text: p})
			}
		}
		return defaultPipeline.ProcessPages(pages), fiber.StatusOK, nil
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return nil, fiber.StatusBadRequest, fmt.Errorf("no file uploaded; use form field %q", "file")
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	tmp, err := os.CreateTemp("", "statement-*"+ext)
	if err != nil {
		return nil, fiber.StatusInternalServerError, fmt.Errorf("creating temp file: %w", err)
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	if err := c.SaveFile(fh, tmp.Name()); err != nil {
		return nil, fiber.StatusInternalServerError, fmt.Errorf("saving upload: %w", err)
	}

	st, err := defaultPipeline.ProcessFile(tmp.Name())
	if err != nil {
		return nil, fiber.StatusUnprocessableEntity, fmt.Errorf("extraction failed: %w", err)
	}
	return st, fiber.StatusOK, nil
}

func totals(txns []models.TransactionRecord) (debit, credit decimal.Decimal) {
	for _, t := range txns {
		if t.Debit != nil {
			debit = debit.Add(*t.Debit)
		}
		if t.Credit != nil {
			credit = credit.Add(*t.Credit)
		}
	}
	return debit, credit
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ExtractResponse{
		Success:      false,
		Error:        msg,
		Transactions: []models.TransactionRecord{},
	})
}
