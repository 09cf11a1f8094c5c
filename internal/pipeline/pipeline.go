// Package pipeline orchestrates extraction strategies around the parsing
// engine. The fallback chain (text layer, then OCR, then give up) is an
// explicit ordered list of strategies with three-valued outcomes, not a
// nest of swallowed errors: the next strategy runs only when the current
// one came up empty or its pages yielded zero transactions, while a hard
// failure surfaces immediately.
package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/insightdelivered/statement-extractor/internal/extractor"
	"github.com/insightdelivered/statement-extractor/internal/models"
	"github.com/insightdelivered/statement-extractor/internal/parser"
)

// Status is the outcome of one extraction strategy.
type Status int

const (
	// StatusOK means the strategy produced pages worth parsing.
	StatusOK Status = iota
	// StatusEmpty means the strategy ran but has nothing to offer
	// (unreadable text, tooling not installed). The chain moves on.
	StatusEmpty
	// StatusFailed means a hard error: the document itself could not
	// be processed. The chain stops and the error surfaces.
	StatusFailed
)

// Strategy is one way of turning a document into pages.
type Strategy interface {
	Name() string
	Extract(path string) ([]models.Page, Status, error)
}

// imageExts are the image statement formats handed straight to OCR.
var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".tiff": true, ".bmp": true,
}

// Pipeline runs a document end to end: strategies in order, each
// strategy's pages through the engine, first non-empty transaction set
// wins. It holds no per-document state and is safe to reuse.
type Pipeline struct {
	engine     *parser.Engine
	strategies []Strategy
}

// New builds the default pipeline: PDF text layer first, OCR second.
func New(engine *parser.Engine) *Pipeline {
	return &Pipeline{
		engine:     engine,
		strategies: []Strategy{textStrategy{}, ocrStrategy{}},
	}
}

// NewWithStrategies builds a pipeline over a caller-supplied chain.
func NewWithStrategies(engine *parser.Engine, strategies ...Strategy) *Pipeline {
	return &Pipeline{engine: engine, strategies: strategies}
}

// ProcessFile extracts and parses one document. PDF inputs run the
// strategy chain; image inputs go straight to OCR. The returned
// statement may legitimately contain zero transactions.
func (p *Pipeline) ProcessFile(path string) (*models.Statement, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".pdf":
		return p.run(path)
	case imageExts[ext]:
		text, err := extractor.ExtractImageOCR(path)
		if err != nil {
			return nil, fmt.Errorf("image ocr: %w", err)
		}
		return p.engine.Parse([]models.Page{{Text: text}}), nil
	default:
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}
}

// ProcessPages parses pages extracted elsewhere (for example text the
// caller already pulled out of the document client-side).
func (p *Pipeline) ProcessPages(pages []models.Page) *models.Statement {
	return p.engine.Parse(pages)
}

func (p *Pipeline) run(path string) (*models.Statement, error) {
	// Keeps the metadata of an earlier strategy that parsed cleanly
	// but found no transactions.
	last := &models.Statement{Transactions: []models.TransactionRecord{}}

	for _, s := range p.strategies {
		pages, status, err := s.Extract(path)
		switch status {
		case StatusFailed:
			return nil, fmt.Errorf("%s extraction: %w", s.Name(), err)
		case StatusEmpty:
			slog.Debug("strategy produced no pages", "strategy", s.Name(), "reason", err)
			continue
		}

		st := p.engine.Parse(pages)
		if len(st.Transactions) > 0 {
			slog.Info("document parsed", "strategy", s.Name(), "transactions", len(st.Transactions))
			return st, nil
		}
		slog.Debug("strategy pages held no transactions", "strategy", s.Name())
		last = st
	}

	// Exhausted. No transactions found is a reportable outcome, not an
	// error.
	return last, nil
}

// textStrategy reads the document's text layer.
type textStrategy struct{}

func (textStrategy) Name() string { return "text" }

func (textStrategy) Extract(path string) ([]models.Page, Status, error) {
	texts, err := extractor.ExtractText(path)
	if err != nil {
		if errors.Is(err, extractor.ErrNoText) {
			return nil, StatusEmpty, err
		}
		return nil, StatusFailed, err
	}
	return textPages(texts), StatusOK, nil
}

// ocrStrategy renders pages to images and recognizes them.
type ocrStrategy struct{}

func (ocrStrategy) Name() string { return "ocr" }

func (ocrStrategy) Extract(path string) ([]models.Page, Status, error) {
	texts, err := extractor.ExtractTextOCR(path)
	if err != nil {
		if errors.Is(err, extractor.ErrToolMissing) || errors.Is(err, extractor.ErrNoText) {
			return nil, StatusEmpty, err
		}
		return nil, StatusFailed, err
	}
	return textPages(texts), StatusOK, nil
}

func textPages(texts []string) []models.Page {
	pages := make([]models.Page, len(texts))
	for i, t := range texts {
		pages[i] = models.Page{Text: t}
	}
	return pages
}
