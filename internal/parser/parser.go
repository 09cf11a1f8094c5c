// Package parser turns extracted statement pages into normalized
// transaction records. It recognizes transaction-bearing lines and table
// rows, normalizes date and amount tokens, maps arbitrary column headers
// to canonical roles, and hands each accepted record to the classifier.
package parser

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

// Engine is the parsing and classification engine. It is stateless
// across documents and safe to share: all rule tables are read-only.
type Engine struct {
	policy   Policy
	amountRe *regexp.Regexp
}

// New returns an engine with the default layout policy.
func New() *Engine {
	return NewWithPolicy(DefaultPolicy())
}

// NewWithPolicy returns an engine using a custom layout policy.
func NewWithPolicy(p Policy) *Engine {
	if p.MaxPlainDigits <= 0 {
		p.MaxPlainDigits = DefaultPolicy().MaxPlainDigits
	}
	return &Engine{policy: p, amountRe: amountPattern(p.MaxPlainDigits)}
}

// Parse runs the full pipeline over a document's pages: a first-wins
// metadata pass plus per-page transaction extraction. The result always
// carries a non-nil transaction slice; a document yielding zero
// transactions is a valid outcome, not an error.
func (e *Engine) Parse(pages []models.Page) *models.Statement {
	st := &models.Statement{Transactions: []models.TransactionRecord{}}

	for i, page := range pages {
		if strings.TrimSpace(page.Text) != "" {
			mergeMeta(&st.Meta, ExtractMeta(page.Text))
		}
		recs := e.parsePage(page, i)
		st.Transactions = append(st.Transactions, recs...)
		slog.Debug("parsed page", "page", i, "records", len(recs))
	}

	slog.Debug("parsed document", "pages", len(pages), "records", len(st.Transactions))
	return st
}

// parsePage extracts one page. An explicit table from the upstream
// extractor takes priority; otherwise the text is probed for a column
// grid and finally parsed line by line. A detected grid that produces
// nothing falls back to line mode rather than dropping the page.
func (e *Engine) parsePage(page models.Page, idx int) []models.TransactionRecord {
	if len(page.Table) > 0 {
		return e.parseTable(page.Table, idx)
	}
	if strings.TrimSpace(page.Text) == "" {
		return nil
	}
	if grid := DetectGrid(page.Text); grid != nil {
		if recs := e.parseTable(grid, idx); len(recs) > 0 {
			return recs
		}
	}
	return e.parseLines(page.Text, idx)
}

// parseLines runs line-mode extraction over every line of a text page.
// Lines that do not qualify are skipped without comment.
func (e *Engine) parseLines(text string, page int) []models.TransactionRecord {
	var records []models.TransactionRecord
	for _, line := range strings.Split(text, "\n") {
		if rec, ok := e.parseLine(line, page); ok {
			records = append(records, rec)
		}
	}
	return records
}
