// Package writer encodes the extraction result for downstream consumers.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

// csvColumns is the fixed output column order. Consumers key on it, so
// it never changes.
var csvColumns = []string{
	"date", "description", "debit", "credit", "balance",
	"direction", "category", "counterparty_account",
	"counterparty_name", "source_page",
}

// CSVWriter writes a statement as CSV, optionally with metadata rows
// ahead of the column header.
type CSVWriter struct {
	IncludeMeta bool
}

// WriteToFile writes the statement to a CSV file at path.
func (w *CSVWriter) WriteToFile(path string, st *models.Statement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %q: %w", path, err)
	}
	defer f.Close()
	return w.Write(f, st)
}

// Write writes the statement as CSV to out.
func (w *CSVWriter) Write(out io.Writer, st *models.Statement) error {
	cw := csv.NewWriter(out)
	defer cw.Flush()

	if w.IncludeMeta {
		writeMetaRows(cw, st.Meta)
	}

	if err := cw.Write(csvColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, txn := range st.Transactions {
		row := []string{
			txn.Date,
			txn.Description,
			formatAmount(txn.Debit),
			formatAmount(txn.Credit),
			formatAmount(txn.Balance),
			string(txn.Direction),
			string(txn.Category),
			txn.CounterpartyAccount,
			txn.CounterpartyName,
			strconv.Itoa(txn.SourcePage),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeMetaRows(cw *csv.Writer, meta models.StatementMeta) {
	if meta.AccountNumber != "" {
		cw.Write([]string{"# Account Number", meta.AccountNumber})
	}
	if meta.AccountHolder != "" {
		cw.Write([]string{"# Account Holder", meta.AccountHolder})
	}
	if meta.IFSC != "" {
		cw.Write([]string{"# IFSC", meta.IFSC})
	}
	if meta.Branch != "" {
		cw.Write([]string{"# Branch", meta.Branch})
	}
	if meta.Period != nil {
		cw.Write([]string{"# Statement Period", meta.Period.Start + " to " + meta.Period.End})
	}
}

func formatAmount(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}
