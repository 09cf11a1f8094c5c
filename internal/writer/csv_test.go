package writer

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

func amt(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func sampleStatement() *models.Statement {
	return &models.Statement{
		Meta: models.StatementMeta{
			AccountNumber: "12345678901",
			AccountHolder: "JANE SMITH",
			Period:        &models.StatementPeriod{Start: "01/03/2024", End: "31/03/2024"},
		},
		Transactions: []models.TransactionRecord{
			{
				Date:        "2024-03-12",
				Description: "ATM CASH WDL",
				Debit:       amt("500"),
				Balance:     amt("4500"),
				Direction:   models.Withdrawal,
				Category:    models.CategoryCash,
			},
			{
				Date:                "2024-03-13",
				Description:         "NEFT TO RAVI KUMAR",
				Credit:              amt("2000.5"),
				Direction:           models.Deposit,
				Category:            models.CategoryTransfer,
				CounterpartyName:    "RAVI KUMAR",
				CounterpartyAccount: "9876543210123",
				SourcePage:          1,
			},
		},
	}
}

func TestCSVWriterColumns(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{}
	require.NoError(t, w.Write(&buf, sampleStatement()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, csvColumns, rows[0])
	assert.Equal(t, []string{
		"2024-03-12", "ATM CASH WDL", "500.00", "", "4500.00",
		"Withdrawal", "CASH", "", "", "0",
	}, rows[1])
	assert.Equal(t, []string{
		"2024-03-13", "NEFT TO RAVI KUMAR", "", "2000.50", "",
		"Deposit", "Transfer", "9876543210123", "RAVI KUMAR", "1",
	}, rows[2])
}

func TestCSVWriterMetaRows(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{IncludeMeta: true}
	require.NoError(t, w.Write(&buf, sampleStatement()))

	out := buf.String()
	assert.Contains(t, out, "# Account Number,12345678901")
	assert.Contains(t, out, "# Account Holder,JANE SMITH")
	assert.Contains(t, out, "# Statement Period,01/03/2024 to 31/03/2024")
	assert.NotContains(t, out, "# IFSC")
	assert.NotContains(t, out, "# Branch")

	// Metadata precedes the column header.
	assert.Less(t, strings.Index(out, "# Account Number"), strings.Index(out, "date,description"))
}

func TestCSVWriterEmptyStatement(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{IncludeMeta: true}
	require.NoError(t, w.Write(&buf, &models.Statement{Transactions: []models.TransactionRecord{}}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, csvColumns, rows[0])
}
