package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

// CanonicalRow is a table row keyed by canonical role instead of a
// free-form header lookup. Cells whose header matched no role are not
// carried: they never participate in record assembly.
type CanonicalRow struct {
	Date        string
	Particulars string
	Debit       string
	Credit      string
	Balance     string
}

// rowFromCells indexes a row's cells under the canonicalized headers.
// The first cell seen for each role wins; extra cells are ignored.
func rowFromCells(roles []string, cells []string) CanonicalRow {
	var row CanonicalRow
	n := len(roles)
	if len(cells) < n {
		n = len(cells)
	}
	set := func(dst *string, v string) {
		if *dst == "" {
			*dst = strings.TrimSpace(v)
		}
	}
	for i := 0; i < n; i++ {
		switch Role(roles[i]) {
		case RoleDate:
			set(&row.Date, cells[i])
		case RoleParticulars:
			set(&row.Particulars, cells[i])
		case RoleDebit:
			set(&row.Debit, cells[i])
		case RoleCredit:
			set(&row.Credit, cells[i])
		case RoleBalance:
			set(&row.Balance, cells[i])
		}
	}
	return row
}

// parseTable extracts records from a detected table. The first row is the
// header; rows missing a date or description cell are skipped. Amount
// cells parse independently, and a row whose amounts all fail to parse is
// still emitted: callers may want to know a transaction occurred even if
// its figures did not survive extraction.
func (e *Engine) parseTable(table [][]string, page int) []models.TransactionRecord {
	if len(table) < 2 {
		return nil
	}
	roles := make([]string, len(table[0]))
	for i, h := range table[0] {
		roles[i] = Canonicalize(h)
	}

	var records []models.TransactionRecord
	for _, cells := range table[1:] {
		row := rowFromCells(roles, cells)
		if row.Date == "" || row.Particulars == "" {
			continue
		}

		debit := cellAmount(row.Debit)
		credit := cellAmount(row.Credit)
		balance := cellAmount(row.Balance)
		date, _ := NormalizeDate(row.Date)

		records = append(records, e.finishRecord(date, row.Particulars, debit, credit, balance, page))
	}
	return records
}

func cellAmount(cell string) *decimal.Decimal {
	if strings.TrimSpace(cell) == "" {
		return nil
	}
	d, ok := NormalizeAmount(cell)
	if !ok {
		return nil
	}
	return &d
}

// cellSplit breaks a layout-preserved text line into column cells: two or
// more spaces (or a tab) separate columns, single spaces stay inside a
// cell.
var cellSplit = regexp.MustCompile(`\t|\s{2,}`)

func splitCells(line string) []string {
	var cells []string
	for _, c := range cellSplit.Split(strings.TrimSpace(line), -1) {
		c = strings.TrimSpace(c)
		if c != "" {
			cells = append(cells, c)
		}
	}
	return cells
}

// gridHeaderScan bounds how far into a page the header row may sit.
const gridHeaderScan = 10

// DetectGrid probes layout-preserved page text for a column grid. It
// looks for a header row (within the first few lines) whose cells
// canonicalize to at least the date and particulars roles plus one
// amount role, then splits every following line on column gaps. Returns
// nil when the page does not look tabular.
func DetectGrid(text string) [][]string {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		if strings.TrimSpace(ln) != "" {
			lines = append(lines, ln)
		}
	}

	limit := gridHeaderScan
	if len(lines) < limit {
		limit = len(lines)
	}
	for i := 0; i < limit; i++ {
		header := splitCells(lines[i])
		if len(header) < 3 || !headerish(header) {
			continue
		}
		grid := [][]string{header}
		for _, ln := range lines[i+1:] {
			cells := splitCells(ln)
			if len(cells) < 2 {
				continue
			}
			grid = append(grid, cells)
		}
		if len(grid) < 2 {
			return nil
		}
		return grid
	}
	return nil
}

func headerish(cells []string) bool {
	seen := map[string]bool{}
	for _, c := range cells {
		seen[Canonicalize(c)] = true
	}
	hasAmount := seen[string(RoleDebit)] || seen[string(RoleCredit)] || seen[string(RoleBalance)]
	return seen[string(RoleDate)] && seen[string(RoleParticulars)] && hasAmount
}
