package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/insightdelivered/statement-extractor/internal/classify"
	"github.com/insightdelivered/statement-extractor/internal/models"
)

// lineDatePatterns qualify a free-text line as a transaction candidate.
// Checked in order; the first pattern that matches supplies the date
// token.
var lineDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{4}\b`),
	regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2}\b`),
	regexp.MustCompile(`\b\d{4}[/-]\d{1,2}[/-]\d{1,2}\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4}\b`),
}

// Policy tunes the layout heuristics of line-mode extraction. These are
// assumptions about common ledger layouts, not guaranteed-correct parses,
// so they are carried as configuration rather than hard-coded branches.
type Policy struct {
	// SingleAmountIsCredit treats a lone numeric token as the credit
	// column; when false it is treated as a debit.
	SingleAmountIsCredit bool
	// RightAnchorBalance takes the LAST three numeric tokens as
	// (debit, credit, balance), assuming a trailing balance column.
	// When false the first three are taken instead.
	RightAnchorBalance bool
	// MaxPlainDigits caps unseparated integer tokens recognized as
	// amounts. Longer plain digit runs are reference or account
	// numbers. Tokens with thousands separators or a decimal point are
	// never capped.
	MaxPlainDigits int
}

// DefaultPolicy matches the most common right-aligned statement layout.
func DefaultPolicy() Policy {
	return Policy{
		SingleAmountIsCredit: true,
		RightAnchorBalance:   true,
		MaxPlainDigits:       8,
	}
}

// amountPattern builds the amount-token regexp for a policy: grouped
// digits with comma/space thousands separators, or a plain digit run of
// bounded length, optionally with 1-2 decimals and wrapping parentheses.
func amountPattern(maxPlainDigits int) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(
		`\(?[-+]?\b(?:\d{1,3}(?:[,\s]\d{3})+|\d{1,%d})(?:\.\d{1,2})?\b\)?`,
		maxPlainDigits))
}

// findLineDate returns the first date token in the line and its span,
// or ok=false. Pattern order decides which token wins.
func findLineDate(line string) (token string, span []int, ok bool) {
	for _, pat := range lineDatePatterns {
		if loc := pat.FindStringIndex(line); loc != nil {
			return line[loc[0]:loc[1]], loc, true
		}
	}
	return "", nil, false
}

// maskDates blanks every date-shaped span with spaces so the amount scan
// cannot mistake date components for numeric tokens. Length-preserving,
// so spans found in the masked line index into the original.
func maskDates(line string) string {
	b := []byte(line)
	for _, pat := range lineDatePatterns {
		for _, loc := range pat.FindAllStringIndex(string(b), -1) {
			for i := loc[0]; i < loc[1]; i++ {
				b[i] = ' '
			}
		}
	}
	return string(b)
}

// collapseSpaces squeezes runs of whitespace into single spaces.
var multiSpace = regexp.MustCompile(`\s{2,}`)

func collapseSpaces(s string) string {
	return strings.TrimSpace(multiSpace.ReplaceAllString(s, " "))
}

// parseLine decides whether a free-text line is a transaction and, if so,
// assembles the record. A line qualifies only if it contains both a
// date-shaped token and at least one amount-shaped token; anything else
// is silently skipped.
func (e *Engine) parseLine(raw string, page int) (models.TransactionRecord, bool) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return models.TransactionRecord{}, false
	}

	dateToken, dateSpan, hasDate := findLineDate(line)
	if !hasDate {
		return models.TransactionRecord{}, false
	}

	masked := maskDates(line)
	amountSpans := e.amountRe.FindAllStringIndex(masked, -1)
	if len(amountSpans) == 0 {
		return models.TransactionRecord{}, false
	}

	var amounts []decimal.Decimal
	for _, span := range amountSpans {
		if d, ok := NormalizeAmount(masked[span[0]:span[1]]); ok {
			amounts = append(amounts, d)
		}
	}
	debit, credit, balance := e.policy.assign(amounts)

	date, _ := NormalizeDate(dateToken)

	desc := residualDescription(line, dateSpan, amountSpans)

	return e.finishRecord(date, desc, debit, credit, balance, page), true
}

// assign distributes the normalized numeric tokens over the debit,
// credit and balance fields by count and position.
func (p Policy) assign(amounts []decimal.Decimal) (debit, credit, balance *decimal.Decimal) {
	switch {
	case len(amounts) == 0:
	case len(amounts) == 1:
		if p.SingleAmountIsCredit {
			credit = &amounts[0]
		} else {
			debit = &amounts[0]
		}
	case len(amounts) == 2:
		debit, credit = &amounts[0], &amounts[1]
	default:
		i := 0
		if p.RightAnchorBalance {
			i = len(amounts) - 3
		}
		debit, credit, balance = &amounts[i], &amounts[i+1], &amounts[i+2]
	}
	return debit, credit, balance
}

// residualDescription removes the consumed date span and every
// amount-shaped span from the line and collapses whitespace. Never
// returns empty: a fully-numeric line falls back to its own text.
func residualDescription(line string, dateSpan []int, amountSpans [][]int) string {
	b := []byte(line)
	blank := func(loc []int) {
		for i := loc[0]; i < loc[1]; i++ {
			b[i] = ' '
		}
	}
	blank(dateSpan)
	for _, span := range amountSpans {
		blank(span)
	}
	desc := collapseSpaces(string(b))
	if desc == "" {
		return strings.TrimSpace(line)
	}
	return desc
}

// finishRecord runs the shared post-processing contract: direction,
// classification and counterparty hints.
func (e *Engine) finishRecord(date, desc string, debit, credit, balance *decimal.Decimal, page int) models.TransactionRecord {
	rec := models.TransactionRecord{
		Date:        date,
		Description: desc,
		Debit:       debit,
		Credit:      credit,
		Balance:     balance,
		Direction:   direction(debit, credit),
		Category:    classify.Classify(desc),
		SourcePage:  page,
	}
	rec.CounterpartyAccount, rec.CounterpartyName = classify.Counterparty(desc)
	return rec
}

// direction derives Deposit only when a credit parsed and no debit did.
func direction(debit, credit *decimal.Decimal) models.Direction {
	if credit != nil && debit == nil {
		return models.Deposit
	}
	return models.Withdrawal
}
