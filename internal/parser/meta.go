package parser

import (
	"regexp"
	"strings"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

// Label patterns for the one-shot metadata pass. Statements print these
// in the preamble before the transaction table.
var (
	metaAccountPattern = regexp.MustCompile(`(?i)Account\s*No[.:\s-]*(\d+)`)
	metaHolderPattern  = regexp.MustCompile(`(?i)Account\s*(?:Holder|Name)[:\s-]+([A-Za-z .,&-]+)`)
	metaIFSCPattern    = regexp.MustCompile(`(?i)IFSC[:\s-]+([A-Z]{4}0[A-Z0-9]{6})`)
	metaBranchPattern  = regexp.MustCompile(`(?i)Branch[:\s-]+([A-Za-z0-9 ,.-]+)`)
	metaPeriodPattern  = regexp.MustCompile(`(?i)(?:Statement\s*Period|From)\s*:?\s*(.+?)\s+to\s+(.+)`)
)

// ExtractMeta scrapes account-level details from a block of statement
// text. Fields it cannot find stay empty; it never fails.
func ExtractMeta(text string) models.StatementMeta {
	var meta models.StatementMeta
	if text == "" {
		return meta
	}

	if m := metaAccountPattern.FindStringSubmatch(text); m != nil {
		meta.AccountNumber = m[1]
	}
	if m := metaHolderPattern.FindStringSubmatch(text); m != nil {
		meta.AccountHolder = strings.TrimSpace(m[1])
	}
	if m := metaIFSCPattern.FindStringSubmatch(text); m != nil {
		meta.IFSC = strings.ToUpper(m[1])
	}
	if m := metaBranchPattern.FindStringSubmatch(text); m != nil {
		meta.Branch = strings.TrimSpace(m[1])
	}
	if m := metaPeriodPattern.FindStringSubmatch(text); m != nil {
		meta.Period = &models.StatementPeriod{
			Start: strings.TrimSpace(m[1]),
			End:   strings.TrimSpace(m[2]),
		}
	}
	return meta
}

// mergeMeta fills empty fields of dst from src. Populated fields are
// never overwritten: the first value found in the document wins.
func mergeMeta(dst *models.StatementMeta, src models.StatementMeta) {
	if dst.AccountNumber == "" {
		dst.AccountNumber = src.AccountNumber
	}
	if dst.AccountHolder == "" {
		dst.AccountHolder = src.AccountHolder
	}
	if dst.IFSC == "" {
		dst.IFSC = src.IFSC
	}
	if dst.Branch == "" {
		dst.Branch = src.Branch
	}
	if dst.Period == nil {
		dst.Period = src.Period
	}
}
