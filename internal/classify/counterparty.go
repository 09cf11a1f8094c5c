package classify

import (
	"regexp"
	"strings"
)

var (
	// 9-18 consecutive digits: an account or reference number.
	accountHintPattern = regexp.MustCompile(`\b\d{9,18}\b`)
	// Text after a TO/FROM token holds the counterparty name.
	nameHintPattern = regexp.MustCompile(`(?i)\b(?:TO|FROM)\b\s*(.+)$`)
	// Digit runs stripped out of name candidates.
	embeddedDigitsPattern = regexp.MustCompile(`\b\d{6,}\b`)
)

// Counterparty extracts best-effort account and name hints from a
// description. Either result may be empty, never whitespace-only.
func Counterparty(description string) (account, name string) {
	account = accountHintPattern.FindString(description)

	if m := nameHintPattern.FindStringSubmatch(description); m != nil {
		candidate := embeddedDigitsPattern.ReplaceAllString(m[1], "")
		name = strings.TrimSpace(candidate)
	}
	return account, name
}
