package parser

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// NormalizeAmount converts an amount token like "1,234.56", "£25.99",
// "Rs. 500" or "(500.00)" into a decimal. Parentheses around the token
// denote a negative value. Currency symbols, thousands separators (comma
// or space) and any other noise are stripped. Returns ok=false when no
// digits remain or the remainder is not a number.
func NormalizeAmount(token string) (decimal.Decimal, bool) {
	runes := []rune(token)
	var b strings.Builder
	for i, r := range runes {
		switch {
		case r >= '0' && r <= '9', r == '-', r == '+', r == '(', r == ')':
			b.WriteRune(r)
		case r == '.':
			// A decimal point touches a digit; the abbreviation dot of
			// a currency prefix ("Rs.") trails a letter instead.
			if isDigit(runes, i-1) || (isDigit(runes, i+1) && !isLetter(runes, i-1)) {
				b.WriteRune(r)
			}
		}
	}
	cleaned := b.String()

	negative := strings.Contains(cleaned, "(") && strings.Contains(cleaned, ")")
	cleaned = strings.NewReplacer("(", "", ")", "").Replace(cleaned)
	if !strings.ContainsAny(cleaned, "0123456789") {
		return decimal.Decimal{}, false
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if negative {
		d = d.Neg()
	}
	return d, true
}

func isDigit(runes []rune, i int) bool {
	return i >= 0 && i < len(runes) && runes[i] >= '0' && runes[i] <= '9'
}

func isLetter(runes []rune, i int) bool {
	return i >= 0 && i < len(runes) && unicode.IsLetter(runes[i])
}
