package parser

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantOK   bool
	}{
		{"25.99", "25.99", true},
		{"1,234.56", "1234.56", true},
		{"(1,234.56)", "-1234.56", true},
		{"1 234", "1234", true},
		{"£25.99", "25.99", true},
		{"-25.99", "-25.99", true},
		{"+100", "100", true},
		{"Rs. 5,00,000.00", "500000.00", true},
		{"0.00", "0.00", true},
		{"abc", "", false},
		{"", "", false},
		{"-", "", false},
		{"1.2.3", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := NormalizeAmount(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("NormalizeAmount(%q): ok=%v, want %v", tt.input, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			want, err := decimal.NewFromString(tt.expected)
			if err != nil {
				t.Fatalf("bad expectation %q: %v", tt.expected, err)
			}
			if !got.Equal(want) {
				t.Errorf("NormalizeAmount(%q): got %s, want %s", tt.input, got, want)
			}
		})
	}
}

// The abbreviation dot of a currency prefix must not survive cleaning
// and corrupt the number, with or without a space after it.
func TestNormalizeAmountCurrencyPrefix(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Rs. 5,00,000.00", "500000.00"},
		{"Rs.100", "100"},
		{"Rs. 100", "100"},
		{"INR 1,250.75", "1250.75"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := NormalizeAmount(tt.input)
			if !ok {
				t.Fatalf("NormalizeAmount(%q): ok=false, want true", tt.input)
			}
			want, err := decimal.NewFromString(tt.expected)
			if err != nil {
				t.Fatalf("bad expectation %q: %v", tt.expected, err)
			}
			if !got.Equal(want) {
				t.Errorf("NormalizeAmount(%q): got %s, want %s", tt.input, got, want)
			}
		})
	}
}

func TestNormalizeAmountParenthesizedIsNegative(t *testing.T) {
	got, ok := NormalizeAmount("(500.00)")
	if !ok {
		t.Fatal("expected ok")
	}
	if !got.IsNegative() {
		t.Errorf("got %s, want negative", got)
	}
}
