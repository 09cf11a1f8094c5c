package extractor

import (
	"strings"
	"testing"
)

func TestUsable(t *testing.T) {
	tests := []struct {
		name  string
		pages []string
		want  bool
	}{
		{
			name:  "statement text",
			pages: []string{"Account Statement for the period 01/03/2024 to 31/03/2024, opening balance 4,500.00"},
			want:  true,
		},
		{
			name:  "empty",
			pages: nil,
			want:  false,
		},
		{
			name:  "too short",
			pages: []string{"account balance"},
			want:  false,
		},
		{
			name:  "readable but no statement vocabulary",
			pages: []string{"the quick brown fox jumps over the lazy dog again and again"},
			want:  false,
		},
		{
			name: "mostly unreadable",
			// Identity-encoded fonts decode to runs of accented garbage.
			pages: []string{strings.Repeat("þýü", 30) + " account"},
			want:  false,
		},
		{
			name:  "split across pages",
			pages: []string{"Opening balance brought forward", "Closing balance carried forward"},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := usable(tt.pages); got != tt.want {
				t.Errorf("usable(%q) = %v, want %v", tt.pages, got, tt.want)
			}
		})
	}
}

func TestUsableLengthThreshold(t *testing.T) {
	// 48 readable chars with statement vocabulary: under the floor.
	short := strings.Repeat("account ", 6)
	if usable([]string{short}) {
		t.Errorf("usable(%d chars) = true, want false", len(short))
	}

	// 56 chars of the same text: over it.
	long := strings.Repeat("account ", 7)
	if !usable([]string{long}) {
		t.Errorf("usable(%d chars) = false, want true", len(long))
	}
}

func TestIsReadableRune(t *testing.T) {
	for _, r := range "aZ9 .,£$€()-/" {
		if !isReadableRune(r) {
			t.Errorf("isReadableRune(%q) = false, want true", r)
		}
	}
	for _, r := range "þýÃ§☃" {
		if isReadableRune(r) {
			t.Errorf("isReadableRune(%q) = true, want false", r)
		}
	}
}

func TestPageCountNonexistentFile(t *testing.T) {
	// An unreadable page count means single-page, never failure.
	if n := pageCount("/tmp/nonexistent-file-12345.pdf"); n != 1 {
		t.Errorf("pageCount(nonexistent) = %d, want 1", n)
	}
}

func TestExtractTextNonexistentFile(t *testing.T) {
	if _, err := ExtractText("/tmp/nonexistent-file-12345.pdf"); err == nil {
		t.Error("expected error for nonexistent file")
	}
}
