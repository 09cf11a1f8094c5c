package parser

import (
	"strings"
	"time"
)

// dateLayouts are tried in order. Day-first layouts come before anything
// ambiguous, so "01/02/2024" always reads as 1 February 2024. The "2"/"1"
// layout digits accept both padded and unpadded day/month.
var dateLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2/1/06",
	"2-1-06",
	"2006-1-2",
	"2 Jan 2006",
	"2 January 2006",
}

// NormalizeDate parses a date token against the supported calendar
// formats and returns it as ISO-8601 (YYYY-MM-DD). The first layout that
// parses wins. Returns ok=false for anything unrecognized; never panics.
func NormalizeDate(token string) (string, bool) {
	s := strings.TrimSpace(token)
	if s == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}
