// Package extractor recovers per-page text from statement documents. It
// is the upstream collaborator of the parsing engine: it produces pages,
// never transactions.
package extractor

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os/exec"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// ErrNoText means the document was opened fine but no usable text could
// be decoded from it: the file is likely scanned or uses font encodings
// the text layer cannot resolve. OCR is the remaining option.
var ErrNoText = errors.New("no readable text in document")

// ExtractText returns the text of each PDF page. Several extraction
// methods are tried in order of layout fidelity, each gated by a
// readability check so garbage from identity-encoded fonts is never
// passed downstream. Returns ErrNoText when every method produced
// nothing usable.
func ExtractText(path string) ([]string, error) {
	pages, err := extractWithLibrary(path)
	if err == nil && usable(pages) {
		return pages, nil
	}
	if err != nil && !errors.Is(err, ErrNoText) {
		return nil, fmt.Errorf("pdf text extraction: %w", err)
	}

	// The library could not decode this file; poppler handles some
	// encodings it cannot.
	if pages, err := extractWithPdftotext(path); err == nil && usable(pages) {
		return pages, nil
	}

	return nil, ErrNoText
}

// extractWithLibrary walks the ledongthuc/pdf extraction methods from the
// most structured to the least. The library panics on some malformed
// files, so the whole pass runs under a recover.
func extractWithLibrary(path string) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf library panic: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if r.NumPage() == 0 {
		return nil, ErrNoText
	}

	for _, method := range []func(*pdf.Reader) []string{
		pagesByRow,
		pagesByContent,
		pagesByPlainText,
	} {
		if pages = method(r); usable(pages) {
			return pages, nil
		}
	}
	if text := wholeDocumentText(r); usable([]string{text}) {
		return []string{text}, nil
	}
	return nil, ErrNoText
}

// pagesByRow uses the library's row grouping, which preserves reading
// order on well-formed files.
func pagesByRow(r *pdf.Reader) []string {
	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var words []string
			for _, w := range row.Content {
				words = append(words, w.S)
			}
			if line := strings.TrimSpace(strings.Join(words, " ")); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages
}

// columnGap is the horizontal distance (in text-space units) treated as
// a column boundary when rebuilding rows from raw text fragments. The
// resulting double space is what DetectGrid later splits cells on.
const columnGap = 15

// pagesByContent rebuilds lines from raw positioned text fragments:
// fragments sharing a Y coordinate form a row, sorted left to right,
// with wide gaps rendered as column separators.
func pagesByContent(r *pdf.Reader) []string {
	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		if len(content.Text) == 0 {
			continue
		}

		type fragment struct {
			x float64
			s string
		}
		rows := make(map[int][]fragment)
		for _, t := range content.Text {
			if strings.TrimSpace(t.S) == "" {
				continue
			}
			y := int(math.Round(t.Y))
			rows[y] = append(rows[y], fragment{x: t.X, s: t.S})
		}

		ys := make([]int, 0, len(rows))
		for y := range rows {
			ys = append(ys, y)
		}
		// PDF Y runs bottom-to-top.
		sort.Sort(sort.Reverse(sort.IntSlice(ys)))

		var lines []string
		for _, y := range ys {
			frags := rows[y]
			sort.Slice(frags, func(a, b int) bool { return frags[a].x < frags[b].x })

			var sb strings.Builder
			var prevX float64
			for j, frag := range frags {
				if j > 0 && frag.x-prevX > columnGap {
					sb.WriteString("  ")
				}
				sb.WriteString(frag.s)
				prevX = frag.x
			}
			if line := strings.TrimSpace(sb.String()); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages
}

// pagesByPlainText is the per-page plain text path with font maps.
func pagesByPlainText(r *pdf.Reader) []string {
	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		fonts := make(map[string]*pdf.Font)
		for _, name := range page.Fonts() {
			f := page.Font(name)
			fonts[name] = &f
		}
		text, err := page.GetPlainText(fonts)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}
	return pages
}

func wholeDocumentText(r *pdf.Reader) string {
	reader, err := r.GetPlainText()
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// extractWithPdftotext shells out to poppler-utils, page by page so page
// boundaries survive.
func extractWithPdftotext(path string) ([]string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return nil, fmt.Errorf("pdftotext not available: %w", err)
	}

	numPages := pageCount(path)
	var pages []string
	for i := 1; i <= numPages; i++ {
		n := strconv.Itoa(i)
		out, err := exec.Command("pdftotext", "-layout", "-f", n, "-l", n, path, "-").Output()
		if err != nil {
			continue
		}
		if text := strings.TrimSpace(string(out)); text != "" {
			pages = append(pages, text)
		}
	}
	if len(pages) > 0 {
		return pages, nil
	}

	out, err := exec.Command("pdftotext", "-layout", path, "-").Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}
	if text := strings.TrimSpace(string(out)); text != "" {
		return []string{text}, nil
	}
	return nil, ErrNoText
}

// pageCount asks pdfinfo; a PDF with an unreadable page count is treated
// as single-page rather than failed.
func pageCount(path string) int {
	out, err := exec.Command("pdfinfo", path).Output()
	if err != nil {
		return 1
	}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.HasPrefix(line, "Pages:") {
			if n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Pages:"))); err == nil && n > 0 {
				return n
			}
		}
	}
	return 1
}

// statementWords appear in virtually every bank statement. Extracted text
// containing none of them is almost certainly mis-decoded.
var statementWords = []string{
	"bank", "account", "balance", "date", "payment", "statement",
	"total", "amount", "credit", "debit", "transaction", "branch",
	"opening", "closing", "transfer", "period", "ifsc", "particulars",
	"narration", "withdrawal", "deposit",
}

// usable gates every extraction method: enough text, mostly readable
// ASCII, and at least one word a statement would contain. The ratio
// check counts strict ASCII, since unicode.IsLetter also accepts the
// accented garbage that identity-encoded fonts decode to.
func usable(pages []string) bool {
	total, readable := 0, 0
	for _, page := range pages {
		for _, r := range page {
			total++
			if isReadableRune(r) {
				readable++
			}
		}
	}
	if total <= 50 || float64(readable)/float64(total) <= 0.6 {
		return false
	}

	combined := strings.ToLower(strings.Join(pages, " "))
	for _, w := range statementWords {
		if strings.Contains(combined, w) {
			return true
		}
	}
	return false
}

func isReadableRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case unicode.IsSpace(r):
		return true
	}
	return strings.ContainsRune(`.,-/:;()'"%&@#!?+=*£$€`, r)
}
