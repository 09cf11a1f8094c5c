package extractor

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// ErrToolMissing means the external OCR tooling (poppler-utils,
// tesseract-ocr) is not installed. Callers treat this as "strategy
// unavailable", not as a document failure.
var ErrToolMissing = errors.New("ocr tooling not installed")

// ocrDPI is the render resolution for page images. 300 is the usual
// sweet spot for tesseract on statement-sized type.
const ocrDPI = "300"

// ExtractTextOCR renders each PDF page to an image and runs tesseract
// over it. This is the path for scanned documents with no text layer.
func ExtractTextOCR(path string) ([]string, error) {
	if _, err := exec.LookPath("pdftoppm"); err != nil {
		return nil, fmt.Errorf("%w: pdftoppm (poppler-utils)", ErrToolMissing)
	}
	if _, err := exec.LookPath("tesseract"); err != nil {
		return nil, fmt.Errorf("%w: tesseract (tesseract-ocr)", ErrToolMissing)
	}

	tmpDir, err := os.MkdirTemp("", "statement-ocr-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	cmd := exec.Command("pdftoppm", "-r", ocrDPI, "-png", path, prefix)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("pdftoppm: %v (%s)", err, strings.TrimSpace(string(out)))
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		return nil, fmt.Errorf("reading temp dir: %w", err)
	}
	var images []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".png") {
			images = append(images, filepath.Join(tmpDir, e.Name()))
		}
	}
	sort.Strings(images)
	if len(images) == 0 {
		return nil, errors.New("pdftoppm produced no page images")
	}

	var pages []string
	for _, img := range images {
		text, err := runTesseract(img)
		if err != nil {
			// A bad page should not sink the document.
			slog.Warn("tesseract failed on page image", "image", filepath.Base(img), "error", err)
			continue
		}
		if text != "" {
			pages = append(pages, text)
		}
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: ocr recognized nothing in %d page images", ErrNoText, len(images))
	}
	return pages, nil
}

// ExtractImageOCR runs tesseract directly on an image file (png, jpg,
// tiff, bmp statements photographed or exported as images).
func ExtractImageOCR(path string) (string, error) {
	if _, err := exec.LookPath("tesseract"); err != nil {
		return "", fmt.Errorf("%w: tesseract (tesseract-ocr)", ErrToolMissing)
	}
	text, err := runTesseract(path)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", fmt.Errorf("%w: ocr recognized nothing in image", ErrNoText)
	}
	return text, nil
}

// runTesseract OCRs a single image. PSM 4 assumes a single column of
// variably-sized text, which fits statement pages.
func runTesseract(image string) (string, error) {
	tmp, err := os.MkdirTemp("", "tesseract-*")
	if err != nil {
		return "", fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	outBase := filepath.Join(tmp, "out")
	cmd := exec.Command("tesseract", image, outBase, "-l", "eng", "--psm", "4")
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("tesseract: %v (%s)", err, strings.TrimSpace(string(out)))
	}
	data, err := os.ReadFile(outBase + ".txt")
	if err != nil {
		return "", fmt.Errorf("reading tesseract output: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
