package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/encoding/korean"

	"github.com/Aashish23092/credit-report-analyzer/logger"
)

// minEmbeddedText is the rune count below which a PDF is treated as scanned.
const minEmbeddedText = 20

type documentTextExtractor struct {
	pdf PDFProcessor
	ocr ImageOCR
	log *slog.Logger
}

// NewTextExtractor dispatches on file extension: PDFs use their text layer
// with an OCR fallback, HTML exports are reduced to visible text, images go
// through OCR and .txt files are returned as is. A QR code found on an image
// or scanned page is appended to its text.
func NewTextExtractor(pdf PDFProcessor, ocr ImageOCR, log *slog.Logger) TextExtractor {
	if log == nil {
		log = slog.Default()
	}
	return &documentTextExtractor{pdf: pdf, ocr: ocr, log: log}
}

func (e *documentTextExtractor) ExtractText(ctx context.Context, filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return e.extractPDF(ctx, filename, data)
	case ".html", ".htm":
		return extractHTMLText(data)
	case ".png", ".jpg", ".jpeg":
		if e.ocr == nil {
			return "", fmt.Errorf("no OCR engine configured for %s", filename)
		}
		text, err := e.ocr.ExtractTextFromBytes(data)
		if err != nil {
			return "", err
		}
		if payload, ok := decodeQRCodeBytes(data); ok {
			text += "\n" + qrPrefix + payload
		}
		return text, nil
	case ".txt":
		return decodePlainText(filename, data)
	default:
		return "", fmt.Errorf("unsupported file type: %s", filename)
	}
}

func (e *documentTextExtractor) extractPDF(ctx context.Context, filename string, data []byte) (string, error) {
	log := logger.FromContext(ctx, e.log)

	text, err := e.pdf.ExtractText(data)
	if err != nil {
		log.Warn("extract.pdf.text_failed", "file", filename, "error", err)
	}
	if utf8.RuneCountInString(strings.TrimSpace(text)) >= minEmbeddedText {
		return text, nil
	}
	if e.ocr == nil {
		if err != nil {
			return "", err
		}
		return text, nil
	}

	log.Info("extract.pdf.scanned", "file", filename)
	images, imgErr := e.pdf.ExtractImages(data)
	if imgErr != nil || len(images) == 0 {
		if err != nil {
			return "", fmt.Errorf("pdf has no readable text or images: %w", err)
		}
		if imgErr != nil {
			log.Warn("extract.pdf.images_failed", "file", filename, "error", imgErr)
		}
		return text, nil
	}

	var combined strings.Builder
	for i, img := range images {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		pageText, ocrErr := e.ocr.ExtractTextFromImage(img)
		if ocrErr != nil {
			log.Warn("extract.pdf.page_ocr_failed", "file", filename, "page", i+1, "error", ocrErr)
			continue
		}
		combined.WriteString(pageText)
		combined.WriteString("\n")
		if payload, ok := decodeQRCode(img); ok {
			combined.WriteString(qrPrefix + payload + "\n")
		}
	}

	if strings.TrimSpace(combined.String()) == "" {
		if err != nil {
			return "", fmt.Errorf("scanned pdf OCR failed: %w", err)
		}
		return text, nil
	}
	return combined.String(), nil
}

// decodePlainText accepts UTF-8 and falls back to CP949/EUC-KR, the usual
// encoding of bureau text exports.
func decodePlainText(filename string, data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := korean.EUCKR.NewDecoder().Bytes(data)
	if err != nil || bytes.ContainsRune(decoded, utf8.RuneError) {
		return "", fmt.Errorf("%s is neither UTF-8 nor EUC-KR text", filename)
	}
	return string(decoded), nil
}

// extractHTMLText returns the visible text of an HTML report export, one
// non-empty line per block.
func extractHTMLText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse html: %w", err)
	}
	doc.Find("script, style, noscript, head").Remove()
	doc.Find("br, p, div, tr, li, h1, h2, h3, h4, h5, h6, table").Each(func(_ int, s *goquery.Selection) {
		s.AfterHtml("\n")
	})
	doc.Find("td, th").Each(func(_ int, s *goquery.Selection) {
		s.AfterHtml(" ")
	})

	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}
