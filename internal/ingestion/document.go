// Package ingestion turns uploaded documents and job postings into clean plain text.
package ingestion

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"mime"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-insights/internal/fetch"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Format is a supported document format.
type Format string

// Supported formats.
const (
	FormatText    Format = "text"
	FormatPDF     Format = "pdf"
	FormatDOCX    Format = "docx"
	FormatHTML    Format = "html"
	FormatUnknown Format = ""
)

var mimeFormats = map[string]Format{
	"text/plain":            FormatText,
	"text/markdown":         FormatText,
	"application/pdf":       FormatPDF,
	"text/html":             FormatHTML,
	"application/xhtml+xml": FormatHTML,

	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": FormatDOCX,
}

var extensionFormats = map[string]Format{
	".txt":  FormatText,
	".text": FormatText,
	".md":   FormatText,
	".pdf":  FormatPDF,
	".docx": FormatDOCX,
	".html": FormatHTML,
	".htm":  FormatHTML,
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br[^>]*/>|<w:cr[^>]*/>`)
	docxTab          = regexp.MustCompile(`<w:tab[^>]*/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

// Document is a decoded document.
type Document struct {
	Name     string
	Format   Format
	Text     string
	Metadata *Metadata
}

// DetectFormat picks a format from the content type, falling back to the
// file extension when the content type is missing or generic.
func DetectFormat(name, contentType string) Format {
	if contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err == nil {
			if format, ok := mimeFormats[strings.ToLower(mediaType)]; ok {
				return format
			}
		}
	}
	if format, ok := extensionFormats[strings.ToLower(filepath.Ext(name))]; ok {
		return format
	}
	return FormatUnknown
}

// Decode extracts and cleans the text of a document.
func Decode(name, contentType string, data []byte) (*Document, error) {
	format := DetectFormat(name, contentType)
	if format == FormatUnknown {
		return nil, &UnsupportedTypeError{Name: name, ContentType: contentType}
	}

	raw, err := decodeRaw(format, data)
	if err != nil {
		return nil, &DecodeError{Name: name, Format: format, Cause: err}
	}

	text := CleanText(raw)
	if text == "" {
		return nil, &DecodeError{Name: name, Format: format, Cause: ErrEmptyDocument}
	}

	return &Document{Name: name, Format: format, Text: text, Metadata: describe(text, name, format)}, nil
}

// IngestFromFile reads and decodes a document from disk.
func IngestFromFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Decode(filepath.Base(path), "", data)
}

func decodeRaw(format Format, data []byte) (string, error) {
	switch format {
	case FormatText:
		if !utf8.Valid(data) {
			return "", errors.New("text is not valid UTF-8")
		}
		return string(data), nil
	case FormatPDF:
		return pdfText(data)
	case FormatDOCX:
		return docxText(data)
	case FormatHTML:
		return fetch.ExtractMainText(string(data), fetch.JobPostingSelectors(), fetch.PlatformNoiseSelectors(fetch.PlatformUnknown)...)
	default:
		return "", fmt.Errorf("no decoder for %q", format)
	}
}

// pdfText concatenates the plain text of every page. The PDF reader panics
// on some malformed inputs, so panics are turned into errors.
func pdfText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", i, err)
		}
		b.WriteString(pageText)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// docxText reads word/document.xml and flattens it to lines, one per paragraph.
func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTab.ReplaceAllString(content, "\t")
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(content), nil
}
