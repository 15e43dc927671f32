package document

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	docxTag          = regexp.MustCompile(`<[^>]+>`)
)

// Extract decodes raw file bytes into plain text according to the declared
// kind. Plain text is decoded with a lossy fallback for invalid UTF-8.
func Extract(kind Kind, data []byte) (string, error) {
	switch kind {
	case KindText:
		return string(bytes.ToValidUTF8(data, []byte("�"))), nil
	case KindPDF:
		return extractPDFText(data)
	case KindDocx:
		return extractDocxText(data)
	default:
		return "", fmt.Errorf("unsupported document kind: %s", kind)
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
	}

	return builder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()

	// The editable content is the raw document XML. Paragraph ends become
	// newlines so line-based heuristics still see the document structure.
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTag.ReplaceAllString(content, "")

	return content, nil
}

// KindForFilename maps a file extension to a document kind.
func KindForFilename(name string) (Kind, bool) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".txt"):
		return KindText, true
	case strings.HasSuffix(lower, ".pdf"):
		return KindPDF, true
	case strings.HasSuffix(lower, ".docx"):
		return KindDocx, true
	}
	return "", false
}
