package document

import "strings"

// Kind describes the declared format of an uploaded artifact.
type Kind string

const (
	KindText Kind = "text"
	KindPDF  Kind = "pdf"
	KindDocx Kind = "docx"
)

// Document is one uploaded artifact. It is immutable once read: the core
// consumes only the identifier and the extracted text.
type Document struct {
	// ID is the document identifier, usually the filename.
	ID   string
	Kind Kind
	Text string
}

// NormalizeLines splits raw extracted text into an ordered sequence of
// non-empty, whitespace-trimmed lines. Empty input yields an empty sequence.
func NormalizeLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
