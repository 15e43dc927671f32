package document

import (
	"reflect"
	"testing"
)

func TestNormalizeLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect []string
	}{
		{
			name:   "empty input yields empty sequence",
			input:  "",
			expect: []string{},
		},
		{
			name:   "whitespace only",
			input:  "  \n\t\n   \n",
			expect: []string{},
		},
		{
			name:   "trims and drops blank lines preserving order",
			input:  "  Jane Doe \n\nQA Engineer\t\n \n jane@example.com",
			expect: []string{"Jane Doe", "QA Engineer", "jane@example.com"},
		},
		{
			name:   "windows line endings",
			input:  "first\r\nsecond\r\n",
			expect: []string{"first", "second"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeLines(tt.input)
			if !reflect.DeepEqual(got, tt.expect) {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestExtractPlainTextLossyFallback(t *testing.T) {
	t.Parallel()

	data := []byte("valid \xff\xfe text")

	text, err := Extract(KindText, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A run of invalid bytes collapses to a single replacement char.
	if text != "valid � text" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestExtractUnsupportedKind(t *testing.T) {
	t.Parallel()

	if _, err := Extract(Kind("odt"), []byte("x")); err == nil {
		t.Fatal("expected error for unsupported kind")
	}
}

func TestKindForFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		kind     Kind
		ok       bool
	}{
		{"resume.txt", KindText, true},
		{"Resume.PDF", KindPDF, true},
		{"jane_doe.docx", KindDocx, true},
		{"photo.png", "", false},
		{"noextension", "", false},
	}

	for _, tt := range tests {
		kind, ok := KindForFilename(tt.filename)
		if kind != tt.kind || ok != tt.ok {
			t.Fatalf("%s: expected (%q, %v), got (%q, %v)", tt.filename, tt.kind, tt.ok, kind, ok)
		}
	}
}
