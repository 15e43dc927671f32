package identity

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func newTestResolver(t *testing.T, recognizer PersonRecognizer) *Resolver {
	t.Helper()
	return NewResolver(nil, recognizer, zap.NewNop())
}

func TestResolveLabeledField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		expect string
	}{
		{
			name:   "simple name label",
			text:   "Name: Jane Doe\nQA Engineer\njane@example.com",
			expect: "Jane Doe",
		},
		{
			name:   "candidate name label",
			text:   "Candidate Name: ravi shankar kumar",
			expect: "Ravi Shankar Kumar",
		},
		{
			name:   "full name with dash separator",
			text:   "Full Name - MARY ANN SMITH",
			expect: "Mary Ann Smith",
		},
		{
			name:   "resume of prefix without separator",
			text:   "Resume of John Smith",
			expect: "John Smith",
		},
		{
			name:   "presented by prefix",
			text:   "Presented by: Alice Wong",
			expect: "Alice Wong",
		},
		{
			name:   "label found near the end of the document",
			text:   strings.Repeat("experience line\n", 30) + "Candidate Name: Bob Martin",
			expect: "Bob Martin",
		},
	}

	resolver := newTestResolver(t, nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Resolve(tt.text, "fallback.docx")
			if got.Name != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got.Name)
			}
		})
	}
}

func TestResolveLabeledFieldDisqualifiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{
			name: "job title in value",
			text: "Name: Senior QA Engineer",
		},
		{
			name: "email sigil in value",
			text: "Name: jane@example.com here",
		},
		{
			name: "location in value",
			text: "Name: Bangalore Karnataka India",
		},
		{
			name: "single token",
			text: "Name: Jane",
		},
		{
			name: "too many tokens",
			text: "Name: One Two Three Four Five",
		},
	}

	resolver := newTestResolver(t, nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The fallback filename is fully noise, so a rejected label
			// surfaces as the sentinel.
			got := resolver.Resolve(tt.text, "resume.docx")
			if got.Name != NameNotFound {
				t.Fatalf("expected sentinel, got %q", got.Name)
			}
		})
	}
}

func TestResolveTwoLineLabel(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(t, nil)

	got := resolver.Resolve("Candidate Name\nPriya Sharma\nTester", "resume.pdf")
	if got.Name != "Priya Sharma" {
		t.Fatalf("expected Priya Sharma, got %q", got.Name)
	}
}

func TestResolveHeaderHeuristic(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(t, nil)

	tests := []struct {
		name   string
		text   string
		expect string
	}{
		{
			name:   "title-cased header line",
			text:   "Jane Doe\nSelenium, SQL, Linux",
			expect: "Jane Doe",
		},
		{
			name:   "header with job title is rejected",
			text:   "Java Developer\nMore text here",
			expect: NameNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Resolve(tt.text, "cv.txt")
			if got.Name != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got.Name)
			}
		})
	}
}

type stubRecognizer struct {
	entities []Entity
	err      error
	called   bool
}

func (s *stubRecognizer) RecognizePersons(string) ([]Entity, error) {
	s.called = true
	return s.entities, s.err
}

func TestResolvePersonEntity(t *testing.T) {
	t.Parallel()

	recognizer := &stubRecognizer{entities: []Entity{
		{Text: "Hyderabad", Label: "GPE"},
		{Text: "Arun Kumar Patel", Label: "PERSON"},
	}}

	resolver := newTestResolver(t, recognizer)

	// No label, no title-cased header: only the recognizer can produce a name.
	got := resolver.Resolve("experienced in selenium\nand sql databases", "resume.txt")
	if got.Name != "Arun Kumar Patel" {
		t.Fatalf("expected Arun Kumar Patel, got %q", got.Name)
	}
	if !recognizer.called {
		t.Fatal("expected recognizer to be called")
	}
}

func TestResolvePersonEntitySkippedWhenUnavailable(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(t, nil)

	got := resolver.Resolve("experienced in selenium", "amit_verma.pdf")
	if got.Name != "Amit Verma" {
		t.Fatalf("expected filename fallback, got %q", got.Name)
	}
}

func TestResolvePersonEntityErrorFallsThrough(t *testing.T) {
	t.Parallel()

	recognizer := &stubRecognizer{err: errors.New("model unavailable")}
	resolver := newTestResolver(t, recognizer)

	got := resolver.Resolve("plain text", "sara_lee.docx")
	if got.Name != "Sara Lee" {
		t.Fatalf("expected filename fallback, got %q", got.Name)
	}
}

func TestResolveFilenameFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		expect   string
	}{
		{
			name:     "separators and noise tokens",
			filename: "Resume_jane_doe_v2.docx",
			expect:   "Jane Doe",
		},
		{
			name:     "dots as separators",
			filename: "john.smith.final.pdf",
			expect:   "John Smith",
		},
		{
			name:     "role words stripped",
			filename: "priya-sharma-developer.txt",
			expect:   "Priya Sharma",
		},
		{
			name:     "fully disqualified yields sentinel",
			filename: "resume_final_v3.docx",
			expect:   NameNotFound,
		},
	}

	resolver := newTestResolver(t, nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Resolve("no name signal here", tt.filename)
			if got.Name != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got.Name)
			}
		})
	}
}

func TestResolvePartialLimits(t *testing.T) {
	t.Parallel()

	// Only the scan windows are set; the token bounds must still default.
	resolver := NewResolver(&Config{Limits: Limits{HeadLines: 1, TailLines: 1}}, nil, zap.NewNop())

	got := resolver.Resolve("Name: Jane Doe", "resume.docx")
	if got.Name != "Jane Doe" {
		t.Fatalf("expected default token bounds to accept a two-token name, got %q", got.Name)
	}

	// A label outside the narrowed window is not scanned.
	text := strings.Repeat("plain filler text\n", 5) + "Name: Bob Martin\n" + strings.Repeat("plain filler text\n", 5)
	got = resolver.Resolve(text, "resume.docx")
	if got.Name != NameNotFound {
		t.Fatalf("expected the narrowed window to miss the label, got %q", got.Name)
	}
}

func TestResolveNameIsNeverEmpty(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(t, nil)

	for _, text := range []string{"", "   \n\t\n", "@@@@", "12345"} {
		got := resolver.Resolve(text, "")
		if got.Name == "" {
			t.Fatalf("expected non-empty name for input %q", text)
		}
	}
}

func TestResolveLabelWinsOverHeader(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(t, nil)

	// Both the label and the header could match; the label stage runs first.
	got := resolver.Resolve("Other Person\nName: Jane Doe", "resume.docx")
	if got.Name != "Jane Doe" {
		t.Fatalf("expected labeled value to win, got %q", got.Name)
	}
}

func TestExtractEmail(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(t, nil)

	tests := []struct {
		name   string
		text   string
		expect string
	}{
		{
			name:   "plain address",
			text:   "Name: Jane Doe\njane.doe@example.com",
			expect: "jane.doe@example.com",
		},
		{
			name:   "embedded in a sentence",
			text:   "contact me at dev.lead+hiring@corp.example.co.uk anytime",
			expect: "dev.lead+hiring@corp.example.co.uk",
		},
		{
			name:   "no address",
			text:   "Name: Jane Doe\nno contact details",
			expect: EmailNotFound,
		},
		{
			name:   "sigil without domain",
			text:   "follow @janedoe on socials",
			expect: EmailNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Resolve(tt.text, "resume.txt")
			if got.Email != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got.Email)
			}
		})
	}
}
