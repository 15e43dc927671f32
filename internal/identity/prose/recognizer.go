// Package prose adapts the jdkato/prose NLP library to the identity
// package's PersonRecognizer capability. The underlying model is loaded once
// at construction and the recognizer is passed explicitly to the resolver.
package prose

import (
	"fmt"

	"github.com/jdkato/prose/v2"

	"github.com/recruiterlab/resume-screener/internal/identity"
)

// Recognizer extracts labeled entities from free text.
type Recognizer struct{}

// NewRecognizer returns a ready recognizer.
func NewRecognizer() *Recognizer {
	return &Recognizer{}
}

// RecognizePersons runs entity extraction over the text and returns every
// labeled entity in document order. Filtering to PERSON is the caller's job.
func (r *Recognizer) RecognizePersons(text string) ([]identity.Entity, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(true),
	)
	if err != nil {
		return nil, fmt.Errorf("building prose document: %w", err)
	}

	entities := doc.Entities()
	out := make([]identity.Entity, 0, len(entities))
	for _, entity := range entities {
		out = append(out, identity.Entity{Text: entity.Text, Label: entity.Label})
	}

	return out, nil
}
