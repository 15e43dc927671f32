package identity

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Input is the document view shared by all strategies: normalized non-empty
// lines plus the fallback filename.
type Input struct {
	Lines    []string
	Filename string
}

// Strategy is a single name-resolution attempt. Strategies are tried in
// order; the first success wins.
type Strategy interface {
	Name() string
	Resolve(input *Input) (string, bool)
}

var (
	// Labels that carry an inline value separated by ':' or '-'.
	inlineLabel = regexp.MustCompile(`(?i)^(?:candidate\s+name|full\s+name|name)\s*[:\-]\s*(\S.*)$`)
	// Labels that read naturally with plain whitespace as the separator.
	prefixLabel = regexp.MustCompile(`(?i)^(?:resume\s+of|presented\s+by)\s*[:\-]?\s+(\S.*)$`)
	// A label line with no inline value; the next line holds the value.
	bareLabel = regexp.MustCompile(`(?i)^(?:candidate\s+name|full\s+name|name)\s*[:\-]?$`)
	// A short run of capitalized words, the usual resume header shape.
	headerShape = regexp.MustCompile(`^[A-Z][a-z'.\-]+(?:\s+[A-Z](?:[a-z'.\-]+|\.)?){1,4}$`)
)

type labeledField struct {
	vocab  *Vocabulary
	limits Limits
}

func newLabeledField(vocab *Vocabulary, limits Limits) Strategy {
	return &labeledField{vocab: vocab, limits: limits}
}

func (s *labeledField) Name() string { return "labeled_field" }

func (s *labeledField) Resolve(input *Input) (string, bool) {
	for _, line := range window(input.Lines, s.limits.HeadLines, s.limits.TailLines) {
		for _, pattern := range []*regexp.Regexp{inlineLabel, prefixLabel} {
			match := pattern.FindStringSubmatch(line)
			if match == nil {
				continue
			}
			if value, ok := s.accept(match[1]); ok {
				return value, true
			}
		}
	}
	return "", false
}

func (s *labeledField) accept(value string) (string, bool) {
	return acceptValue(value, s.vocab, s.limits)
}

type twoLineLabel struct {
	vocab  *Vocabulary
	limits Limits
}

func newTwoLineLabel(vocab *Vocabulary, limits Limits) Strategy {
	return &twoLineLabel{vocab: vocab, limits: limits}
}

func (s *twoLineLabel) Name() string { return "two_line_label" }

func (s *twoLineLabel) Resolve(input *Input) (string, bool) {
	head := input.Lines
	if len(head) > s.limits.HeadLines {
		head = head[:s.limits.HeadLines]
	}
	for i, line := range head {
		if !bareLabel.MatchString(line) || i+1 >= len(input.Lines) {
			continue
		}
		if value, ok := acceptValue(input.Lines[i+1], s.vocab, s.limits); ok {
			return value, true
		}
	}
	return "", false
}

type headerHeuristic struct {
	vocab  *Vocabulary
	limits Limits
}

func newHeaderHeuristic(vocab *Vocabulary, limits Limits) Strategy {
	return &headerHeuristic{vocab: vocab, limits: limits}
}

func (s *headerHeuristic) Name() string { return "header_heuristic" }

func (s *headerHeuristic) Resolve(input *Input) (string, bool) {
	head := input.Lines
	if len(head) > s.limits.HeaderLines {
		head = head[:s.limits.HeaderLines]
	}
	for _, line := range head {
		if !headerShape.MatchString(line) {
			continue
		}
		if value, ok := acceptValue(line, s.vocab, s.limits); ok {
			return value, true
		}
	}
	return "", false
}

// PersonRecognizer is an optional named-entity capability. Implementations
// return labeled entities; the strategy keeps only PERSON labels.
type PersonRecognizer interface {
	RecognizePersons(text string) ([]Entity, error)
}

// Entity is a labeled span recognized in free text.
type Entity struct {
	Text  string
	Label string
}

type personEntity struct {
	vocab      *Vocabulary
	limits     Limits
	recognizer PersonRecognizer
}

func newPersonEntity(vocab *Vocabulary, limits Limits, recognizer PersonRecognizer) Strategy {
	return &personEntity{vocab: vocab, limits: limits, recognizer: recognizer}
}

func (s *personEntity) Name() string { return "person_entity" }

func (s *personEntity) Resolve(input *Input) (string, bool) {
	if s.recognizer == nil {
		return "", false
	}

	text := strings.Join(window(input.Lines, s.limits.EntityWindow, s.limits.EntityWindow), "\n")
	entities, err := s.recognizer.RecognizePersons(text)
	if err != nil {
		return "", false
	}

	for _, entity := range entities {
		if entity.Label != "PERSON" {
			continue
		}
		if value, ok := acceptValue(entity.Text, s.vocab, s.limits); ok {
			return value, true
		}
	}
	return "", false
}

type filenameFallback struct {
	vocab *Vocabulary
}

func newFilenameFallback(vocab *Vocabulary) Strategy {
	return &filenameFallback{vocab: vocab}
}

func (s *filenameFallback) Name() string { return "filename_fallback" }

// Resolve always succeeds: a cleaned filename stem or the NameNotFound
// sentinel when the stem itself is a disqualified value.
func (s *filenameFallback) Resolve(input *Input) (string, bool) {
	stem := strings.TrimSuffix(input.Filename, filepath.Ext(input.Filename))
	stem = strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(stem)

	kept := make([]string, 0, 4)
	for _, token := range strings.Fields(stem) {
		if s.vocab.Noise(token) || s.vocab.Role(token) {
			continue
		}
		kept = append(kept, token)
	}

	cleaned := titleCase(strings.Join(kept, " "))
	if cleaned == "" || s.vocab.Disqualifies(cleaned) {
		return NameNotFound, true
	}
	return cleaned, true
}

// acceptValue applies the shared accept rule: 2-4 tokens, no disqualifier
// words, returned title-cased.
func acceptValue(value string, vocab *Vocabulary, limits Limits) (string, bool) {
	value = strings.TrimSpace(value)
	tokens := tokenCount(value)
	if tokens < limits.MinTokens || tokens > limits.MaxTokens {
		return "", false
	}
	if vocab.Disqualifies(value) {
		return "", false
	}
	return titleCase(value), true
}

// window returns the first head and last tail lines without overlap.
func window(lines []string, head, tail int) []string {
	if len(lines) <= head+tail {
		return lines
	}
	out := make([]string, 0, head+tail)
	out = append(out, lines[:head]...)
	out = append(out, lines[len(lines)-tail:]...)
	return out
}
