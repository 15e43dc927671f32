// Package identity resolves a candidate's display name and email address from
// unstructured resume text. Resolution runs an ordered cascade of strategies:
// structured signals (explicit labels) are preferred over statistical ones
// (entity recognition) over lexical ones (the filename), and every stage
// applies the same disqualifier vocabulary.
package identity

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/recruiterlab/resume-screener/internal/document"
)

const (
	// EmailNotFound is returned when no email address matches structurally.
	EmailNotFound = "Not found"
	// NameNotFound is returned when even the cleaned filename is a
	// disqualified value. A sentinel beats a misleading guess.
	NameNotFound = "Name Not Found"
)

// Identity is a resolved candidate identity. Derived once per document and
// never mutated afterwards.
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Limits bounds the cascade's search windows and the accepted name length.
// The 2-4 token window is an empirically tuned policy value.
type Limits struct {
	MinTokens    int
	MaxTokens    int
	HeadLines    int
	TailLines    int
	HeaderLines  int
	EntityWindow int
}

// DefaultLimits returns the tuned cascade bounds.
func DefaultLimits() Limits {
	return Limits{
		MinTokens:    2,
		MaxTokens:    4,
		HeadLines:    20,
		TailLines:    10,
		HeaderLines:  3,
		EntityWindow: 15,
	}
}

// Config carries the resolver policy knobs.
type Config struct {
	Vocabulary *Vocabulary
	Limits     Limits
}

// Resolver runs the strategy cascade. Construct with NewResolver; the
// recognizer is an optional capability and may be nil.
type Resolver struct {
	strategies []Strategy
	vocab      *Vocabulary
	logger     *zap.Logger
}

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// NewResolver builds a resolver with the default strategy order. A nil config
// uses the built-in vocabulary and limits.
func NewResolver(cfg *Config, recognizer PersonRecognizer, logger *zap.Logger) *Resolver {
	if cfg == nil {
		cfg = &Config{}
	}
	vocab := cfg.Vocabulary
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	limits := fillLimits(cfg.Limits)
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Resolver{
		strategies: []Strategy{
			newLabeledField(vocab, limits),
			newTwoLineLabel(vocab, limits),
			newHeaderHeuristic(vocab, limits),
			newPersonEntity(vocab, limits, recognizer),
			newFilenameFallback(vocab),
		},
		vocab:  vocab,
		logger: logger,
	}
}

// Resolve runs the cascade over the document text, first success wins. It
// never fails: the filename fallback guarantees a non-empty name.
func (r *Resolver) Resolve(text, fallbackFilename string) Identity {
	input := &Input{
		Lines:    document.NormalizeLines(text),
		Filename: fallbackFilename,
	}

	identity := Identity{Name: NameNotFound, Email: extractEmail(text)}

	for _, strategy := range r.strategies {
		name, ok := strategy.Resolve(input)
		if !ok {
			continue
		}
		r.logger.Debug("candidate name resolved",
			zap.String("strategy", strategy.Name()),
			zap.String("name", name),
			zap.String("file", fallbackFilename),
		)
		identity.Name = name
		return identity
	}

	// Unreachable with the default cascade: the filename fallback always
	// produces a value or the sentinel.
	return identity
}

// fillLimits replaces unset fields with their defaults, so a partial Limits
// overrides only what it sets.
func fillLimits(limits Limits) Limits {
	defaults := DefaultLimits()
	if limits.MinTokens == 0 {
		limits.MinTokens = defaults.MinTokens
	}
	if limits.MaxTokens == 0 {
		limits.MaxTokens = defaults.MaxTokens
	}
	if limits.HeadLines == 0 {
		limits.HeadLines = defaults.HeadLines
	}
	if limits.TailLines == 0 {
		limits.TailLines = defaults.TailLines
	}
	if limits.HeaderLines == 0 {
		limits.HeaderLines = defaults.HeaderLines
	}
	if limits.EntityWindow == 0 {
		limits.EntityWindow = defaults.EntityWindow
	}
	return limits
}

func extractEmail(text string) string {
	if match := emailPattern.FindString(text); match != "" {
		return match
	}
	return EmailNotFound
}

func titleCase(s string) string {
	return cases.Title(language.English).String(strings.ToLower(s))
}

func tokenCount(s string) int {
	return len(strings.Fields(s))
}
