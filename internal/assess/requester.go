// Package assess turns a job description and a resume into a normalized
// match assessment: it builds the scoring prompt, submits it to a text
// generation service, and parses the free-text answer into a score and tier.
package assess

import (
	"context"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/recruiterlab/resume-screener/internal/ai"
	"github.com/recruiterlab/resume-screener/internal/logger"
)

// FailureMarker is returned as the raw assessment when every configured
// model fails. Downstream parsing degrades it to score 0 instead of
// aborting the batch.
const FailureMarker = "Failed to generate response due to API errors."

const (
	defaultCharBudget = 12000
	defaultMaxLogLen  = 200
)

//go:embed prompt.md
var promptTemplate string

//go:embed followup.md
var followupTemplate string

// Result is the service response reduced to what the pipeline records.
type Result struct {
	Raw   string `json:"raw"`
	Score int    `json:"score"`
	Tier  Tier   `json:"tier"`
}

// Config carries the requester policy knobs.
type Config struct {
	// CharBudget caps how many runes of the JD and resume each make it
	// into the prompt. Truncation is silent and from the tail.
	CharBudget int
	Thresholds Thresholds
	// MaxLogLength bounds prompt/response previews in debug logs.
	MaxLogLength int
}

// Requester submits assessment prompts to a generator. It is the only
// network-calling component in the core and never returns an error: service
// failure degrades to the failure marker.
type Requester struct {
	generator  ai.Generator
	charBudget int
	thresholds Thresholds
	maxLogLen  int
	logger     *zap.Logger
}

// NewRequester builds a requester around a generator. A nil config uses the
// default budget and thresholds.
func NewRequester(generator ai.Generator, cfg *Config, log *zap.Logger) *Requester {
	if cfg == nil {
		cfg = &Config{}
	}
	charBudget := cfg.CharBudget
	if charBudget <= 0 {
		charBudget = defaultCharBudget
	}
	thresholds := cfg.Thresholds
	if thresholds.Strong == 0 {
		thresholds = DefaultThresholds()
	}
	maxLogLen := cfg.MaxLogLength
	if maxLogLen <= 0 {
		maxLogLen = defaultMaxLogLen
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Requester{
		generator:  generator,
		charBudget: charBudget,
		thresholds: thresholds,
		maxLogLen:  maxLogLen,
		logger:     log,
	}
}

// Assess submits the scoring prompt and parses the response into a Result.
func (r *Requester) Assess(ctx context.Context, jdText, resumeText, candidateName string) Result {
	raw := r.Request(ctx, jdText, resumeText, candidateName)
	score, tier := ParseScore(raw, r.thresholds)
	return Result{Raw: raw, Score: score, Tier: tier}
}

// Request returns the model's raw formatted answer, or the failure marker
// once every configured model is exhausted.
func (r *Requester) Request(ctx context.Context, jdText, resumeText, candidateName string) string {
	prompt := buildPrompt(promptTemplate, map[string]string{
		"{{CANDIDATE_NAME}}":  candidateName,
		"{{JOB_DESCRIPTION}}": trimToBudget(jdText, r.charBudget),
		"{{RESUME}}":          trimToBudget(resumeText, r.charBudget),
	})

	r.logger.Debug("assessment request",
		zap.String("candidate", candidateName),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, r.maxLogLen)),
	)

	raw, err := r.generator.GenerateContent(ctx, prompt)
	if err != nil {
		r.logger.Warn("assessment failed for all models",
			zap.String("candidate", candidateName),
			zap.Error(err),
		)
		return FailureMarker
	}

	r.logger.Debug("assessment response",
		zap.String("candidate", candidateName),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, r.maxLogLen)),
	)

	return raw
}

// FollowUp generates candidate outreach messaging (WhatsApp, email and
// screening questions). Unlike Assess, failures surface as errors: there is
// no degraded rendering of a message that was never generated.
func (r *Requester) FollowUp(ctx context.Context, jdText, resumeText string) (string, error) {
	prompt := buildPrompt(followupTemplate, map[string]string{
		"{{JOB_DESCRIPTION}}": trimToBudget(jdText, r.charBudget),
		"{{RESUME}}":          trimToBudget(resumeText, r.charBudget),
	})

	return r.generator.GenerateContent(ctx, prompt)
}

func buildPrompt(template string, replacements map[string]string) string {
	for placeholder, value := range replacements {
		template = strings.ReplaceAll(template, placeholder, value)
	}
	return template
}

func trimToBudget(s string, budget int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= budget {
		return s
	}
	return string(runes[:budget])
}
