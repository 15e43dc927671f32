package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/recruiterlab/resume-screener/internal/utils"
)

var defaultModels = []string{"gemini-2.5-pro", "gemini-2.5-flash"}

const defaultBackoff = time.Second

// modelCaller abstracts a single generation call so tests can fake the API.
type modelCaller interface {
	generate(ctx context.Context, model, prompt string) (string, error)
}

// Generator wraps the Google GenAI client with an ordered model fallback:
// each model in the list is tried once, with a growing backoff between
// attempts. Sampling runs at temperature 0 for reproducibility.
type Generator struct {
	caller  modelCaller
	models  []string
	backoff time.Duration
	logger  *zap.Logger
}

// NewGenerator creates a Generator configured for the Gemini API backend.
func NewGenerator(ctx context.Context, apiKey string, models []string, backoff time.Duration, logger *zap.Logger) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if len(models) == 0 {
		models = defaultModels
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{
		caller:  &genaiCaller{client: client},
		models:  models,
		backoff: backoff,
		logger:  logger,
	}, nil
}

// GenerateContent tries each configured model in order and returns the first
// successful response. The error carries the last failure once every model
// is exhausted.
func (g *Generator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.caller == nil {
		return "", errors.New("gemini generator is not initialized")
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	var lastErr error
	for attempt, model := range g.models {
		output, err := g.caller.generate(ctx, model, prompt)
		if err == nil {
			return output, nil
		}
		lastErr = err

		g.logger.Warn("model request failed",
			zap.String("model", model),
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)

		if attempt == len(g.models)-1 {
			break
		}
		if err := utils.WaitFor(ctx, utils.Backoff(g.backoff, attempt)); err != nil {
			return "", err
		}
	}

	return "", fmt.Errorf("all %d models failed: %w", len(g.models), lastErr)
}

// Models returns the configured fallback order.
func (g *Generator) Models() []string {
	if g == nil {
		return nil
	}
	return g.models
}

type genaiCaller struct {
	client *genai.Client
}

func (c *genaiCaller) generate(ctx context.Context, model, prompt string) (string, error) {
	temperature := float32(0)
	cfg := &genai.GenerateContentConfig{Temperature: &temperature}

	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}

	return output, nil
}
