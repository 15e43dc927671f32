package ai

import "context"

// Generator is the provider-neutral text generation capability consumed by
// the assessment requester.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
