package domain

import "context"

// TextGenerator is the narrow port to the external generative-text service.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// AIService wraps the generator for the three AI endpoints. Classification and
// recommendation degrade to an empty list when the generator fails or returns
// unparseable output; description generation propagates the error.
type AIService interface {
	GenerateDescription(ctx context.Context, title string, keywords []string) (string, error)
	ClassifyEvent(ctx context.Context, title, description string) ([]string, error)
	RecommendEvents(ctx context.Context, userID string) ([]*Event, error)
}
