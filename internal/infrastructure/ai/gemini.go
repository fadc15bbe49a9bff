// Package ai adapts the Gemini generative service behind the TextGenerator
// port. Output is free-form text; all defensive parsing lives with the caller.
package ai

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

const defaultModel = "gemini-2.5-flash"

type Gemini struct {
	model llms.Model
}

// NewGemini builds the client once at startup; the instance is reused across
// requests.
func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(defaultModel),
	)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Gemini{model: llm}, nil
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return resp, nil
}
