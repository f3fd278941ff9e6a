// generator.go
package main

import (
	"fmt"

	"github.com/aktagon/llmkit/anthropic"
	"github.com/aktagon/llmkit/anthropic/types"
)

// AnthropicGenerator completes prompts against the Anthropic API with
// deterministic sampling. Each call is stateless.
type AnthropicGenerator struct {
	apiKey    string
	model     string
	maxTokens int
}

// NewAnthropicGenerator creates a generator using the configured model
// and token limit.
func NewAnthropicGenerator(apiKey string, settings *Settings) *AnthropicGenerator {
	return &AnthropicGenerator{
		apiKey:    apiKey,
		model:     settings.Generator.Model,
		maxTokens: settings.Generator.MaxTokens,
	}
}

// Complete sends the rendered prompt and returns the generated text.
// Temperature is pinned to zero so identical prompts yield identical
// output.
func (g *AnthropicGenerator) Complete(prompt string) (string, error) {
	settings := types.RequestSettings{
		Model:       g.model,
		MaxTokens:   g.maxTokens,
		Temperature: 0,
	}

	response, err := anthropic.PromptWithSettings("", prompt, "", g.apiKey, settings)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(response.Content) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	return response.Content[0].Text, nil
}
