package provider

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider calls the Google Gemini API.
type GeminiProvider struct {
	id     string
	model  string
	client *genai.Client
}

// NewGeminiProvider builds a Gemini-backed provider. A missing API key does
// not fail construction; every Generate call reports the missing credential
// instead, so the rest of the application stays usable.
func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		model = "gemini-2.0-flash"
	}
	p := &GeminiProvider{id: "gemini:" + model, model: model}
	if strings.TrimSpace(apiKey) == "" {
		return p, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	p.client = client
	return p, nil
}

func (p *GeminiProvider) ID() string    { return p.id }
func (p *GeminiProvider) Enabled() bool { return p.client != nil }

// Generate sends the prompt and returns the model's text verbatim. One
// attempt only.
func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.client == nil {
		return "", fmt.Errorf("gemini api key is not configured")
	}
	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return text, nil
}
