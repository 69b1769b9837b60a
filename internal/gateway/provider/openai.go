package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// OpenAIChatProvider speaks the OpenAI-compatible chat completions API
// (/v1/chat/completions), which also covers DeepSeek, Qwen and similar
// gateways. Each Generate is a single HTTP attempt.
type OpenAIChatProvider struct {
	id         string
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewOpenAIChatProvider(baseURL, apiKey, model string, timeout time.Duration) *OpenAIChatProvider {
	url := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if url == "" {
		url = "https://api.openai.com/v1"
	}
	// Tolerate configs that already carry the full completions path.
	url = strings.TrimSuffix(url, "/chat/completions")
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &OpenAIChatProvider{
		id:         "openai:" + model,
		baseURL:    url,
		apiKey:     strings.TrimSpace(apiKey),
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (p *OpenAIChatProvider) ID() string    { return p.id }
func (p *OpenAIChatProvider) Enabled() bool { return p.apiKey != "" }

// SetHTTPClient sets the HTTP client for testing.
func (p *OpenAIChatProvider) SetHTTPClient(client *http.Client) {
	p.httpClient = client
}

func (p *OpenAIChatProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("openai api key is not configured")
	}
	body := map[string]any{
		"model":       p.model,
		"messages":    []map[string]string{{"role": "user", "content": prompt}},
		"temperature": 0.5,
	}
	b, err := json.Marshal(body)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		var eresp struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&eresp)
		msg := strings.TrimSpace(eresp.Error.Message)
		if msg == "" {
			msg = resp.Status
		}
		return "", fmt.Errorf("status=%d: %s", resp.StatusCode, msg)
	}
	var r struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", err
	}
	if len(r.Choices) == 0 {
		return "", fmt.Errorf("empty choices")
	}
	return r.Choices[0].Message.Content, nil
}
