package provider

import (
	"context"
	"fmt"
	"time"

	"pitwall/internal/config"
	"pitwall/internal/logger"
)

// Build constructs the provider selected in config. Providers without a
// credential are still returned; they surface the missing key on first use.
func Build(ctx context.Context, cfg config.AIConfig) (ModelProvider, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	var p ModelProvider
	switch cfg.Provider {
	case "gemini":
		gp, err := NewGeminiProvider(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		p = gp
	case "openai":
		p = NewOpenAIChatProvider(cfg.APIURL, cfg.APIKey, cfg.Model, timeout)
	default:
		return nil, fmt.Errorf("unknown ai.provider %q", cfg.Provider)
	}
	if !p.Enabled() {
		logger.Warnf("model provider %s has no API key; strategy requests will fail until one is set", p.ID())
	} else {
		logger.Infof("model provider ready: %s (key ****%s)", p.ID(), keyTail(cfg.APIKey))
	}
	return p, nil
}

func keyTail(key string) string {
	if len(key) <= 4 {
		return key
	}
	return key[len(key)-4:]
}
