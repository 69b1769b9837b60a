package config

import "os"

const (
	DefaultSeason        = 2025
	DefaultResultsAPIURL = "https://api.jolpi.ca/ergast/f1"
	DefaultGeminiModel   = "gemini-2.0-flash"
)

func (c *Config) applyDefaults() {
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.App.HTTPAddr == "" {
		c.App.HTTPAddr = ":9981"
	}
	if c.Season.Year == 0 {
		c.Season.Year = DefaultSeason
	}
	if c.Results.BaseURL == "" {
		c.Results.BaseURL = DefaultResultsAPIURL
	}
	if c.Results.TimeoutSeconds <= 0 {
		c.Results.TimeoutSeconds = 30
	}
	if c.AI.Provider == "" {
		c.AI.Provider = "gemini"
	}
	if c.AI.Model == "" {
		c.AI.Model = DefaultGeminiModel
	}
	if c.AI.TimeoutSeconds <= 0 {
		c.AI.TimeoutSeconds = 60
	}
	if c.AI.APIKey == "" {
		c.AI.APIKey = apiKeyFromEnv(c.AI.Provider)
	}
}

// apiKeyFromEnv keeps the credential out of config files. F1_GEMINI_API_KEY
// is honored for compatibility with older deployments.
func apiKeyFromEnv(provider string) string {
	var names []string
	switch provider {
	case "openai":
		names = []string{"OPENAI_API_KEY"}
	default:
		names = []string{"GEMINI_API_KEY", "F1_GEMINI_API_KEY"}
	}
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
