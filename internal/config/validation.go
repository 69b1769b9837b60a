package config

import "fmt"

func validate(cfg *Config) error {
	switch cfg.AI.Provider {
	case "gemini", "openai":
	default:
		return fmt.Errorf("ai.provider must be \"gemini\" or \"openai\", got %q", cfg.AI.Provider)
	}
	if cfg.Season.Year < 1950 {
		return fmt.Errorf("season.year %d predates the championship", cfg.Season.Year)
	}
	return nil
}
