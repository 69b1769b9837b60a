package config

// Config is the top-level configuration for pitwall.
type Config struct {
	App     AppConfig     `toml:"app"`
	Season  SeasonConfig  `toml:"season"`
	Prices  PricesConfig  `toml:"prices"`
	Results ResultsConfig `toml:"results"`
	AI      AIConfig      `toml:"ai"`
}

type AppConfig struct {
	Env      string `toml:"env"`
	LogLevel string `toml:"log_level"`
	HTTPAddr string `toml:"http_addr"`
	LogPath  string `toml:"log_path"`
	LLMLog   string `toml:"llm_log_path"`
	LLMDump  bool   `toml:"llm_dump_payload"`
}

// SeasonConfig pins the season the aggregator and UI operate on.
type SeasonConfig struct {
	Year int `toml:"year"`
}

// PricesConfig points at an optional YAML file of price overrides that is
// applied over the built-in defaults and re-applied when the file changes.
type PricesConfig struct {
	OverridesPath string `toml:"overrides_path"`
	Watch         bool   `toml:"watch"`
}

// ResultsConfig describes the race results provider and the on-disk cache of
// settled rounds.
type ResultsConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	CachePath      string `toml:"cache_path"`
}

// AIConfig selects and configures the generative model used for strategy
// recommendations.
type AIConfig struct {
	Provider       string `toml:"provider"` // "gemini" or "openai"
	Model          string `toml:"model"`
	APIKey         string `toml:"api_key"`
	APIURL         string `toml:"api_url"` // openai-compatible base URL
	TimeoutSeconds int    `toml:"timeout_seconds"`
}
