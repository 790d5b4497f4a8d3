package config

import "os"

// APIKeyEnv names the environment variable holding the provider API key.
const APIKeyEnv = "CREATIVESUITE_API_KEY"

// Config holds runtime settings for the Creative Suite CLI.
//
// ChatModel and ImageModel may be left empty, in which case the provider's
// own defaults apply.
type Config struct {
	DatabaseDSN string
	Provider    string
	APIKey      string
	ChatModel   string
	ImageModel  string
	ImageDir    string
	LogLevel    string
	LogFormat   string
	MaxTokens   int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "suite.db"
	c.Provider = "gemini"
	c.ImageDir = "images"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.MaxTokens = 1024
}

func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv(APIKeyEnv); ok && v != "" {
		cfg.APIKey = v
	}
}

// LoadConfig constructs a Config from defaults, the environment, an optional
// JSON file and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
