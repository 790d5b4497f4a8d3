package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/creativesuite/internal/flagx"
)

// JsonConfig is the on-disk shape of the config file.
type JsonConfig struct {
	DatabaseDSN string `json:"database_dsn"`
	Provider    string `json:"provider"`
	APIKey      string `json:"api_key"`
	ChatModel   string `json:"chat_model"`
	ImageModel  string `json:"image_model"`
	ImageDir    string `json:"image_dir"`
	LogLevel    string `json:"log_level"`
	LogFormat   string `json:"log_format"`
	MaxTokens   int    `json:"max_tokens"`
}

// parseJson overlays cfg with the non-empty values of the file named by -c
// or -config. Panics if the file cannot be read or decoded.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.DatabaseDSN, jc.DatabaseDSN)
	overlay(&cfg.Provider, jc.Provider)
	overlay(&cfg.APIKey, jc.APIKey)
	overlay(&cfg.ChatModel, jc.ChatModel)
	overlay(&cfg.ImageModel, jc.ImageModel)
	overlay(&cfg.ImageDir, jc.ImageDir)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.LogFormat, jc.LogFormat)
	if jc.MaxTokens > 0 {
		cfg.MaxTokens = jc.MaxTokens
	}
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
