// Package config loads runtime configuration for the Creative Suite CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. The CREATIVESUITE_API_KEY environment variable.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   database DSN (default "suite.db")
//	-p string   provider (default "gemini")
//	-m string   chat model
//	-g string   image model
//	-o string   image output directory (default "images")
//	-l string   log level (default "info")
//	-f string   log format: text, json or console (default "text")
//
// # JSON schema
//
//	{
//	  "database_dsn": "suite.db",
//	  "provider": "openai",
//	  "api_key": "sk-...",
//	  "chat_model": "gpt-4o-mini",
//	  "image_model": "dall-e-3",
//	  "image_dir": "images",
//	  "log_level": "debug",
//	  "log_format": "json",
//	  "max_tokens": 2048
//	}
package config
