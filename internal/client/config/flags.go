package config

import (
	"flag"
	"io"
	"os"

	"github.com/dmitrijs2005/creativesuite/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-d string   database DSN
//	-p string   provider: gemini, openai or anthropic
//	-m string   chat model
//	-g string   image model
//	-o string   directory for generated images
//	-l string   log level
//	-f string   log format: text, json or console
//
// The API key is deliberately not a flag; use the environment or the file.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-p", "-m", "-g", "-o", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.Provider, "p", cfg.Provider, "assistant provider")
	fs.StringVar(&cfg.ChatModel, "m", cfg.ChatModel, "chat model")
	fs.StringVar(&cfg.ImageModel, "g", cfg.ImageModel, "image model")
	fs.StringVar(&cfg.ImageDir, "o", cfg.ImageDir, "image output directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
