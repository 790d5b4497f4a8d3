package assistant

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/creativesuite/internal/client/models"
)

var (
	ErrImageUnsupported = errors.New("provider cannot generate images")
	ErrEmptyAnswer      = errors.New("empty answer")
	ErrNoImage          = errors.New("response contained no image")
)

// Provider is a generative-AI backend.
type Provider interface {
	// Name returns the provider name, e.g. "gemini".
	Name() string

	// Answer replies to prompt given the preceding conversation.
	Answer(ctx context.Context, prompt string, history []models.ChatMessage) (string, error)

	// GenerateImage renders prompt into an image.
	GenerateImage(ctx context.Context, prompt string) (*models.Image, error)
}

// ProviderConfig selects and configures a Provider. Empty model names fall
// back to the provider's defaults.
type ProviderConfig struct {
	Name       string
	APIKey     string
	ChatModel  string
	ImageModel string
	MaxTokens  int

	// BaseURL overrides the provider's API endpoint, e.g. for a proxy.
	BaseURL string
}

const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

type modelDefaults struct {
	chat, image string
}

var defaults = map[string]modelDefaults{
	ProviderGemini:    {chat: "gemini-2.5-flash", image: "gemini-2.5-flash-image"},
	ProviderOpenAI:    {chat: "gpt-4o-mini", image: "dall-e-3"},
	ProviderAnthropic: {chat: "claude-3-5-haiku-latest"},
}

func (c ProviderConfig) withDefaults() ProviderConfig {
	d := defaults[c.Name]
	if c.ChatModel == "" {
		c.ChatModel = d.chat
	}
	if c.ImageModel == "" {
		c.ImageModel = d.image
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = 1024
	}
	return c
}

// NewProvider builds the provider named by cfg.Name.
func NewProvider(ctx context.Context, cfg ProviderConfig) (Provider, error) {
	switch cfg.Name {
	case ProviderGemini:
		return NewGeminiProvider(ctx, cfg)
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg), nil
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %q", cfg.Name)
	}
}

// unavailableProvider stands in for a provider that could not be built, so
// the rest of the client keeps working and every request takes the fallback.
type unavailableProvider struct {
	name  string
	cause error
}

// Unavailable returns a Provider whose calls all fail with cause.
func Unavailable(name string, cause error) Provider {
	return &unavailableProvider{name: name, cause: cause}
}

func (u *unavailableProvider) Name() string {
	return u.name
}

func (u *unavailableProvider) Answer(context.Context, string, []models.ChatMessage) (string, error) {
	return "", u.cause
}

func (u *unavailableProvider) GenerateImage(context.Context, string) (*models.Image, error) {
	return nil, u.cause
}
