package assistant

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/dmitrijs2005/creativesuite/internal/client/models"
)

// AnthropicProvider implements Provider for Anthropic Claude. It has no
// image generation.
type AnthropicProvider struct {
	client    anthropic.Client
	chatModel string
	maxTokens int
}

// NewAnthropicProvider creates an Anthropic provider. Extra request options
// are appended after the ones derived from cfg.
func NewAnthropicProvider(cfg ProviderConfig, opts ...option.RequestOption) *AnthropicProvider {
	cfg.Name = ProviderAnthropic
	cfg = cfg.withDefaults()

	reqOpts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.BaseURL))
	}
	reqOpts = append(reqOpts, opts...)

	return &AnthropicProvider{
		client:    anthropic.NewClient(reqOpts...),
		chatModel: cfg.ChatModel,
		maxTokens: cfg.MaxTokens,
	}
}

func (p *AnthropicProvider) Name() string {
	return ProviderAnthropic
}

func (p *AnthropicProvider) Answer(ctx context.Context, prompt string, history []models.ChatMessage) (string, error) {
	messages := make([]anthropic.MessageParam, 0, len(history)+1)
	for _, msg := range history {
		// the conversation must open with a user turn
		if len(messages) == 0 && msg.Role == models.RoleModel {
			continue
		}
		if msg.Role == models.RoleModel {
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Text)))
			continue
		}
		messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Text)))
	}
	messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)))

	resp, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.chatModel),
		Messages:  messages,
		MaxTokens: int64(p.maxTokens),
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if b, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(b.Text)
		}
	}
	return sb.String(), nil
}

func (p *AnthropicProvider) GenerateImage(ctx context.Context, prompt string) (*models.Image, error) {
	return nil, ErrImageUnsupported
}
