package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/creativesuite/internal/client/models"
	"google.golang.org/genai"
)

// GeminiProvider implements Provider for Google Gemini.
type GeminiProvider struct {
	client     *genai.Client
	chatModel  string
	imageModel string
}

// NewGeminiProvider creates a Gemini provider.
func NewGeminiProvider(ctx context.Context, cfg ProviderConfig) (*GeminiProvider, error) {
	cfg.Name = ProviderGemini
	cfg = cfg.withDefaults()

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiProvider{client: client, chatModel: cfg.ChatModel, imageModel: cfg.ImageModel}, nil
}

func (p *GeminiProvider) Name() string {
	return ProviderGemini
}

func (p *GeminiProvider) Answer(ctx context.Context, prompt string, history []models.ChatMessage) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, msg := range history {
		role := "user"
		if msg.Role == models.RoleModel {
			role = "model"
		}
		contents = append(contents, textContent(role, msg.Text))
	}
	contents = append(contents, textContent("user", prompt))

	resp, err := p.client.Models.GenerateContent(ctx, p.chatModel, contents, nil)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, part := range firstCandidateParts(resp) {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}

func (p *GeminiProvider) GenerateImage(ctx context.Context, prompt string) (*models.Image, error) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE"},
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.imageModel, []*genai.Content{textContent("user", prompt)}, config)
	if err != nil {
		return nil, err
	}

	for _, part := range firstCandidateParts(resp) {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return models.NewImage(part.InlineData.MIMEType, part.InlineData.Data), nil
		}
	}
	return nil, ErrNoImage
}

func textContent(role, text string) *genai.Content {
	return &genai.Content{Role: role, Parts: []*genai.Part{{Text: text}}}
}

func firstCandidateParts(resp *genai.GenerateContentResponse) []*genai.Part {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	parts := make([]*genai.Part, 0, len(resp.Candidates[0].Content.Parts))
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			parts = append(parts, part)
		}
	}
	return parts
}
