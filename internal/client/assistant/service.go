package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/creativesuite/internal/client/models"
	"github.com/dmitrijs2005/creativesuite/internal/common"
	"github.com/dmitrijs2005/creativesuite/internal/logging"
)

// FallbackAnswer is returned by AnswerQuery whenever the provider fails.
const FallbackAnswer = "Sorry, I couldn't process that request. Please try again."

// Service is the failure-proof front of a Provider.
type Service struct {
	provider Provider
	log      logging.Logger
}

func NewService(p Provider, log logging.Logger) *Service {
	return &Service{provider: p, log: log.With("component", "assistant", "provider", p.Name())}
}

// AnswerQuery returns the provider's answer to prompt, or FallbackAnswer if
// the call fails, panics or yields no text.
func (s *Service) AnswerQuery(ctx context.Context, prompt string, history []models.ChatMessage) (answer string) {
	defer func() {
		if r := recover(); r != nil {
			s.fail(ctx, "answer query", fmt.Errorf("panic: %v", r))
			answer = FallbackAnswer
		}
	}()

	answer, err := s.provider.Answer(ctx, prompt, history)
	if err == nil && strings.TrimSpace(answer) == "" {
		err = ErrEmptyAnswer
	}
	if err != nil {
		s.fail(ctx, "answer query", err)
		return FallbackAnswer
	}
	return answer
}

// GenerateImage returns the generated image, or (nil, false) on any failure.
func (s *Service) GenerateImage(ctx context.Context, prompt string) (img *models.Image, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.fail(ctx, "generate image", fmt.Errorf("panic: %v", r))
			img, ok = nil, false
		}
	}()

	img, err := s.provider.GenerateImage(ctx, prompt)
	if err == nil && (img == nil || len(img.Data) == 0) {
		err = ErrNoImage
	}
	if err != nil {
		s.fail(ctx, "generate image", err)
		return nil, false
	}
	return img, true
}

func (s *Service) fail(ctx context.Context, op string, err error) {
	s.log.Error(ctx, op+" failed", "error", fmt.Errorf("%w: %w", common.ErrCollaboratorFailure, err))
}
