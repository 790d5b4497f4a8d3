package chat

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/dmitrijs2005/creativesuite/internal/client/models"
)

// Greeting opens every conversation.
const Greeting = "Hello! How can I help you today?"

var (
	ErrEmptyPrompt = errors.New("prompt is empty")
	ErrBusy        = errors.New("a request is already in progress")
)

// Answerer answers a prompt given the preceding transcript. It never fails.
type Answerer interface {
	AnswerQuery(ctx context.Context, prompt string, history []models.ChatMessage) string
}

// Conversation is a chat transcript backed by an Answerer.
type Conversation struct {
	answerer Answerer
	inFlight sync.Mutex

	mu       sync.Mutex
	messages []models.ChatMessage
}

func NewConversation(a Answerer) *Conversation {
	return &Conversation{answerer: a, messages: greeting()}
}

func greeting() []models.ChatMessage {
	return []models.ChatMessage{{Role: models.RoleModel, Text: Greeting}}
}

// Ask sends prompt with the transcript so far and appends both the prompt
// and the answer to it.
func (c *Conversation) Ask(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}
	if !c.inFlight.TryLock() {
		return "", ErrBusy
	}
	defer c.inFlight.Unlock()

	history := c.Messages()
	answer := c.answerer.AnswerQuery(ctx, prompt, history)

	c.mu.Lock()
	c.messages = append(c.messages,
		models.ChatMessage{Role: models.RoleUser, Text: prompt},
		models.ChatMessage{Role: models.RoleModel, Text: answer},
	)
	c.mu.Unlock()

	return answer, nil
}

// Messages returns a copy of the transcript.
func (c *Conversation) Messages() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// Reset drops everything but the greeting.
func (c *Conversation) Reset() {
	c.mu.Lock()
	c.messages = greeting()
	c.mu.Unlock()
}
