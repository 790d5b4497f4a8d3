package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/creativesuite/internal/client/chat"
	"github.com/dmitrijs2005/creativesuite/internal/client/models"
)

const msgBusy = "Still working on the previous request, please wait."

// promptOrAsk returns text, or asks for a prompt when text is empty.
func (a *App) promptOrAsk(text, label string) (string, error) {
	if text != "" {
		return text, nil
	}
	return getSimpleText(a.scanner, label, a.out)
}

// Ask sends a prompt to the assistant and prints the answer.
func (a *App) Ask(ctx context.Context, text string) error {
	prompt, err := a.promptOrAsk(text, "Ask me anything")
	if err != nil {
		return err
	}

	answer, err := a.conversation.Ask(ctx, prompt)
	switch {
	case errors.Is(err, chat.ErrEmptyPrompt):
		fmt.Fprintln(a.out, "Nothing to ask.")
		return nil
	case errors.Is(err, chat.ErrBusy):
		fmt.Fprintln(a.out, msgBusy)
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintln(a.out, answer)
	return nil
}

// Image generates an image for a prompt and prints where it was saved.
func (a *App) Image(ctx context.Context, text string) error {
	prompt, err := a.promptOrAsk(text, "Describe the image")
	if err != nil {
		return err
	}

	res, err := a.images.Generate(ctx, prompt)
	switch {
	case errors.Is(err, chat.ErrEmptyPrompt):
		fmt.Fprintln(a.out, "Nothing to draw.")
		return nil
	case errors.Is(err, chat.ErrBusy):
		fmt.Fprintln(a.out, msgBusy)
		return nil
	case errors.Is(err, chat.ErrImageFailed):
		fmt.Fprintln(a.out, err.Error())
		return nil
	case err != nil:
		a.log.Error(ctx, "image not saved", "error", err)
		return err
	}

	fmt.Fprintf(a.out, "Image (%s, %d bytes) saved to %s\n", res.Image.MIMEType, len(res.Image.Data), res.Path)
	return nil
}

// History prints the conversation so far.
func (a *App) History(ctx context.Context) error {
	for _, m := range a.conversation.Messages() {
		who := "assistant"
		if m.Role == models.RoleUser {
			who = "you"
		}
		fmt.Fprintf(a.out, "%s: %s\n", who, m.Text)
	}
	return nil
}
