package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/creativesuite/internal/client/assistant"
	"github.com/dmitrijs2005/creativesuite/internal/client/chat"
	"github.com/dmitrijs2005/creativesuite/internal/client/config"
	"github.com/dmitrijs2005/creativesuite/internal/client/credentials"
	"github.com/dmitrijs2005/creativesuite/internal/client/session"
	"github.com/dmitrijs2005/creativesuite/internal/client/storage"
	"github.com/dmitrijs2005/creativesuite/internal/logging"
)

type App struct {
	config       *config.Config
	store        *storage.Store
	sessions     *session.Manager
	conversation *chat.Conversation
	images       *chat.ImagePanel
	log          logging.Logger

	scanner *bufio.Scanner
	out     io.Writer

	unsubscribe func()
}

// NewApp opens the local store and builds the session manager and the
// assistant panels described by c.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewFromConfig(c.LogFormat, c.LogLevel, os.Stderr)

	store, err := storage.Open(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "dsn", c.DatabaseDSN, "error", err)
		return nil, err
	}

	provider, err := assistant.NewProvider(ctx, assistant.ProviderConfig{
		Name:       c.Provider,
		APIKey:     c.APIKey,
		ChatModel:  c.ChatModel,
		ImageModel: c.ImageModel,
		MaxTokens:  c.MaxTokens,
	})
	if err != nil {
		log.Warn(ctx, "assistant unavailable, requests will fail", "provider", c.Provider, "error", err)
		provider = assistant.Unavailable(c.Provider, err)
	}
	if c.APIKey == "" {
		log.Warn(ctx, "no API key configured", "env", config.APIKeyEnv)
	}

	svc := assistant.NewService(provider, log)
	creds := credentials.NewStore(store.DB)

	a := newApp(
		session.NewManager(store.KV, creds, log),
		chat.NewConversation(svc),
		chat.NewImagePanel(svc, c.ImageDir),
		log,
		bufio.NewScanner(os.Stdin),
		os.Stdout,
	)
	a.config = c
	a.store = store
	return a, nil
}

func newApp(sessions *session.Manager, conv *chat.Conversation, images *chat.ImagePanel,
	log logging.Logger, sc *bufio.Scanner, out io.Writer) *App {
	a := &App{
		sessions:     sessions,
		conversation: conv,
		images:       images,
		log:          log,
		scanner:      sc,
		out:          out,
	}
	// a new identity starts a new conversation
	a.unsubscribe = sessions.Subscribe(func(session.State) {
		conv.Reset()
	})
	return a
}

// Run restores the previous session and serves the REPL until the user
// exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to Creative Suite CLI (type 'help' for commands)")

	if st := a.sessions.Restore(ctx); st.IsLoggedIn() {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", st.Username)
	}

	runREPL(ctx, a, a.getStatus, a.scanner)
}

// Close releases the local store.
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn(context.Background(), "error closing database", "error", err)
		}
		a.store = nil
	}
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Current().IsLoggedIn()
}

func (a *App) getStatus() string {
	if st := a.sessions.Current(); st.IsLoggedIn() {
		return fmt.Sprintf("(%s)", st.Username)
	}
	return ""
}
