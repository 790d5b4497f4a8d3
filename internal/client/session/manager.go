// Package session tracks who is logged in and persists that across restarts.
//
// A Manager moves between three states: Restoring (before Restore has run),
// LoggedOut and LoggedIn(username). The logged-in identity is stored as a
// single record under SessionKey and is trusted on restore: Restore does not
// re-check the password against the credential store. Login and Signup are
// allowed while already logged in and switch the identity.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/creativesuite/internal/client/repositories/kvstore"
	"github.com/dmitrijs2005/creativesuite/internal/common"
	"github.com/dmitrijs2005/creativesuite/internal/logging"
)

// SessionKey is the single slot holding the current session record.
const SessionKey = "gemini-creative-suite-user"

// CredentialStore is what the manager needs from the credential store.
// *credentials.Store satisfies it.
type CredentialStore interface {
	Save(ctx context.Context, username, password string) error
	Verify(ctx context.Context, username, password string) (bool, error)
}

// Manager owns the session record. It is safe for concurrent use.
type Manager struct {
	kv    kvstore.Repository
	creds CredentialStore
	log   logging.Logger

	mu        sync.Mutex
	state     State
	listeners map[int]func(State)
	nextID    int
}

func NewManager(kv kvstore.Repository, creds CredentialStore, log logging.Logger) *Manager {
	return &Manager{
		kv:        kv,
		creds:     creds,
		log:       log.With("component", "session"),
		state:     State{Status: StatusRestoring},
		listeners: make(map[int]func(State)),
	}
}

// Current returns the current state.
func (m *Manager) Current() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Subscribe registers fn to be called with the new state after every state
// change. The returned func removes the subscription.
func (m *Manager) Subscribe(fn func(State)) (cancel func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	if m.state == s {
		m.mu.Unlock()
		return
	}
	m.state = s
	fns := make([]func(State), 0, len(m.listeners))
	for _, fn := range m.listeners {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

// Restore loads the stored session, if any. A malformed record is deleted.
// Restore never fails: storage errors are logged and leave the manager
// logged out.
func (m *Manager) Restore(ctx context.Context) State {
	raw, err := m.kv.Get(ctx, SessionKey)
	if err != nil {
		m.log.Error(ctx, "failed to read session record", "error", err)
		m.setState(LoggedOut())
		return m.Current()
	}

	if raw == nil {
		m.setState(LoggedOut())
		return m.Current()
	}

	rec, err := decodeRecord(raw)
	if err != nil {
		m.log.Warn(ctx, "discarding session record", "error", err)
		if derr := m.kv.Delete(ctx, SessionKey); derr != nil {
			m.log.Error(ctx, "failed to delete session record", "error", derr)
		}
		m.setState(LoggedOut())
		return m.Current()
	}

	m.log.Info(ctx, "session restored", "username", rec.Username)
	m.setState(LoggedIn(rec.Username))
	return m.Current()
}

// Login verifies the credentials and, on success, records the session.
// It returns false for an unknown user and for a wrong password alike;
// the state is then left unchanged. The error is reserved for storage
// failures.
func (m *Manager) Login(ctx context.Context, username, password string) (bool, error) {
	ok, err := m.creds.Verify(ctx, username, password)
	if err != nil {
		return false, fmt.Errorf("login: %w", err)
	}
	if !ok {
		m.log.Info(ctx, "login rejected", "error", common.ErrInvalidCredentials)
		return false, nil
	}

	if err := m.open(ctx, username); err != nil {
		return false, fmt.Errorf("login: %w", err)
	}
	m.log.Info(ctx, "logged in", "username", username)
	return true, nil
}

// Signup stores new credentials and logs the user in. It returns false,
// leaving the state unchanged, when the username is taken or empty.
func (m *Manager) Signup(ctx context.Context, username, password string) (bool, error) {
	err := m.creds.Save(ctx, username, password)
	switch {
	case errors.Is(err, common.ErrAlreadyExists), errors.Is(err, common.ErrInvalidUsername):
		m.log.Info(ctx, "signup rejected", "error", err)
		return false, nil
	case err != nil:
		return false, fmt.Errorf("signup: %w", err)
	}

	if err := m.open(ctx, username); err != nil {
		return false, fmt.Errorf("signup: %w", err)
	}
	m.log.Info(ctx, "signed up", "username", username)
	return true, nil
}

// Logout removes the session record. Logging out twice is harmless.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.kv.Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	if prev := m.Current(); prev.IsLoggedIn() {
		m.log.Info(ctx, "logged out", "username", prev.Username)
	}
	m.setState(LoggedOut())
	return nil
}

func (m *Manager) open(ctx context.Context, username string) error {
	rec, err := encodeRecord(username)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	if err := m.kv.Set(ctx, SessionKey, rec); err != nil {
		return err
	}
	m.setState(LoggedIn(username))
	return nil
}
