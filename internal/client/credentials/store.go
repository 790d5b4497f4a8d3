// Package credentials keeps username/password records in the local
// key/value store.
//
// Each credential lives under its own key, derived from the username as
// "user_<len>:<username>" where <len> is the byte length of the username.
// The length prefix keeps the encoding unambiguous whatever characters the
// username contains. The stored value is the JSON object {"password": "..."}.
//
// Usernames are used as given: case-sensitive and untrimmed.
package credentials

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/creativesuite/internal/client/models"
	"github.com/dmitrijs2005/creativesuite/internal/client/repositories/kvstore"
	"github.com/dmitrijs2005/creativesuite/internal/common"
	"github.com/dmitrijs2005/creativesuite/internal/dbx"
)

// KeyPrefix starts every credential key.
const KeyPrefix = "user_"

// Key returns the storage key for username.
func Key(username string) string {
	return KeyPrefix + strconv.Itoa(len(username)) + ":" + username
}

// Store is the credential store. It is the only writer of credential keys.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo(db dbx.DBTX) kvstore.Repository {
	return kvstore.NewSQLiteRepository(db)
}

// Exists reports whether a credential is stored for exactly this username.
func (s *Store) Exists(ctx context.Context, username string) (bool, error) {
	return exists(ctx, s.repo(s.db), username)
}

func exists(ctx context.Context, repo kvstore.Repository, username string) (bool, error) {
	v, err := repo.Get(ctx, Key(username))
	if err != nil {
		return false, fmt.Errorf("check user %q: %w", username, err)
	}
	return v != nil, nil
}

// Save stores a new credential. It fails with common.ErrAlreadyExists when
// the username is taken and with common.ErrInvalidUsername when it is empty.
// The existence check and the write share one transaction.
func (s *Store) Save(ctx context.Context, username, password string) error {
	if username == "" {
		return common.ErrInvalidUsername
	}

	value, err := json.Marshal(models.Credential{Username: username, Password: password})
	if err != nil {
		return fmt.Errorf("encode credential: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)

		found, err := exists(ctx, repo, username)
		if err != nil {
			return err
		}
		if found {
			return fmt.Errorf("save user %q: %w", username, common.ErrAlreadyExists)
		}

		if err := repo.Set(ctx, Key(username), value); err != nil {
			return fmt.Errorf("save user %q: %w", username, err)
		}
		return nil
	})
}

// Verify reports whether username is stored with exactly this password.
// Unknown users and wrong passwords are indistinguishable to the caller.
// A record that cannot be decoded never verifies.
func (s *Store) Verify(ctx context.Context, username, password string) (bool, error) {
	v, err := s.repo(s.db).Get(ctx, Key(username))
	if err != nil {
		return false, fmt.Errorf("load user %q: %w", username, err)
	}
	if v == nil {
		return false, nil
	}

	var stored struct {
		Password *string `json:"password"`
	}
	if err := json.Unmarshal(v, &stored); err != nil || stored.Password == nil {
		return false, nil
	}

	return subtle.ConstantTimeCompare([]byte(*stored.Password), []byte(password)) == 1, nil
}
