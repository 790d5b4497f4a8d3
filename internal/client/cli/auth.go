package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/creativesuite/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

const (
	msgInvalidCredentials = "Invalid username or password."
	msgAlreadyExists      = "An account with this username already exists."
	msgEmptyUsername      = "Username must not be empty."
)

func (a *App) readCredentials() (string, []byte, error) {
	userName, err := getSimpleText(a.scanner, "Enter username", a.out)
	if err != nil {
		return "", nil, err
	}

	password, err := getPassword(a.scanner, a.out)
	if err != nil {
		return "", nil, err
	}
	return userName, password, nil
}

// Signup prompts for a username and password and creates the account. On
// success the new user is logged in.
func (a *App) Signup(ctx context.Context) error {
	userName, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if userName == "" {
		fmt.Fprintln(a.out, msgEmptyUsername)
		return nil
	}

	ok, err := a.sessions.Signup(ctx, userName, string(password))
	if err != nil {
		a.log.Error(ctx, "signup failed", "error", err)
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, msgAlreadyExists)
		return nil
	}

	fmt.Fprintf(a.out, "Account created. Welcome, %s!\n", userName)
	return nil
}

// Login prompts for credentials and opens a session when they match.
func (a *App) Login(ctx context.Context) error {
	userName, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ok, err := a.sessions.Login(ctx, userName, string(password))
	if err != nil {
		a.log.Error(ctx, "login failed", "error", err)
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, msgInvalidCredentials)
		return nil
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", userName)
	return nil
}

// Logout closes the current session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Whoami prints the logged-in username.
func (a *App) Whoami(ctx context.Context) error {
	st := a.sessions.Current()
	if !st.IsLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintln(a.out, st.Username)
	return nil
}
