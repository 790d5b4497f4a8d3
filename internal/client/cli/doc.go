// Package cli provides the interactive Creative Suite command-line client.
//
// It wires configuration, the local store, the session manager and the
// assistant panels behind a small REPL. On start the previous session is
// restored, so a user who did not log out is greeted by name.
//
// Key features:
//   - Signup / Login / Logout against locally stored credentials
//   - Ask the assistant, keeping a per-session conversation
//   - Generate images into the configured directory
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
