package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Ask(ctx context.Context, text string) error
	Image(ctx context.Context, text string) error
	History(ctx context.Context) error
}

// runREPL reads commands from scanner and dispatches them to a until the
// user types "exit" or "quit", or input ends.
//
//	Not logged in:
//	  - help              show available commands
//	  - signup | register create an account
//	  - login             authenticate
//	  - exit | quit       leave the program
//
//	Logged in, additionally:
//	  - ask [text]        ask the assistant
//	  - image [text]      generate an image
//	  - history           show the conversation
//	  - whoami            show the current user
//	  - logout            log out
//
// Errors returned by handlers are reported and the loop keeps going.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("suite%s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		cmd, rest, _ := strings.Cut(line, " ")
		if cmd == "" {
			continue
		}
		rest = strings.TrimSpace(rest)

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: ask, image, history, whoami, logout, signup, login, exit")
			} else {
				printlnFn("Available commands: signup, login, exit")
			}

		case "signup", "register":
			err = a.Signup(ctx)

		case "login":
			err = a.Login(ctx)

		case "ask", "image", "history", "whoami", "logout":
			if !a.isLoggedIn() {
				printlnFn("Please log in or sign up first.")
				continue
			}
			switch cmd {
			case "ask":
				err = a.Ask(ctx, rest)
			case "image":
				err = a.Image(ctx, rest)
			case "history":
				err = a.History(ctx)
			case "whoami":
				err = a.Whoami(ctx)
			case "logout":
				err = a.Logout(ctx)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
