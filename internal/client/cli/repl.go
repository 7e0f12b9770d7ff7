package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Sessions(ctx context.Context) error
	NewSession(ctx context.Context, args []string) error
	Open(ctx context.Context, args []string) error
	Say(ctx context.Context, args []string) error
	Credentials(ctx context.Context) error
	AddCredential(ctx context.Context) error
	DeleteCredential(ctx context.Context, args []string) error
	Users(ctx context.Context) error
	Toggle(ctx context.Context, args []string) error
	Analytics(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: sessions, new [title], open <id>, say <text>, creds, addcred, delcred <id>, users, toggle <id>, analytics, logout, exit"
)

// runREPL reads commands from reader and dispatches them to a until EOF or
// "exit"/"quit". Handlers print their own errors, so the loop ignores them.
// Handlers that prompt for more input read from the same reader.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "opsbot %s> ", statusFn())

		line, err := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}

		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpLoggedIn)
			} else {
				fmt.Fprintln(w, helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			if !a.isLoggedIn() {
				fmt.Fprintln(w, "Please login first")
				break
			}
			if !dispatch(ctx, a, cmd, args) {
				fmt.Fprintln(w, "Unknown command:", cmd)
			}
		}

		if err != nil {
			return
		}
	}
}

// dispatch runs the commands that need a session token.
func dispatch(ctx context.Context, a execIface, cmd string, args []string) bool {
	switch cmd {
	case "logout":
		_ = a.Logout(ctx)
	case "sessions", "ls":
		_ = a.Sessions(ctx)
	case "new":
		_ = a.NewSession(ctx, args)
	case "open":
		_ = a.Open(ctx, args)
	case "say":
		_ = a.Say(ctx, args)
	case "creds":
		_ = a.Credentials(ctx)
	case "addcred":
		_ = a.AddCredential(ctx)
	case "delcred":
		_ = a.DeleteCredential(ctx, args)
	case "users":
		_ = a.Users(ctx)
	case "toggle":
		_ = a.Toggle(ctx, args)
	case "analytics":
		_ = a.Analytics(ctx)
	default:
		return false
	}
	return true
}
