package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/opsbot/internal/server/models"
)

var errNoSession = errors.New("no open session, use 'new' or 'open <id>'")

func (a *App) Sessions(ctx context.Context) error {
	list, err := a.api.ListSessions(a.authed(ctx))
	if err != nil {
		return a.fail(err)
	}

	if len(list.Sessions) == 0 {
		a.printf("No sessions\n")
		return nil
	}
	for _, s := range list.Sessions {
		marker := " "
		if s.ID == a.session {
			marker = "*"
		}
		a.printf("%s %s  %-20s  %d messages\n", marker, s.ID, s.Title, len(s.Messages))
	}
	return nil
}

// NewSession creates a session titled by args and makes it current.
func (a *App) NewSession(ctx context.Context, args []string) error {
	s, err := a.api.CreateSession(a.authed(ctx), strings.Join(args, " "))
	if err != nil {
		return a.fail(err)
	}

	a.session = s.ID
	a.printf("Opened session %s (%s)\n", s.Title, s.ID)
	return nil
}

// Open makes an existing session current and prints its history.
func (a *App) Open(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printf("Usage: open <id>\n")
		return nil
	}

	s, err := a.api.GetSession(a.authed(ctx), args[0])
	if err != nil {
		return a.fail(err)
	}

	a.session = s.ID
	a.printf("Opened session %s (%s)\n", s.Title, s.ID)
	for _, m := range s.Messages {
		a.printMessage(m)
	}
	return nil
}

// Say posts args to the current session, creating one if needed, and prints
// the assistant's reply.
func (a *App) Say(ctx context.Context, args []string) error {
	text := strings.Join(args, " ")
	if text == "" {
		a.printf("Usage: say <text>\n")
		return nil
	}

	ctx = a.authed(ctx)

	if a.session == "" {
		s, err := a.api.CreateSession(ctx, "")
		if err != nil {
			return a.fail(err)
		}
		a.session = s.ID
	}

	if _, err := a.api.PostMessage(ctx, a.session, text); err != nil {
		return a.fail(err)
	}

	s, err := a.api.GetSession(ctx, a.session)
	if err != nil {
		return a.fail(err)
	}
	if n := len(s.Messages); n > 0 && s.Messages[n-1].Kind == models.MessageKindBot {
		a.printMessage(s.Messages[n-1])
	}
	return nil
}

func (a *App) printMessage(m models.Message) {
	who := "you"
	if m.Kind == models.MessageKindBot {
		who = "bot"
	}
	a.printf("[%s] %s: %s\n", m.Timestamp.Format("15:04:05"), who, m.Content)
}
