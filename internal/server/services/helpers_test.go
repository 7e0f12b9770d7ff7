package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/opsbot/internal/cryptox"
	"github.com/dmitrijs2005/opsbot/internal/logging"
	"github.com/dmitrijs2005/opsbot/internal/server/auth"
	"github.com/dmitrijs2005/opsbot/internal/server/chat"
	"github.com/dmitrijs2005/opsbot/internal/server/models"
	"github.com/dmitrijs2005/opsbot/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

type harness struct {
	rm          repomanager.RepositoryManager
	auth        *auth.Service
	clock       *clock
	users       *UserService
	chat        *ChatService
	credentials *CredentialService
	analytics   *AnalyticsService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	rm := repomanager.NewMemoryRepositoryManager()
	c := &clock{t: time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)}
	a := auth.NewService(rm.Users(), cryptox.ServerSecretFromString("services-test"), 0, auth.WithClock(c.now))
	log := logging.Nop{}

	return &harness{
		rm:          rm,
		auth:        a,
		clock:       c,
		users:       NewUserService(rm, a, log),
		chat:        NewChatService(chat.NewEngine(rm.Sessions(), chat.NewResponder(nil), c.now), a, log),
		credentials: NewCredentialService(rm, a, log),
		analytics:   NewAnalyticsService(a, log),
	}
}

// signup registers a user and logs in, returning the user and a token.
func (h *harness) signup(t *testing.T, email string, role models.Role) (*models.PublicUser, string) {
	t.Helper()
	ctx := context.Background()

	u, err := h.users.Register(ctx, NewUser{Name: email, Email: email, Role: role, Password: "pw-" + email})
	require.NoError(t, err)

	res, err := h.users.Login(ctx, email, "pw-"+email)
	require.NoError(t, err)

	return u, res.AccessToken
}
