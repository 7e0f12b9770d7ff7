package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/opsbot/internal/client/config"
	gs "github.com/dmitrijs2005/opsbot/internal/server/grpc"
	"github.com/dmitrijs2005/opsbot/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// API is the part of the opsbot RPC surface the CLI uses. *grpc.Client
// satisfies it.
type API interface {
	Ping(ctx context.Context) (*gs.PingResponse, error)
	Login(ctx context.Context, email, password string) (*models.LoginResult, error)
	Register(ctx context.Context, req *gs.UserRequest) (*models.PublicUser, error)
	ListUsers(ctx context.Context) (*gs.UserList, error)
	ToggleUserStatus(ctx context.Context, id string) (*models.PublicUser, error)
	ListSessions(ctx context.Context) (*gs.SessionList, error)
	CreateSession(ctx context.Context, title string) (*models.ChatSession, error)
	GetSession(ctx context.Context, id string) (*models.ChatSession, error)
	PostMessage(ctx context.Context, sessionID, content string) (*models.Message, error)
	ListCredentials(ctx context.Context) (*gs.CredentialList, error)
	AddCredential(ctx context.Context, service string, details map[string]any) (*models.ServiceCredential, error)
	DeleteCredential(ctx context.Context, id string) error
	GetAnalytics(ctx context.Context) (*models.Analytics, error)
}

type App struct {
	config  *config.Config
	api     API
	closer  io.Closer
	reader  *bufio.Reader
	out     io.Writer
	outMu   sync.Mutex
	token   string
	user    *models.LoginResult
	session string

	modeMu sync.Mutex
	mode   Mode
}

func NewApp(c *config.Config) (*App, error) {
	conn, err := grpc.NewClient(c.ServerEndpointAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}

	app := newApp(c, gs.NewClient(conn), os.Stdin, os.Stdout)
	app.closer = conn
	return app, nil
}

func newApp(c *config.Config, api API, in io.Reader, out io.Writer) *App {
	return &App{config: c, api: api, reader: bufio.NewReader(in), out: out}
}

// Run blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.closer != nil {
		defer a.closer.Close()
	}

	a.printf("Welcome to opsbot CLI (type 'help' for commands)\n")

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

// authed attaches the current access token to ctx.
func (a *App) authed(ctx context.Context) context.Context {
	return gs.WithToken(ctx, a.token)
}

func (a *App) getStatus() string {
	s := ""
	if a.user != nil {
		s = a.user.Email + " "
	}
	if m := a.Mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Mode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.printf("Switched to %s mode\n", mode)
	}
}

// StartOnlineStatusWatcher pings the server every interval until ctx is done.
// A non-positive interval disables it.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if _, err := a.api.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

func (a *App) printf(format string, args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintf(a.out, format, args...)
}

// fail reports err using the server's status message when there is one.
func (a *App) fail(err error) error {
	a.printf("error: %s\n", status.Convert(err).Message())
	return err
}
