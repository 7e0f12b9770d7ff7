// Package server wires the opsbot components together and runs the gRPC and
// HTTP transports until the process is signalled.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/opsbot/internal/cryptox"
	"github.com/dmitrijs2005/opsbot/internal/logging"
	"github.com/dmitrijs2005/opsbot/internal/server/auth"
	"github.com/dmitrijs2005/opsbot/internal/server/chat"
	"github.com/dmitrijs2005/opsbot/internal/server/config"
	"github.com/dmitrijs2005/opsbot/internal/server/httpapi"
	"github.com/dmitrijs2005/opsbot/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/opsbot/internal/server/services"
	"github.com/gin-gonic/gin"

	gs "github.com/dmitrijs2005/opsbot/internal/server/grpc"
)

type App struct {
	config            *config.Config
	logger            logging.Logger
	userService       *services.UserService
	chatService       *services.ChatService
	credentialService *services.CredentialService
	analyticsService  *services.AnalyticsService
}

func NewApp(c *config.Config) (*App, error) {
	return newApp(c, logging.NewJSONLogger(os.Stdout, c.LogLevel))
}

func newApp(c *config.Config, logger logging.Logger) (*App, error) {

	if logging.ParseLevel(c.LogLevel) > logging.ParseLevel("debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	// one secret per process: restarting invalidates every token and digest
	secret := cryptox.ServerSecretFromString(c.SecretKey)
	if c.SecretKey == "" {
		logger.Warn(context.Background(), "no secret key configured, generated a random one")
	}

	rm := repomanager.NewMemoryRepositoryManager()
	a := auth.NewService(rm.Users(), secret, c.AccessTokenValidityDuration)
	engine := chat.NewEngine(rm.Sessions(), chat.NewResponder(nil), a.Now)

	app := &App{
		config:            c,
		logger:            logger,
		userService:       services.NewUserService(rm, a, logger),
		chatService:       services.NewChatService(engine, a, logger),
		credentialService: services.NewCredentialService(rm, a, logger),
		analyticsService:  services.NewAnalyticsService(a, logger),
	}

	if err := app.seed(context.Background()); err != nil {
		return nil, fmt.Errorf("seed error: %w", err)
	}

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
		app.userService, app.chatService, app.credentialService, app.analyticsService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	opts := httpapi.Options{
		AllowedOrigins: app.config.Origins(),
		LoginRate:      app.config.LoginRateLimit,
		LoginBurst:     app.config.LoginBurst,
	}
	s := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, opts,
		app.userService, app.chatService, app.credentialService, app.analyticsService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves both transports until ctx is cancelled, a signal arrives or
// either server fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(ctx, "App stopped")
}
