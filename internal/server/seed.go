package server

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/opsbot/internal/common"
	"golang.org/x/term"
)

// DemoPassword is shared by the sample accounts created with SeedDemo.
const DemoPassword = "password"

var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
	stdinFd      = func() int { return int(os.Stdin.Fd()) }
)

var errNoAdminPassword = errors.New("admin email set but no admin password configured")

// seed creates the configured admin, prompting for its password on a
// terminal when none is configured, and the demo accounts if enabled.
func (app *App) seed(ctx context.Context) error {
	if email := app.config.AdminEmail; email != "" {
		password, err := app.adminPassword()
		if err != nil {
			return err
		}
		if _, err := app.userService.SeedAdmin(ctx, app.config.AdminName, email, password); err != nil {
			return err
		}
	}

	if app.config.SeedDemo {
		app.logger.Warn(ctx, "seeding demo users with a well-known password")
		if _, err := app.userService.SeedDemo(ctx, DemoPassword); err != nil {
			return err
		}
	}

	return nil
}

func (app *App) adminPassword() (string, error) {
	if app.config.AdminPassword != "" {
		return app.config.AdminPassword, nil
	}

	fd := stdinFd()
	if !isTerminal(fd) {
		return "", errNoAdminPassword
	}

	fmt.Fprintf(os.Stderr, "Password for %s: ", app.config.AdminEmail)
	b, err := readPassword(fd)
	defer common.WipeByteArray(b)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read admin password: %w", err)
	}
	if len(b) == 0 {
		return "", errNoAdminPassword
	}

	return string(b), nil
}
