package cli

import (
	"context"
	"errors"

	gs "github.com/dmitrijs2005/opsbot/internal/server/grpc"
)

var errEmptyInput = errors.New("empty input")

func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return a.fail(err)
	}

	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return a.fail(err)
	}
	if email == "" {
		return a.fail(errEmptyInput)
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return a.fail(err)
	}

	u, err := a.api.Register(ctx, &gs.UserRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return a.fail(err)
	}

	a.printf("Registered %s (%s)\n", u.Email, u.ID)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return a.fail(err)
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return a.fail(err)
	}

	res, err := a.api.Login(ctx, email, password)
	if err != nil {
		return a.fail(err)
	}

	a.token = res.AccessToken
	a.user = res
	a.session = ""

	a.printf("Logged in as %s (%s)\n", res.Name, res.Role)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.token = ""
	a.user = nil
	a.session = ""
	a.printf("Logged out\n")
	return nil
}
