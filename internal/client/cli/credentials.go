package cli

import (
	"context"
	"sort"
	"strings"
)

func (a *App) Credentials(ctx context.Context) error {
	list, err := a.api.ListCredentials(a.authed(ctx))
	if err != nil {
		return a.fail(err)
	}

	if len(list.Credentials) == 0 {
		a.printf("No credentials\n")
		return nil
	}
	for _, c := range list.Credentials {
		keys := make([]string, 0, len(c.Details))
		for k := range c.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		a.printf("%s  %-12s  %s\n", c.ID, c.Service, strings.Join(keys, ","))
	}
	return nil
}

func (a *App) AddCredential(ctx context.Context) error {
	service, err := GetSimpleText(a.reader, "Service", a.out)
	if err != nil {
		return a.fail(err)
	}
	if service == "" {
		return a.fail(errEmptyInput)
	}

	details, err := GetDetails(a.reader, a.out)
	if err != nil {
		return a.fail(err)
	}

	c, err := a.api.AddCredential(a.authed(ctx), service, details)
	if err != nil {
		return a.fail(err)
	}

	a.printf("Stored %s credential %s\n", c.Service, c.ID)
	return nil
}

func (a *App) DeleteCredential(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printf("Usage: delcred <id>\n")
		return nil
	}

	if err := a.api.DeleteCredential(a.authed(ctx), args[0]); err != nil {
		return a.fail(err)
	}

	a.printf("Deleted %s\n", args[0])
	return nil
}
