package cli

import "context"

func (a *App) Users(ctx context.Context) error {
	list, err := a.api.ListUsers(a.authed(ctx))
	if err != nil {
		return a.fail(err)
	}

	for _, u := range list.Users {
		a.printf("%s  %-20s  %-24s  %-5s  %s\n", u.ID, u.Name, u.Email, u.Role, u.Status)
	}
	return nil
}

func (a *App) Toggle(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printf("Usage: toggle <id>\n")
		return nil
	}

	u, err := a.api.ToggleUserStatus(a.authed(ctx), args[0])
	if err != nil {
		return a.fail(err)
	}

	a.printf("%s is now %s\n", u.Email, u.Status)
	return nil
}

func (a *App) Analytics(ctx context.Context) error {
	an, err := a.api.GetAnalytics(a.authed(ctx))
	if err != nil {
		return a.fail(err)
	}

	a.printf("Sessions per day:\n")
	for _, d := range an.DailySessions {
		a.printf("  %-4s %d\n", d.Day, d.Count)
	}
	ua := an.UserActivity
	a.printf("Active users: %d, messages: %d, avg session: %s\n", ua.ActiveUsers, ua.TotalMessages, ua.AverageSessionDuration)
	sm := an.SystemMetrics
	a.printf("CPU %d%%  memory %d%%  storage %d%%  network %d%%\n", sm.CPUUsage, sm.MemoryUsage, sm.StorageUsage, sm.NetworkBandwidth)
	return nil
}
