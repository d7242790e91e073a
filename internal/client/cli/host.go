package cli

import (
	"context"
)

func (a *App) runHost(ctx context.Context, args []string) int {
	switch {
	case len(args) == 0:
		h, err := a.svc.ReadHost(ctx)
		if err != nil {
			return a.fail(err, hostHelp)
		}
		a.printf("host: %s\n", h)
	case isHelp(args[0]):
		return a.showHelp(hostHelp)
	case args[0] == subRegister && len(args) == 2:
		h, err := a.svc.RegisterHost(ctx, args[1])
		if err != nil {
			return a.fail(err, hostHelp)
		}
		a.printf("The host %s has been registered.\n", h)
	case args[0] == subUnregister && len(args) == 1:
		h, err := a.svc.UnregisterHost(ctx)
		if err != nil {
			return a.fail(err, hostHelp)
		}
		a.printf("The host %s has been unregistered.\n", h)
	default:
		return a.usage(hostHelp)
	}
	return ExitOK
}
