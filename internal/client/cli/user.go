package cli

import (
	"context"
)

func (a *App) runUser(ctx context.Context, args []string) int {
	switch {
	case len(args) == 0:
		u, err := a.svc.ReadUser(ctx)
		if err != nil {
			return a.fail(err, userHelp)
		}
		a.println(u)
	case isHelp(args[0]):
		return a.showHelp(userHelp)
	case args[0] == subNew && len(args) == 2:
		u, err := a.svc.CreateUser(ctx, args[1])
		if err != nil {
			return a.fail(err, userHelp)
		}
		a.printf("The user %s has been created.\n", a.style.user(u.Name))
	case args[0] == subRename && len(args) == 2:
		old, err := a.svc.ReadUser(ctx)
		if err != nil {
			return a.fail(err, userHelp)
		}
		u, err := a.svc.RenameUser(ctx, args[1])
		if err != nil {
			return a.fail(err, userHelp)
		}
		a.printf("The user %s is now known as %s.\n", a.style.user(old.Name), a.style.user(u.Name))
	case args[0] == subDelete && len(args) == 1:
		u, err := a.svc.DeleteUser(ctx)
		if err != nil {
			return a.fail(err, userHelp)
		}
		a.printf("The user %s has been deleted.\n", a.style.user(u.Name))
	default:
		return a.usage(userHelp)
	}
	return ExitOK
}
