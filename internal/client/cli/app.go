package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/kcc/internal/buildinfo"
	"github.com/dmitrijs2005/kcc/internal/client/services"
	"github.com/dmitrijs2005/kcc/internal/models"
)

// Exit codes returned by App.Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const errorPrefix = "error:"

// App runs a single kcc command line against a ChatService.
type App struct {
	svc    services.ChatService
	out    io.Writer
	errOut io.Writer
	style  palette
}

func NewApp(svc services.ChatService, out, errOut io.Writer, noColor bool) *App {
	return &App{svc: svc, out: out, errOut: errOut, style: newPalette(noColor)}
}

// Run executes args, which must not contain global flags, and returns the
// process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 || isHelp(args[0]) {
		a.println(buildinfo.Short())
		a.println()
		a.println(mainHelp)
		return ExitOK
	}

	switch cmd := args[0]; {
	case cmd == optVersion:
		buildinfo.PrintBuildData(a.out)
		return ExitOK
	case cmd == cmdUser:
		return a.runUser(ctx, args[1:])
	case cmd == cmdHost:
		return a.runHost(ctx, args[1:])
	case cmd == cmdTopic:
		return a.runTopic(ctx, args[1:])
	case strings.HasPrefix(cmd, models.TopicSeparator):
		return a.runMessage(ctx, args)
	default:
		fmt.Fprintf(a.errOut, "%s\n    unknown command '%s'\n\n%s\n", a.style.err(errorPrefix), cmd, mainHelp)
		return ExitUsage
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// fail reports err followed by help, if any.
func (a *App) fail(err error, help string) int {
	fmt.Fprintf(a.errOut, "%s\n    %s\n", a.style.err(errorPrefix), err)
	if help != "" {
		fmt.Fprintf(a.errOut, "\n%s\n", help)
	}
	return ExitFailure
}

// usage prints help for a malformed command line.
func (a *App) usage(help string) int {
	fmt.Fprintln(a.errOut, help)
	return ExitUsage
}

func (a *App) showHelp(help string) int {
	a.println(help)
	return ExitOK
}
