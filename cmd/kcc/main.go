package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dmitrijs2005/kcc/internal/client/cli"
	"github.com/dmitrijs2005/kcc/internal/client/config"
	"github.com/dmitrijs2005/kcc/internal/client/profile"
	"github.com/dmitrijs2005/kcc/internal/client/services"
	"github.com/dmitrijs2005/kcc/internal/filex"
	"github.com/dmitrijs2005/kcc/internal/logging"
	"github.com/dmitrijs2005/kcc/internal/protocol"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, rest, err := config.LoadConfig(args)
	if err != nil {
		fmt.Fprintf(stderr, "error:\n    %s\n", err)
		return cli.ExitUsage
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "error:\n    %s\n", err)
		return cli.ExitUsage
	}
	log := logging.New(stderr, level)

	dir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		log.Error(ctx, "failed to prepare data directory", "dir", cfg.DataDir, "error", err)
		return cli.ExitFailure
	}

	db, err := profile.OpenDatabase(ctx, filepath.Join(dir, profile.FileName))
	if err != nil {
		log.Error(ctx, "failed to open profile", "dir", dir, "error", err)
		return cli.ExitFailure
	}
	store := profile.NewStore(db)
	defer store.Close()

	svc := services.NewChatService(store, protocol.DefaultRegistry(log), log, cfg.TakeLast)
	return cli.NewApp(svc, stdout, stderr, cfg.NoColor).Run(ctx, rest)
}
