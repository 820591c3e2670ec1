package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Simplici0/clt/internal/cli"
	"github.com/Simplici0/clt/internal/config"
	"github.com/Simplici0/clt/internal/logging"
	"github.com/Simplici0/clt/internal/payroll"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(2)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	calc := payroll.New(payroll.DefaultSchedule())
	if err := cli.NewRootCommand(cfg, calc, logger).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		stop()
		_ = logger.Sync()
		os.Exit(1)
	}
}
