package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/mdplanner/internal/cli"
	"github.com/alexanderramin/mdplanner/internal/config"
	"github.com/alexanderramin/mdplanner/internal/repository"
	"github.com/alexanderramin/mdplanner/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	var observers []service.UseCaseObserver
	storeOpts := []repository.Option{}
	if cfg.LogCalls {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr, cfg.LogLevel))
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
		storeOpts = append(storeOpts, repository.WithLogger(logger))
	}

	// Detect an interactive terminal for the huh forms.
	isInteractive := func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	open := func(path string) *cli.App {
		app := cli.NewApp(repository.NewMarkdownStore(path, storeOpts...), observers...)
		app.IsInteractive = isInteractive
		return app
	}

	return cli.NewRootCmd(open, cfg.File).Execute()
}
