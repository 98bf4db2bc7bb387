package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/mrsinham/anamnese/cmd/anamnese/wizard"
	"github.com/mrsinham/anamnese/internal/config"
	"github.com/mrsinham/anamnese/internal/intake"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logFile, err := cfg.OpenLog()
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	app := &App{
		Config:    cfg,
		Observer:  intake.NewLogObserver(logFile, cfg.LogLevel),
		Now:       time.Now,
		RunWizard: wizard.Run,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	root := NewRootCmd(app)
	root.SilenceUsage = true
	root.SilenceErrors = true
	return root.Execute()
}
