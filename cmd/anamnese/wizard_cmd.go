package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mrsinham/anamnese/cmd/anamnese/wizard"
	"github.com/mrsinham/anamnese/internal/report"
)

type wizardFlags struct {
	from      string
	format    string
	noWelcome bool
}

func newWizardCmd(app *App) *cobra.Command {
	flags := wizardFlags{}

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Answer the questionnaire interactively",
		Long: `Open the interactive questionnaire. Choosing "Exportar Sumário" on the
summary screen prints the summary once the terminal is restored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWizard(cmd, app, flags)
		},
	}

	cmd.Flags().StringVar(&flags.from, "from", "", "Pre-fill the forms from a YAML answers file")
	cmd.Flags().StringVar(&flags.format, "format", app.Config.Format, "Summary output format: text, yaml, json")
	cmd.Flags().BoolVar(&flags.noWelcome, "no-welcome", false, "Skip the welcome screen")

	return cmd
}

func runWizard(cmd *cobra.Command, app *App, flags wizardFlags) error {
	format, err := report.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	opts := wizard.RunOptions{
		Observer:    app.Observer,
		AltScreen:   app.Config.AltScreen,
		SkipWelcome: flags.noWelcome,
	}

	if flags.from != "" {
		absPath, err := filepath.Abs(flags.from)
		if err != nil {
			return fmt.Errorf("resolving answers path: %w", err)
		}
		answers, err := wizard.LoadFromYAML(absPath)
		if err != nil {
			return fmt.Errorf("loading answers: %w", err)
		}
		opts.Answers = answers
		opts.SkipWelcome = true
	}

	res, err := app.RunWizard(opts)
	if err != nil {
		return err
	}
	if !res.Exported {
		return nil // cancelled is not an error
	}
	return report.Render(cmd.OutOrStdout(), res.Summary, format)
}
