package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mrsinham/anamnese/cmd/anamnese/wizard"
	"github.com/mrsinham/anamnese/internal/config"
	"github.com/mrsinham/anamnese/internal/intake"
)

// App holds what the commands need from the environment.
type App struct {
	Config        config.Config
	Observer      intake.Observer
	Now           func() time.Time
	IsInteractive func() bool
	RunWizard     func(wizard.RunOptions) (wizard.Result, error)
}

// NewRootCmd creates the top-level "anamnese" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "anamnese",
		Short: "Questionário de anamnese para avaliação física",
		Long: `anamnese conduz o questionário de avaliação física em seis seções
(dados pessoais, saúde, atividade física, objetivos, estilo de vida e
medidas) e gera o sumário com IMC e limitações informadas.

Sem subcomando, abre o questionário interativo quando executado em um
terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return cmd.Help()
			}
			return runWizard(cmd, app, wizardFlags{format: app.Config.Format})
		},
	}

	root.AddCommand(
		newWizardCmd(app),
		newSummaryCmd(app),
		newDemoCmd(app),
		newFieldsCmd(),
		newVersionCmd(),
	)

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("anamnese %s\n", version)
		},
	}
}
