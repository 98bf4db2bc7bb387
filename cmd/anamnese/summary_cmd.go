package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrsinham/anamnese/cmd/anamnese/wizard"
	"github.com/mrsinham/anamnese/internal/intake"
	"github.com/mrsinham/anamnese/internal/report"
	"github.com/mrsinham/anamnese/internal/util"
)

func newSummaryCmd(app *App) *cobra.Command {
	var answersPath, format string
	var sets []string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the summary of an answers file",
		Long: `Load an answers file, apply --set overrides, walk the six sections
and print the summary. The command fails on the first section whose
required fields are missing.`,
		Example: `  anamnese summary --answers answers.yaml
  anamnese summary --answers answers.yaml --set experience_level=avancado --set height=1.80 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			answers, err := wizard.LoadFromYAML(answersPath)
			if err != nil {
				return err
			}
			c, err := answers.NewController(intake.WithObserver(app.Observer))
			if err != nil {
				return fmt.Errorf("loading answers: %w", err)
			}

			assignments, err := util.ParseSetFlags(sets)
			if err != nil {
				return err
			}
			if err := util.ApplyAssignments(c, assignments); err != nil {
				return err
			}

			summary, err := completeSession(c)
			if err != nil {
				return err
			}
			return report.Render(cmd.OutOrStdout(), summary, f)
		},
	}

	cmd.Flags().StringVarP(&answersPath, "answers", "a", "", "YAML answers file")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Override one answer: 'field=value' (repeatable, see 'anamnese fields')")
	cmd.Flags().StringVar(&format, "format", app.Config.Format, "Output format: text, yaml, json")
	_ = cmd.MarkFlagRequired("answers")

	return cmd
}

// completeSession advances c through every section and derives the summary.
func completeSession(c *intake.Controller) (intake.Summary, error) {
	for {
		state, err := c.Advance()
		if err != nil {
			return intake.Summary{}, incompleteError(err)
		}
		if state.SummaryActive {
			break
		}
	}

	summary, err := c.DeriveSummary()
	if err != nil {
		return intake.Summary{}, fmt.Errorf("deriving summary: %w", err)
	}
	return summary, nil
}

// incompleteError names the rejected section and its missing fields.
func incompleteError(err error) error {
	var verr *intake.ValidationError
	if !errors.As(err, &verr) {
		return err
	}

	missing := make([]string, len(verr.Missing))
	for i, id := range verr.Missing {
		missing[i] = string(id)
	}
	return fmt.Errorf("section %s is incomplete, missing %s: %w",
		verr.Section, strings.Join(missing, ", "), err)
}
