package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/mrsinham/anamnese/cmd/anamnese/wizard"
	"github.com/mrsinham/anamnese/internal/intake"
	"github.com/mrsinham/anamnese/internal/report"
	"github.com/mrsinham/anamnese/internal/util"
)

func newDemoCmd(app *App) *cobra.Command {
	var seed uint64
	var format string
	var answersOnly bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate a sample patient and print its summary",
		Long: `Generate a plausible, complete set of answers and print its summary.
The same --seed always yields the same patient. With --answers-only the
generated answers are printed as a YAML file usable with 'summary' and
'wizard --from'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			now := app.Now()
			if seed == 0 {
				seed = uint64(now.UnixNano())
				fmt.Fprintf(cmd.ErrOrStderr(), "seed: %d\n", seed)
			}
			answers := util.GenerateAnswers(now, rand.New(rand.NewPCG(seed, seed)))

			if answersOnly {
				data, err := wizard.FromAnswerSet(answers).ToYAML()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			c := intake.NewController(intake.WithAnswers(answers), intake.WithObserver(app.Observer))
			summary, err := completeSession(c)
			if err != nil {
				return err
			}
			return report.Render(cmd.OutOrStdout(), summary, f)
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (0 picks one and prints it on stderr)")
	cmd.Flags().StringVar(&format, "format", app.Config.Format, "Output format: text, yaml, json")
	cmd.Flags().BoolVar(&answersOnly, "answers-only", false, "Print the generated answers file instead of the summary")

	return cmd
}
