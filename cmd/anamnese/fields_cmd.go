package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mrsinham/anamnese/cmd/anamnese/wizard/help"
	"github.com/mrsinham/anamnese/internal/util"
)

func newFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the fields accepted by --set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("FIELD", "SECTION", "KIND", "REQUIRED", "VALUES", "DESCRIPTION")

			for _, info := range util.RegisteredFields() {
				required := ""
				if info.Spec.Required {
					required = "yes"
				}
				t.Row(
					info.Name,
					strconv.Itoa(int(info.Spec.Section)),
					info.Spec.Kind.String(),
					required,
					strings.Join(info.Choices, ", "),
					help.Texts[info.Name].Description,
				)
			}

			cmd.Println(t.Render())
			return nil
		},
	}
}
