package cli

import (
	"github.com/spf13/cobra"

	"github.com/Nether404/theWebKnot-sub006/domain/request"
	"github.com/Nether404/theWebKnot-sub006/domain/wizard"
)

// newAnalyzeCmd creates the analyze command.
func (a *App) newAnalyzeCmd() *cobra.Command {
	opts := &resolveOptions{}
	var projectType string

	cmd := &cobra.Command{
		Use:   "analyze [description]",
		Short: "Classify a project description into recommended defaults",
		Long: `Analyze a free-text project description and recommend design defaults
for it: project type, style, theme, component count, and functionality.

Examples:
  webknot analyze "a portfolio to showcase my photography"
  webknot analyze --type Portfolio "my freelance work" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.resolve(cmd.Context(), opts, request.Request{
				Operation: request.OpAnalysis,
				Selection: &wizard.Selection{
					Description: args[0],
					ProjectType: projectType,
				},
			})
		},
	}

	addResolveFlags(cmd, opts)
	cmd.Flags().StringVar(&projectType, "type", "", "Declared project type (overrides keyword detection)")

	return cmd
}
