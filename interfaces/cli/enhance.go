package cli

import (
	"github.com/spf13/cobra"

	"github.com/Nether404/theWebKnot-sub006/domain/request"
)

// newEnhanceCmd creates the enhance command.
func (a *App) newEnhanceCmd() *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "enhance [prompt]",
		Short: "Rewrite a generation prompt with missing requirements filled in",
		Long: `Analyze a generation prompt for gaps (responsiveness, accessibility,
security context) and return an enhanced version with the fixable gaps
addressed.

Examples:
  webknot enhance "make me a website for my bakery"
  webknot enhance --no-fallback "landing page for a saas product"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.resolve(cmd.Context(), opts, request.Request{
				Operation: request.OpEnhancement,
				Prompt:    args[0],
			})
		},
	}

	addResolveFlags(cmd, opts)

	return cmd
}
