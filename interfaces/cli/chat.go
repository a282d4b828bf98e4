package cli

import (
	"github.com/spf13/cobra"

	"github.com/Nether404/theWebKnot-sub006/domain/request"
)

// newChatCmd creates the chat command.
func (a *App) newChatCmd() *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Ask the design assistant a free-form question",
		Long: `Send a free-form message to the design assistant. When the backend is
unreachable the reply is composed offline from prompt analysis.

Examples:
  webknot chat "what color theme suits a law firm site?"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.resolve(cmd.Context(), opts, request.Request{
				Operation: request.OpChat,
				Prompt:    args[0],
			})
		},
	}

	addResolveFlags(cmd, opts)

	return cmd
}
