package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newStatsCmd creates the stats command.
func (a *App) newStatsCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print cache statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := buildRuntime(configPath)
			if err != nil {
				return err
			}
			defer rt.close(cmd.Context())

			stats := rt.orch.Stats(cmd.Context())
			out, err := json.MarshalIndent(stats, "", "  ")
			if err != nil {
				return fmt.Errorf("encode stats: %w", err)
			}
			fmt.Fprintln(a.stdout, string(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")

	return cmd
}

// newClearCacheCmd creates the clear-cache command.
func (a *App) newClearCacheCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "clear-cache [type]",
		Short: "Clear cached results",
		Long: `Clear cached results. The optional type restricts the shared-cache
namespace to one operation (analysis, suggestions, enhancement, chat);
the default clears everything. The local tier is always cleared whole.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ := "all"
			if len(args) > 0 {
				typ = args[0]
			}

			rt, err := buildRuntime(configPath)
			if err != nil {
				return err
			}
			defer rt.close(cmd.Context())

			n := rt.orch.ClearCaches(cmd.Context(), typ)
			fmt.Fprintf(a.stdout, "cleared %d shared entries (%s)\n", n, typ)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")

	return cmd
}
