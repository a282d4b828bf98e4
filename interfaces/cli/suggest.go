package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Nether404/theWebKnot-sub006/domain/request"
	"github.com/Nether404/theWebKnot-sub006/domain/wizard"
)

// newSuggestCmd creates the suggest command.
func (a *App) newSuggestCmd() *cobra.Command {
	opts := &resolveOptions{}
	var (
		selectionPath string
		sel           wizard.Selection
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Check a wizard selection for design conflicts",
		Long: `Score a wizard selection for internal harmony and report conflicting
choices with suggested fixes.

The selection comes from a JSON file, individual flags, or both; flags
override file fields.

Examples:
  webknot suggest --selection selection.json
  webknot suggest --type Portfolio --style playful --theme monochrome`,
		RunE: func(cmd *cobra.Command, args []string) error {
			final := sel
			if selectionPath != "" {
				loaded, err := loadSelection(selectionPath)
				if err != nil {
					return err
				}
				mergeSelection(&loaded, sel)
				final = loaded
			}
			return a.resolve(cmd.Context(), opts, request.Request{
				Operation: request.OpSuggestions,
				Selection: &final,
			})
		},
	}

	addResolveFlags(cmd, opts)
	cmd.Flags().StringVar(&selectionPath, "selection", "", "Path to a selection JSON file")
	cmd.Flags().StringVar(&sel.ProjectType, "type", "", "Project type")
	cmd.Flags().StringVar(&sel.DesignStyle, "style", "", "Design style")
	cmd.Flags().StringVar(&sel.ColorTheme, "theme", "", "Color theme")
	cmd.Flags().IntVar(&sel.ComponentCount, "components", 0, "Component count")
	cmd.Flags().StringVar(&sel.AnimationLevel, "animation", "", "Animation level")
	cmd.Flags().StringSliceVar(&sel.Functionality, "functionality", nil, "Functionality features")

	return cmd
}

func loadSelection(path string) (wizard.Selection, error) {
	var sel wizard.Selection
	data, err := os.ReadFile(path)
	if err != nil {
		return sel, fmt.Errorf("read selection file: %w", err)
	}
	if err := json.Unmarshal(data, &sel); err != nil {
		return sel, fmt.Errorf("parse selection file: %w", err)
	}
	return sel, nil
}

// mergeSelection overlays non-zero override fields onto base.
func mergeSelection(base *wizard.Selection, override wizard.Selection) {
	if override.ProjectType != "" {
		base.ProjectType = override.ProjectType
	}
	if override.DesignStyle != "" {
		base.DesignStyle = override.DesignStyle
	}
	if override.ColorTheme != "" {
		base.ColorTheme = override.ColorTheme
	}
	if override.ComponentCount != 0 {
		base.ComponentCount = override.ComponentCount
	}
	if override.AnimationLevel != "" {
		base.AnimationLevel = override.AnimationLevel
	}
	if len(override.Functionality) > 0 {
		base.Functionality = override.Functionality
	}
}
