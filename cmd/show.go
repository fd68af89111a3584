package cmd

import (
	"fmt"

	"github.com/nikogura/skill-dashboard/pkg/dashboard"
	"github.com/nikogura/skill-dashboard/pkg/report"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the skill dashboard in the terminal",
	Long: `Display top soft and hard skills, the highest-value events and the
achievement board.

Example:
  skill-dashboard show
  skill-dashboard show --dataset ~/events.yaml`,
	RunE: runShow,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) (err error) {
	var view *dashboard.View
	view, _, err = buildView()
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), report.Terminal(view))
	return err
}
