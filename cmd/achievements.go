package cmd

import (
	"fmt"

	"github.com/nikogura/skill-dashboard/pkg/dashboard"
	"github.com/nikogura/skill-dashboard/pkg/report"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var achievementsEarnedOnly bool

//nolint:gochecknoglobals // Cobra boilerplate
var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List achievements and whether they are unlocked",
	RunE:  runAchievements,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(achievementsCmd)
	achievementsCmd.Flags().BoolVar(&achievementsEarnedOnly, "earned", false, "Only list earned achievements")
}

func runAchievements(cmd *cobra.Command, args []string) (err error) {
	var view *dashboard.View
	view, _, err = buildView()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	statuses := view.Achievements()
	for _, status := range statuses {
		switch {
		case status.Earned:
			fmt.Fprintf(out, "%s  %-28s %s\n", status.Badge, status.Title, status.Description)
		case !achievementsEarnedOnly:
			fmt.Fprintf(out, "%s  %-28s How to unlock: %s\n", report.LockedBadge, status.Title, status.ConditionDescription)
		}
	}

	fmt.Fprintf(out, "\n%d/%d achievements unlocked\n", view.EarnedCount(), len(statuses))

	return err
}
