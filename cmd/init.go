package cmd

import (
	"fmt"

	"github.com/nikogura/skill-dashboard/pkg/config"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		err = config.InitConfig(getConfigFile())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Configuration created. Set dataset_location to point at your events file.")
		return err
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
}
