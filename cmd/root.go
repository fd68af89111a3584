package cmd

import (
	"os"

	"github.com/nikogura/skill-dashboard/pkg/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var datasetFile string

//nolint:gochecknoglobals // Set in PersistentPreRunE
var logger = zap.NewNop()

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "skill-dashboard",
	Short: "Summarize skill growth and achievements from attended events",
	Long: `skill-dashboard reads a dataset of attended events and totals the soft and
hard skills each event improved. It ranks your strongest skills and most
valuable events, and reports which achievements you have unlocked.

Without a configured dataset the bundled sample events are used.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		logger, err = logging.New(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.skill-dashboard/config.json)")
	rootCmd.PersistentFlags().StringVarP(&datasetFile, "dataset", "d", "", "events dataset (.json, .yaml); overrides config")
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}

// getDatasetFile returns the dataset flag value.
func getDatasetFile() (result string) {
	result = datasetFile
	return result
}
