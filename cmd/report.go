package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nikogura/skill-dashboard/pkg/config"
	"github.com/nikogura/skill-dashboard/pkg/dashboard"
	"github.com/nikogura/skill-dashboard/pkg/report"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//nolint:gochecknoglobals // Cobra boilerplate
var reportFormat string

//nolint:gochecknoglobals // Cobra boilerplate
var reportOutput string

//nolint:gochecknoglobals // Cobra boilerplate
var reportClean bool

//nolint:gochecknoglobals // Cobra boilerplate
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the dashboard as a markdown or JSON report",
	Long: `Write the dashboard as a markdown or JSON report.

Use --output - to print to stdout. Use --clean to remove reports left in the
output directory by earlier runs, in any format, before writing.

Example:
  skill-dashboard report
  skill-dashboard report --format json --output -
  skill-dashboard report --output ~/Documents/skills.md`,
	RunE: runReport,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportFormat, "format", "", "Report format: md or json (default from config)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Output file (default <output_dir>/skill-report.<format>)")
	reportCmd.Flags().BoolVar(&reportClean, "clean", false, "Remove existing reports in the output directory before writing")
}

func runReport(cmd *cobra.Command, args []string) (err error) {
	var view *dashboard.View
	var cfg config.Config
	view, cfg, err = buildView()
	if err != nil {
		return err
	}

	formatName := reportFormat
	if formatName == "" {
		formatName = cfg.Defaults.Format
	}

	var format report.Format
	format, err = report.ParseFormat(formatName)
	if err != nil {
		return err
	}

	var content []byte
	content, err = report.Render(view, format)
	if err != nil {
		return err
	}

	if reportOutput == "-" {
		_, err = cmd.OutOrStdout().Write(content)
		return err
	}

	outPath := buildReportPath(reportOutput, cfg.Defaults.OutputDir, format)

	if reportClean {
		stale := existingReports(cfg.Defaults.OutputDir, outPath)
		err = report.Cleanup(stale...)
		if err != nil {
			err = errors.Wrap(err, "failed to remove stale reports")
			return err
		}
		logger.Debug("Removed stale reports", zap.Strings("paths", stale))
	}

	err = report.WriteFile(content, outPath)
	if err != nil {
		err = errors.Wrap(err, "failed to write report")
		return err
	}

	logger.Info("Report written", zap.String("path", outPath), zap.String("format", string(format)))
	fmt.Fprintf(cmd.OutOrStdout(), "Report saved at: %s\n", outPath)

	return err
}

func buildReportPath(flagValue, outDir string, format report.Format) (path string) {
	path = flagValue
	if path == "" {
		path = filepath.Join(outDir, "skill-report."+string(format))
	}
	return path
}

// existingReports lists report files from earlier runs: the default report of
// every format in outDir plus outPath itself.
func existingReports(outDir, outPath string) (paths []string) {
	candidates := []string{
		buildReportPath("", outDir, report.FormatMarkdown),
		buildReportPath("", outDir, report.FormatJSON),
		outPath,
	}

	seen := make(map[string]bool, len(candidates))
	for _, candidate := range candidates {
		candidate = filepath.Clean(candidate)
		if seen[candidate] {
			continue
		}
		seen[candidate] = true

		_, err := os.Stat(candidate)
		if err == nil {
			paths = append(paths, candidate)
		}
	}

	return paths
}
