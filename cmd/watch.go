package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nikogura/skill-dashboard/pkg/config"
	"github.com/nikogura/skill-dashboard/pkg/dashboard"
	"github.com/nikogura/skill-dashboard/pkg/report"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//nolint:gochecknoglobals // Cobra boilerplate
var watchDebounce time.Duration

//nolint:gochecknoglobals // Cobra boilerplate
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the dashboard whenever the dataset file changes",
	Long: `Watch the configured dataset file and redraw the terminal dashboard after
every change. Each redraw loads a fresh copy of the dataset.

Example:
  skill-dashboard watch --dataset ~/events.json`,
	RunE: runWatch,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "Wait this long after the last change before redrawing")
}

func runWatch(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	if cfg.DatasetLocation == "" {
		err = errors.New("watch needs a dataset file (use --dataset or set dataset_location)")
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = watchDataset(ctx, cfg, cmd.OutOrStdout())
	return err
}

// watchDataset redraws on every debounced change until ctx is done. The parent
// directory is watched because editors often replace files instead of writing them.
func watchDataset(ctx context.Context, cfg config.Config, out io.Writer) (err error) {
	path, err := filepath.Abs(cfg.DatasetLocation)
	if err != nil {
		err = errors.Wrapf(err, "failed to resolve dataset path: %s", cfg.DatasetLocation)
		return err
	}

	var watcher *fsnotify.Watcher
	watcher, err = fsnotify.NewWatcher()
	if err != nil {
		err = errors.Wrap(err, "failed to create file watcher")
		return err
	}
	defer watcher.Close()

	err = watcher.Add(filepath.Dir(path))
	if err != nil {
		err = errors.Wrapf(err, "failed to watch directory: %s", filepath.Dir(path))
		return err
	}

	redraw(cfg, path, out)

	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return err

		case event, ok := <-watcher.Events:
			if !ok {
				return err
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("Dataset changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			timer.Reset(watchDebounce)

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return err
			}
			logger.Warn("File watcher error", zap.Error(watchErr))

		case <-timer.C:
			redraw(cfg, path, out)
		}
	}
}

// redraw builds a new snapshot from disk. Load failures are logged and the
// previous output stays on screen.
func redraw(cfg config.Config, path string, out io.Writer) {
	data, err := loadDataset(path)
	if err != nil {
		logger.Error("Failed to reload dataset", zap.String("path", path), zap.Error(err))
		return
	}

	view := dashboard.Build(data, nil, cfg.Limits)
	fmt.Fprint(out, "\033[H\033[2J")
	fmt.Fprint(out, report.Terminal(view))
	fmt.Fprintf(out, "\nWatching %s (updated %s)\n", path, time.Now().Format(time.Kitchen))
}
