package cmd

import (
	"github.com/nikogura/skill-dashboard/pkg/config"
	"github.com/nikogura/skill-dashboard/pkg/dashboard"
	"github.com/nikogura/skill-dashboard/pkg/events"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func loadConfig() (cfg config.Config, err error) {
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return cfg, err
	}

	if flagValue := getDatasetFile(); flagValue != "" {
		cfg.DatasetLocation = flagValue
	}

	return cfg, err
}

// loadDataset reads the dataset at path, or the bundled dataset when path is empty.
func loadDataset(path string) (data events.Dataset, err error) {
	if path == "" {
		logger.Debug("Using bundled dataset")
		data = events.Default()
		return data, err
	}

	logger.Debug("Loading dataset", zap.String("path", path))
	data, err = events.Load(path)
	if err != nil {
		return data, err
	}

	for _, warning := range data.Validate() {
		logger.Warn("Dataset record looks malformed", zap.String("path", path), zap.String("detail", warning))
	}

	logger.Debug("Dataset loaded", zap.Int("events", data.Len()))

	return data, err
}

// buildView loads configuration and dataset and builds a fresh snapshot.
func buildView() (view *dashboard.View, cfg config.Config, err error) {
	cfg, err = loadConfig()
	if err != nil {
		return view, cfg, err
	}

	var data events.Dataset
	data, err = loadDataset(cfg.DatasetLocation)
	if err != nil {
		return view, cfg, err
	}

	view = dashboard.Build(data, nil, cfg.Limits)
	logger.Debug("Dashboard built",
		zap.Int("soft_skills", view.Result().Soft.Len()),
		zap.Int("hard_skills", view.Result().Hard.Len()),
		zap.Int("earned", view.EarnedCount()))

	return view, cfg, err
}
