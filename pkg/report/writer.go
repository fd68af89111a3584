package report

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WriteFile writes report content to a file, creating parent directories.
func WriteFile(content []byte, outputPath string) (err error) {
	// Ensure output directory exists
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	err = os.WriteFile(outputPath, content, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write report file: %s", outputPath)
		return err
	}

	return err
}

// Cleanup removes previously written report files.
func Cleanup(paths ...string) (err error) {
	for _, path := range paths {
		err = os.Remove(path)
		if err != nil {
			err = errors.Wrapf(err, "failed to remove report file: %s", path)
			return err
		}
	}
	return err
}
