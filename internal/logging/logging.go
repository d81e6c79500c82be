// Package logging builds the zap logger. Output goes to a file only, since
// anything written to the terminal would corrupt the UI.
package logging

import (
	"fmt"

	"go.uber.org/zap"

	"peoplepicker/internal/config"
)

// New builds a production zap logger writing to settings.File. An empty file
// disables logging.
func New(settings config.LogSettings) (*zap.Logger, zap.AtomicLevel, error) {
	logLevel, err := zap.ParseAtomicLevel(settings.Level)
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("%w: %q", config.ErrInvalidLogLevel, settings.Level)
	}

	if settings.File == "" {
		return zap.NewNop(), logLevel, nil
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = logLevel
	loggerConfig.OutputPaths = []string{settings.File}
	loggerConfig.ErrorOutputPaths = []string{settings.File}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, logLevel, nil
}
