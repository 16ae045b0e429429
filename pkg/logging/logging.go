// Package logging builds the application's zap logger.
package logging

import (
	"go.uber.org/zap"
)

// Setup builds a logger for the application. Debug selects the development
// config with human-readable output; otherwise the production config is used.
// The app name and version are attached to every entry.
func Setup(debug bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewExample(), err
	}
	return logger, nil
}
