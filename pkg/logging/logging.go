package logging

import (
	"codecat/pkg/version"

	"go.uber.org/zap"
)

// Setup builds a zap logger for the application. Debug mode switches to the
// development config with debug-level output.
func Setup(debug bool, appName string) (*zap.Logger, error) {
	var cfg zap.Config

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": version.Version,
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewExample(), err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}
