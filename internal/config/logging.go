package config

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// NewLogger creates a logrus logger configured from the LOG_LEVEL setting.
// Level names follow the deployment convention (DEBUG, INFO, WARNING,
// ERROR, CRITICAL); unknown values fall back to info.
func NewLogger(cfg *Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(parseLogLevel(cfg.LogLevel))
	return logger
}

func parseLogLevel(level string) logrus.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return logrus.DebugLevel
	case "INFO":
		return logrus.InfoLevel
	case "WARNING", "WARN":
		return logrus.WarnLevel
	case "ERROR":
		return logrus.ErrorLevel
	case "CRITICAL", "FATAL":
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}
