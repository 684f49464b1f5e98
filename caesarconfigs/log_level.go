package caesarconfigs

import (
	"github.com/reusee/caesar/configs"
	"github.com/reusee/caesar/logs"
)

// LogLevel is the level from config files. Command line -log-* flags are
// applied after it and win.
type LogLevel string

func (Module) LogLevel(
	loader configs.Loader,
	logger logs.Logger,
) LogLevel {
	level := configs.First[string](loader, "log_level")
	if level == "" {
		return ""
	}
	if err := logs.SetDefaultLevel(level); err != nil {
		logger.Warn("bad log level in config", "error", err)
		return ""
	}
	return LogLevel(level)
}
