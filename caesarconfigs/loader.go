package caesarconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/caesar/configs"
	"github.com/reusee/caesar/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"caesar.cue",
	".caesar.cue",
}

// ConfigsLoader looks for config files in the working directory, the user
// config directory and /etc, in that order of precedence.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return configs.NewLoader(paths, schema)
}
