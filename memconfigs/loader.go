package memconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/memsim/configs"
	"github.com/reusee/memsim/logs"
)

//go:embed schema.cue
var schema string

var configFilenames = []string{
	"memsim.cue",
	".memsim.cue",
}

// ConfigPaths lists existing config files, most specific first.
type ConfigPaths []string

func (Module) ConfigPaths() ConfigPaths {
	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	var paths ConfigPaths
	for _, dir := range dirs {
		for _, filename := range configFilenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return paths
}

func (Module) ConfigsLoader(
	paths ConfigPaths,
	logger logs.Logger,
) configs.Loader {
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", []string(paths),
		)
	}
	return configs.NewLoader(paths, schema)
}
