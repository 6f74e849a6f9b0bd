package crepeconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/crepe/configs"
	"github.com/reusee/crepe/logs"
)

//go:embed schema.cue
var Schema string

var Filenames = []string{
	"crepe.cue",
	".crepe.cue",
}

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

	// explicit
	if path := os.Getenv("CREPE_CONFIG"); path != "" {
		paths = append(paths, path)
	}

	var dirs []string

	// working directory
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}

	// user config dir
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}

	// system wide dir
	dirs = append(dirs, "/etc")

	paths = append(paths, lookup(dirs, Filenames)...)

	return configs.NewLoader(paths, Schema)
}

func lookup(dirs []string, filenames []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}
