// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

package server

import (
	"os"
	"path/filepath"

	"github.com/alexwang789/atlas/config"
	"github.com/alexwang789/atlas/internal/admin/defaults"
	"github.com/alexwang789/atlas/internal/admin/envvars"
	"github.com/alexwang789/atlas/internal/admin/trace"
	"github.com/alexwang789/atlas/internal/metadata"
	"github.com/alexwang789/atlas/internal/osutil"
)

func adjustVerbosityFromEnv() {
	if doTrace := os.Getenv(envvars.TRACE_METADATA_STARTUP); doTrace != "" {
		trace.AdjustVerbosity(1)
	}
	if doDebug := os.Getenv(envvars.DEBUG_METADATA_STARTUP); doDebug != "" {
		trace.AdjustVerbosity(2)
	}
}

// resolveLayout sources metadata-env.sh from the configuration directory
// and then computes the layout again, since the script may override any
// of the directories (including home).
func resolveLayout(createDirs bool) (defaults.Layout, error) {
	home := metadata.FindHome()
	confDir := defaults.ConfDir(home)
	if createDirs {
		if _, err := osutil.DirMustExist(confDir); err != nil {
			return defaults.Layout{}, err
		}
	}
	if err := metadata.LoadEnvScript(confDir); err != nil {
		return defaults.Layout{}, err
	}
	layout := defaults.CurrentLayout(metadata.FindHome())
	if createDirs {
		if _, err := osutil.DirMustExist(layout.Conf); err != nil {
			return layout, err
		}
		if _, err := osutil.DirMustExist(layout.Log); err != nil {
			return layout, err
		}
	}
	trace.Debug("metadata home:", layout.Home)
	return layout, nil
}

func loadConfig(layout defaults.Layout) (*config.Config, error) {
	return config.ReadFile(filepath.Join(layout.Conf, config.FILE_NAME))
}

func pidFileFor(layout defaults.Layout, cfg *config.Config) string {
	return cfg.GetOr(config.PID_FILE, layout.PidFile())
}
