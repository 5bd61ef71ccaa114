// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

package defaults

import (
	"os"
	"path/filepath"

	"github.com/alexwang789/atlas/internal/admin/envvars"
	"github.com/alexwang789/atlas/internal/admin/trace"
)

const (
	LIB_DIR    = "lib"
	CONF_DIR   = "conf"
	LOG_DIR    = "logs"
	DATA_DIR   = "data"
	WEBAPP_DIR = "server/webapp"

	EXPANDED_WEBAPP = "metadata"
	WAR_FILE        = "metadata.war"
	ENV_SCRIPT      = "metadata-env.sh"
	PID_FILE        = "metadata.pid"
)

// Layout is the set of directories used by one installation.
type Layout struct {
	Home   string
	Lib    string
	Conf   string
	Log    string
	Data   string
	WebApp string
}

// NewLayout computes the directories under home; a non-empty override
// variable (as seen by getenv) replaces the computed default verbatim.
func NewLayout(home string, getenv func(string) string) Layout {
	pick := func(envName, sub string) string {
		if envName != "" {
			if env := getenv(envName); env != "" {
				trace.Debug(envName, "=>", env)
				return env
			}
		}
		return filepath.Join(home, filepath.FromSlash(sub))
	}
	return Layout{
		Home:   home,
		Lib:    pick("", LIB_DIR),
		Conf:   pick(envvars.METADATA_CONF, CONF_DIR),
		Log:    pick(envvars.METADATA_LOG_DIR, LOG_DIR),
		Data:   pick(envvars.METADATA_DATA_DIR, DATA_DIR),
		WebApp: pick(envvars.METADATA_EXPANDED_WEBAPP_DIR, WEBAPP_DIR),
	}
}

// CurrentLayout is NewLayout using the process environment.
func CurrentLayout(home string) Layout {
	return NewLayout(home, os.Getenv)
}

func LibDir(home string) string    { return CurrentLayout(home).Lib }
func ConfDir(home string) string   { return CurrentLayout(home).Conf }
func LogDir(home string) string    { return CurrentLayout(home).Log }
func DataDir(home string) string   { return CurrentLayout(home).Data }
func WebAppDir(home string) string { return CurrentLayout(home).WebApp }

// Where the web application archive is unpacked.
func (l Layout) ExpandedWebAppDir() string {
	return filepath.Join(l.WebApp, EXPANDED_WEBAPP)
}

// The packaged archive always lives under home, even if the webapp
// directory is overridden.
func (l Layout) WarFile() string {
	return filepath.Join(l.Home, filepath.FromSlash(WEBAPP_DIR), WAR_FILE)
}

func (l Layout) EnvScript() string {
	return filepath.Join(l.Conf, ENV_SCRIPT)
}

func (l Layout) PidFile() string {
	return filepath.Join(l.Log, PID_FILE)
}
