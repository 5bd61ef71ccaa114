// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.
package defaults

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLayoutDefaults(t *testing.T) {
	home := filepath.Join("opt", "metadata")
	l := NewLayout(home, envOf(nil))
	sep := string(filepath.Separator)
	assert.Equal(t, home, l.Home)
	assert.Equal(t, home+sep+"lib", l.Lib)
	assert.Equal(t, home+sep+"conf", l.Conf)
	assert.Equal(t, home+sep+"logs", l.Log)
	assert.Equal(t, home+sep+"data", l.Data)
	assert.Equal(t, home+sep+"server"+sep+"webapp", l.WebApp)
	assert.Equal(t, home+sep+"server"+sep+"webapp"+sep+"metadata", l.ExpandedWebAppDir())
	assert.Equal(t, home+sep+"server"+sep+"webapp"+sep+"metadata.war", l.WarFile())
	assert.Equal(t, home+sep+"conf"+sep+"metadata-env.sh", l.EnvScript())
	assert.Equal(t, home+sep+"logs"+sep+"metadata.pid", l.PidFile())
}

func TestLayoutOverrides(t *testing.T) {
	overrides := map[string]string{
		"METADATA_CONF":                "/etc/metadata/../metadata",
		"METADATA_LOG_DIR":             "relative/logs",
		"METADATA_DATA_DIR":            "/srv/data/",
		"METADATA_EXPANDED_WEBAPP_DIR": "/tmp/webapp",
	}
	// every combination of set and unset overrides
	keys := []string{"METADATA_CONF", "METADATA_LOG_DIR", "METADATA_DATA_DIR", "METADATA_EXPANDED_WEBAPP_DIR"}
	for mask := 0; mask < 1<<len(keys); mask++ {
		env := make(map[string]string)
		for i, k := range keys {
			if mask&(1<<i) != 0 {
				env[k] = overrides[k]
			}
		}
		l := NewLayout("/opt/metadata", envOf(env))
		def := NewLayout("/opt/metadata", envOf(nil))
		check := func(key, got, fallback string) {
			if v, ok := env[key]; ok {
				assert.Equal(t, v, got)
			} else {
				assert.Equal(t, fallback, got)
			}
		}
		check("METADATA_CONF", l.Conf, def.Conf)
		check("METADATA_LOG_DIR", l.Log, def.Log)
		check("METADATA_DATA_DIR", l.Data, def.Data)
		check("METADATA_EXPANDED_WEBAPP_DIR", l.WebApp, def.WebApp)
		assert.Equal(t, def.Lib, l.Lib)
	}
}

func TestWarFileIgnoresWebAppOverride(t *testing.T) {
	l := NewLayout("/opt/metadata", envOf(map[string]string{"METADATA_EXPANDED_WEBAPP_DIR": "/tmp/webapp"}))
	assert.Equal(t, filepath.Join("/tmp/webapp", "metadata"), l.ExpandedWebAppDir())
	assert.Equal(t, filepath.Join("/opt/metadata", "server", "webapp", "metadata.war"), l.WarFile())
}

func TestHelpersReadProcessEnv(t *testing.T) {
	t.Setenv("METADATA_CONF", "/etc/metadata")
	t.Setenv("METADATA_LOG_DIR", "")
	t.Setenv("METADATA_DATA_DIR", "/srv/metadata")
	t.Setenv("METADATA_EXPANDED_WEBAPP_DIR", "")
	assert.Equal(t, "/etc/metadata", ConfDir("/opt/metadata"))
	assert.Equal(t, filepath.Join("/opt/metadata", "logs"), LogDir("/opt/metadata"))
	assert.Equal(t, filepath.Join("/opt/metadata", "lib"), LibDir("/opt/metadata"))
	assert.Equal(t, "/srv/metadata", DataDir("/opt/metadata"))
	assert.Equal(t, filepath.Join("/opt/metadata", "server", "webapp"), WebAppDir("/opt/metadata"))
}
