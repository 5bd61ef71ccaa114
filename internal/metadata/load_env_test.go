// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.
package metadata

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/alexwang789/atlas/internal/admin/trace"
	"github.com/alexwang789/atlas/internal/osutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvScript(t *testing.T, contents string) string {
	if runtime.GOOS == "windows" || osutil.Which("bash") == "" {
		t.Skip("needs bash")
	}
	confDir := t.TempDir()
	require.Nil(t, os.WriteFile(filepath.Join(confDir, "metadata-env.sh"), []byte(contents), 0644))
	return confDir
}

type recordingReceiver map[string]string

func (r recordingReceiver) setVar(k, v string) { r[k] = v }

func TestParseEnvOutputAllowList(t *testing.T) {
	got := make(recordingReceiver)
	parseEnvOutput(`HOME=/root
JAVA_HOME=/usr/lib/jvm/java-8
  METADATA_OPTS=-Xmx2g -Dfoo=a=b  
METADATACPPATH=/opt/extra/*.jar
PATH=/usr/bin
METADATA_CONF
garbage line
`, got)
	assert.Equal(t, recordingReceiver{
		"JAVA_HOME":      "/usr/lib/jvm/java-8",
		"METADATA_OPTS":  "-Xmx2g -Dfoo=a=b",
		"METADATACPPATH": "/opt/extra/*.jar",
		"METADATA_CONF":  "",
	}, got)
}

func TestLoadEnvScript(t *testing.T) {
	confDir := writeEnvScript(t, `
export JAVA_HOME=/opt/jdk
export METADATA_OPTS="-Xmx2g -Dmetadata.x=y"
export METADATA_DATA_DIR=/srv/metadata/data
export NOT_ALLOWED=should-not-leak
`)
	t.Setenv("JAVA_HOME", "/old/jdk")
	t.Setenv("METADATA_OPTS", "")
	t.Setenv("METADATA_DATA_DIR", "")
	t.Setenv("NOT_ALLOWED", "")
	require.Nil(t, LoadEnvScript(confDir))
	assert.Equal(t, "/opt/jdk", os.Getenv("JAVA_HOME"))
	assert.Equal(t, "-Xmx2g -Dmetadata.x=y", os.Getenv("METADATA_OPTS"))
	assert.Equal(t, "/srv/metadata/data", os.Getenv("METADATA_DATA_DIR"))
	assert.Equal(t, "", os.Getenv("NOT_ALLOWED"))
}

func TestLoadEnvScriptFailureIsTolerated(t *testing.T) {
	confDir := writeEnvScript(t, `
echo METADATA_LOG_DIR=/var/log/metadata
echo UNLISTED=1
false
`)
	var buf bytes.Buffer
	old := trace.SetOutput(&buf)
	defer trace.SetOutput(old)
	t.Setenv("METADATA_LOG_DIR", "")
	t.Setenv("UNLISTED", "")
	assert.Nil(t, LoadEnvScript(confDir))
	assert.Equal(t, "/var/log/metadata", os.Getenv("METADATA_LOG_DIR"))
	assert.Equal(t, "", os.Getenv("UNLISTED"))
	assert.Contains(t, buf.String(), "using its output anyway")
}

func TestLoadEnvScriptMissing(t *testing.T) {
	t.Setenv("JAVA_HOME", "/untouched")
	assert.Nil(t, LoadEnvScript(t.TempDir()))
	assert.Equal(t, "/untouched", os.Getenv("JAVA_HOME"))
}

func TestExportEnvScriptToSh(t *testing.T) {
	confDir := writeEnvScript(t, `
export METADATA_OPTS="-Xmx1g -Dname='x y'"
export JAVA_HOME=/opt/jdk
export OTHER=foo
`)
	var buf bytes.Buffer
	require.Nil(t, ExportEnvScriptToSh(confDir, &buf))
	assert.Contains(t, buf.String(), "JAVA_HOME=/opt/jdk\nexport JAVA_HOME\n")
	assert.Contains(t, buf.String(), "METADATA_OPTS='-Xmx1g -Dname='\\''x y'\\'''\nexport METADATA_OPTS\n")
	assert.NotContains(t, buf.String(), "OTHER")
}

func TestShellQuote(t *testing.T) {
	assert.Equal(t, "/opt/jdk", shellQuote("/opt/jdk"))
	assert.Equal(t, "''", shellQuote(""))
	assert.Equal(t, "'a b'", shellQuote("a b"))
	assert.Equal(t, `'it'\''s'`, shellQuote("it's"))
}
