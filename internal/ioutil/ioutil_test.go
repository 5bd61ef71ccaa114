// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

package ioutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExists(t *testing.T) {
	assert.True(t, Exists("ioutil.go"))
	assert.False(t, Exists("nosuchthing.go"))
	tmpDir := t.TempDir()
	assert.True(t, Exists(tmpDir))
	assert.False(t, Exists(filepath.Join(tmpDir, "metadata", "WEB-INF")))
}

func TestIsFile(t *testing.T) {
	tmpDir := t.TempDir()
	dir := filepath.Join(tmpDir, "conf")
	file := filepath.Join(dir, "metadata-env.sh")
	assert.Nil(t, os.MkdirAll(dir, 0755))
	assert.Nil(t, os.WriteFile(file, []byte("export JAVA_HOME=/usr\n"), 0644))
	assert.True(t, IsFile(file))
	assert.False(t, IsFile(dir))
	assert.False(t, IsFile(filepath.Join(dir, "missing")))
}
