// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

package prog

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type strVec []string

func (v strVec) contains(w string) bool {
	for _, val := range v {
		if w == val {
			return true
		}
	}
	return false
}

func TestProgSpecEnv(t *testing.T) {
	spec := NewSpec([]string{"/usr/lib/jvm/bin/java"})
	assert.Equal(t, "java", spec.BaseName)
	t.Setenv("FOO", "old foo")
	t.Setenv("BAR", "bar")
	spec.Setenv("FOO", "foo")
	envv := strVec(spec.EffectiveEnv())
	assert.True(t, envv.contains("FOO=foo"))
	assert.True(t, envv.contains("BAR=bar"))
	assert.False(t, envv.contains("FOO=old foo"))
}

func TestStartMissingProgram(t *testing.T) {
	spec := NewSpec([]string{filepath.Join(t.TempDir(), "bin", "java"), "-version"})
	p, err := spec.Start()
	assert.Nil(t, p)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStartInDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh")
	}
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.Nil(t, err)
	cwd, _ := os.Getwd()
	var out bytes.Buffer
	spec := NewSpec([]string{"/bin/sh", "-c", "pwd; echo $MARKER"})
	spec.Dir = dir
	spec.Setenv("MARKER", "from-spec")
	spec.Stdout = &out
	p, err := spec.Start()
	require.Nil(t, err)
	assert.True(t, p.Pid() > 0)
	require.Nil(t, p.Wait())
	assert.Equal(t, []string{dir, "from-spec"}, strings.Fields(out.String()))
	after, _ := os.Getwd()
	assert.Equal(t, cwd, after)
}

func TestWaitReportsExitStatus(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh")
	}
	spec := NewSpec([]string{"/bin/sh", "-c", "exit 3"})
	p, err := spec.Start()
	require.Nil(t, err)
	assert.EqualError(t, p.Wait(), "exit status 3")
}
