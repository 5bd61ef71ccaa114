// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.
// get or find METADATA_HOME_DIR

package metadata

import (
	"os"
	"path/filepath"

	"github.com/alexwang789/atlas/internal/admin/envvars"
	"github.com/alexwang789/atlas/internal/admin/trace"
)

// FindHome returns $METADATA_HOME_DIR if set, otherwise the parent of
// the directory holding the running executable (normally <home>/bin).
func FindHome() string {
	if ev := os.Getenv(envvars.METADATA_HOME_DIR); ev != "" {
		return ev
	}
	exe, err := os.Executable()
	if err != nil {
		trace.Warning("cannot locate executable:", err)
		exe = os.Args[0]
	}
	return homeFromExecutable(exe)
}

func homeFromExecutable(exe string) string {
	if abs, err := filepath.Abs(exe); err == nil {
		exe = abs
	}
	if real, err := filepath.EvalSymlinks(exe); err == nil {
		exe = real
	}
	home := filepath.Dir(filepath.Dir(exe))
	trace.Debug("findHome", exe, "=>", home)
	return home
}
