// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

//go:build !windows

package osutil

import (
	"os"

	"golang.org/x/sys/unix"
)

// IsExecutableFile reports whether path is a regular file the current
// user may execute.
func IsExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return unix.Access(path, unix.X_OK) == nil
}
