// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

//go:build !windows

package osutil

import (
	"errors"

	"golang.org/x/sys/unix"
)

// IsRunning sends signal 0 to pid; EPERM still means the process exists.
func IsRunning(pid int) bool {
	err := unix.Kill(pid, 0)
	return err == nil || errors.Is(err, unix.EPERM)
}

func Terminate(pid int) error {
	return unix.Kill(pid, unix.SIGTERM)
}
