// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

package prog

import (
	"io"
	"os"
	"path/filepath"
)

// Spec describes a program to start: argv, working directory and
// environment additions on top of the current process environment.
type Spec struct {
	Program  string
	Args     []string
	BaseName string
	Dir      string
	Env      map[string]string
	Stdout   io.Writer
	Stderr   io.Writer
}

// NewSpec uses argv[0] as the program to run.
func NewSpec(argv []string) *Spec {
	progName := argv[0]
	p := Spec{
		Program:  progName,
		Args:     argv,
		BaseName: filepath.Base(progName),
		Env:      make(map[string]string),
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
	return &p
}
