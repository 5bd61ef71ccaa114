// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

//go:build !windows

package prog

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexwang789/atlas/internal/admin/trace"
	"github.com/alexwang789/atlas/internal/osutil"
	"golang.org/x/sys/unix"
)

// Exec replaces the current process with the program; it only returns
// on failure.
func (spec *Spec) Exec() error {
	prog := spec.Program
	if !strings.Contains(prog, "/") {
		if found := osutil.Which(prog); found != "" {
			prog = found
		}
	}
	if spec.Dir != "" {
		if err := os.Chdir(spec.Dir); err != nil {
			return err
		}
	}
	trace.Trace("exec:", strings.Join(spec.Args, " "))
	err := unix.Exec(prog, spec.Args, spec.EffectiveEnv())
	return fmt.Errorf("cannot execute '%s': %w", prog, err)
}
