// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

package osutil

import (
	"bytes"
	"os"
	"os/exec"
	"strings"

	"github.com/alexwang789/atlas/internal/admin/trace"
)

type BackTicks int

const (
	BackTicksForwardStderr BackTicks = iota
)

// Run executes program and waits for it, returning what it wrote to
// stdout. Stderr goes to the stderr of this process.
func (b BackTicks) Run(program string, args ...string) (string, error) {
	cmd := exec.Command(program, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	switch b {
	case BackTicksForwardStderr:
		cmd.Stderr = os.Stderr
	}
	trace.Debug("running command:", program, strings.Join(args, " "))
	err := cmd.Run()
	return out.String(), err
}
