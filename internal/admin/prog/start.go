// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

package prog

import (
	"os/exec"
	"strings"

	"github.com/alexwang789/atlas/internal/admin/trace"
)

// Process is a started child that nobody waits for unless asked to.
type Process struct {
	cmd *exec.Cmd
}

func (p *Process) Pid() int {
	return p.cmd.Process.Pid
}

// Wait blocks until the child exits.
func (p *Process) Wait() error {
	return p.cmd.Wait()
}

// Release lets the child run on after the launcher exits.
func (p *Process) Release() error {
	return p.cmd.Process.Release()
}

func (spec *Spec) command() *exec.Cmd {
	cmd := exec.Command(spec.Program, spec.Args[1:]...)
	cmd.Dir = spec.Dir
	cmd.Env = spec.EffectiveEnv()
	cmd.Stdout = spec.Stdout
	cmd.Stderr = spec.Stderr
	return cmd
}

// Start spawns the program and returns at once. If the executable cannot
// be found or started, the error from the OS is returned unchanged.
func (spec *Spec) Start() (*Process, error) {
	cmd := spec.command()
	trace.Debug("Executing:", strings.Join(spec.Args, " "))
	if spec.Dir != "" {
		trace.Debug("in directory:", spec.Dir)
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &Process{cmd: cmd}, nil
}
