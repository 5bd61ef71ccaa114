// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alexwang789/atlas/internal/admin/trace"
	"github.com/alexwang789/atlas/internal/osutil"
	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

const (
	DEFAULT_STOP_TIMEOUT = 30 * time.Second
	STOPPED_MESSAGE      = "Apache Hadoop Metadata Server stopped!!!"

	pollInterval = 100 * time.Millisecond
)

type StopOptions struct {
	Timeout time.Duration
	// Stdout is where progress is shown; a spinner is used on terminals.
	Stdout io.Writer
}

func RunStop(so StopOptions) error {
	adjustVerbosityFromEnv()
	layout, err := resolveLayout(false)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(layout)
	if err != nil {
		return err
	}
	pidFile := pidFileFor(layout, cfg)
	pid, err := osutil.ReadPidFile(pidFile)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("pid file %s not found, is the server running?", pidFile)
	}
	if err != nil {
		return err
	}
	if !osutil.IsRunning(pid) {
		trace.Warning("process", pid, "from", pidFile, "is not running, removing stale pid file")
		return os.Remove(pidFile)
	}
	trace.Debug("sending SIGTERM to", pid)
	if err := osutil.Terminate(pid); err != nil {
		return fmt.Errorf("cannot stop process %d: %w", pid, err)
	}
	timeout := so.Timeout
	if timeout <= 0 {
		timeout = DEFAULT_STOP_TIMEOUT
	}
	wait := func() error { return waitForExit(pid, timeout) }
	if out := so.Stdout; out != nil && isTerminal(out) {
		err = withSpinner(out, fmt.Sprintf("Waiting for process %d to stop", pid), wait)
	} else {
		err = wait()
	}
	if err != nil {
		return err
	}
	if err := os.Remove(pidFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	trace.Info(STOPPED_MESSAGE)
	return nil
}

func waitForExit(pid int, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for osutil.IsRunning(pid) {
		if time.Now().After(deadline) {
			return fmt.Errorf("process %d still running after %s", pid, timeout)
		}
		time.Sleep(pollInterval)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func withSpinner(w io.Writer, message string, fn func() error) error {
	s := spinner.New(spinner.CharSets[11], pollInterval, spinner.WithWriter(w))
	s.HideCursor = false
	if !strings.HasSuffix(message, " ") {
		message += " "
	}
	s.Prefix = message
	s.FinalMSG = "\r" + message + "done\n"
	s.Start()
	err := fn()
	if err != nil {
		s.FinalMSG = "\r" + message + "failed\n"
	}
	s.Stop()
	return err
}
