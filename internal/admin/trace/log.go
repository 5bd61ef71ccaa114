// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

package trace

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/alexwang789/atlas/internal/admin/envvars"
	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

var (
	outMu  sync.Mutex
	output io.Writer
)

func init() {
	_, nocolor := os.LookupEnv(envvars.NO_COLOR)
	color.NoColor = nocolor || !isTerminal(os.Stdout)
	output = colorable.NewColorable(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetOutput redirects all messages to w and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	outMu.Lock()
	defer outMu.Unlock()
	old := output
	output = w
	return old
}

func prefixFor(l outputLevel) string {
	switch l {
	case levelError:
		return color.RedString("[ERROR]") + " "
	case levelWarning:
		return color.YellowString("[WARNING]") + " "
	case levelTrace:
		return color.CyanString("[TRACE]") + " "
	case levelDebug, levelSpam:
		return color.New(color.Faint).Sprint("[DEBUG]") + " "
	}
	return ""
}

// info lines are printed as-is, everything else gets a level prefix
func logMessage(l outputLevel, msg string) {
	if !strings.HasSuffix(msg, "\n") {
		msg = msg + "\n"
	}
	outMu.Lock()
	defer outMu.Unlock()
	fmt.Fprint(output, prefixFor(l)+msg)
}
