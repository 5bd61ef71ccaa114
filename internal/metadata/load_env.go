// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.
// import selected variables from <conf>/metadata-env.sh

package metadata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/alexwang789/atlas/internal/admin/defaults"
	"github.com/alexwang789/atlas/internal/admin/envvars"
	"github.com/alexwang789/atlas/internal/admin/trace"
	"github.com/alexwang789/atlas/internal/ioutil"
	"github.com/alexwang789/atlas/internal/osutil"
)

// LoadEnvScript sources <confDir>/metadata-env.sh in a bash subshell
// and copies the allow-listed variables it ends up with into the
// environment of this process. A script exiting with non-zero status
// is not an error; whatever it printed is still used.
func LoadEnvScript(confDir string) error {
	return loadEnvScriptTo(confDir, new(osEnvReceiver))
}

// ExportEnvScriptToSh prints the allow-listed variables from
// metadata-env.sh as statements for "sh".
func ExportEnvScriptToSh(confDir string, w io.Writer) error {
	holder := newShellEnvExporter()
	err := loadEnvScriptTo(confDir, holder)
	holder.dump(w)
	return err
}

type loadEnvReceiver interface {
	setVar(varName, varVal string)
}

type osEnvReceiver struct {
}

func (p *osEnvReceiver) setVar(varName, varVal string) {
	trace.Debug("from env script:", varName, "=", varVal)
	os.Setenv(varName, varVal)
}

func loadEnvScriptTo(confDir string, r loadEnvReceiver) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	script := filepath.Join(confDir, defaults.ENV_SCRIPT)
	if !ioutil.IsFile(script) {
		trace.Debug("no env script:", script)
		return nil
	}
	backticks := osutil.BackTicksForwardStderr
	out, err := backticks.Run("bash", "-c", fmt.Sprintf("source %s && env", shellQuote(script)))
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return fmt.Errorf("cannot run %s: %w", script, err)
		}
		trace.Warning(script, "failed:", err, "- using its output anyway")
	}
	parseEnvOutput(out, r)
	return nil
}

func parseEnvOutput(out string, r loadEnvReceiver) {
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		key, value, _ := strings.Cut(line, "=")
		if envvars.IsEnvScriptKey(key) {
			r.setVar(key, value)
		} else {
			trace.SpamDebug("ignored from env script:", key)
		}
	}
}

type shellEnvExporter struct {
	exportVars map[string]string
}

func newShellEnvExporter() *shellEnvExporter {
	return &shellEnvExporter{
		exportVars: make(map[string]string),
	}
}

func (p *shellEnvExporter) setVar(varName, varVal string) {
	p.exportVars[varName] = shellQuote(varVal)
}

func (p *shellEnvExporter) dump(w io.Writer) {
	names := make([]string, 0, len(p.exportVars))
	for vn := range p.exportVars {
		names = append(names, vn)
	}
	sort.Strings(names)
	for _, vn := range names {
		fmt.Fprintf(w, "%s=%s\n", vn, p.exportVars[vn])
		fmt.Fprintf(w, "export %s\n", vn)
	}
}

// single-quote s unless it only has characters safe for sh
func shellQuote(s string) string {
	safe := s != ""
	for _, ch := range s {
		switch {
		case ch >= 'A' && ch <= 'Z':
		case ch >= 'a' && ch <= 'z':
		case ch >= '0' && ch <= '9':
		case strings.ContainsRune("/._-:+=,@%", ch):
		default:
			safe = false
		}
	}
	if safe {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
