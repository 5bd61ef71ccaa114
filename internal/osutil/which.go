// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

package osutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alexwang789/atlas/internal/admin/envvars"
	"github.com/alexwang789/atlas/internal/admin/trace"
)

// Which looks for an executable named program. A program containing a
// path separator is only checked as given; otherwise every entry in
// $PATH is tried in order. Returns "" when nothing is found.
func Which(program string) string {
	return WhichIn(program, os.Getenv(envvars.PATH))
}

// WhichIn is like Which, with an explicit search path.
func WhichIn(program, searchPath string) string {
	if dir, _ := filepath.Split(program); dir != "" {
		if IsExecutableFile(program) {
			return program
		}
		return ""
	}
	for _, dir := range filepath.SplitList(searchPath) {
		dir = strings.Trim(dir, `"`)
		fn := filepath.Join(dir, program)
		if IsExecutableFile(fn) {
			trace.SpamDebug("which", program, "=>", fn)
			return fn
		}
	}
	trace.Debug("which", program, "=> not found")
	return ""
}
