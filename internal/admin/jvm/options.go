// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

package jvm

import (
	"os"
	"strings"

	"github.com/alexwang789/atlas/internal/admin/trace"
)

// Options collects JVM options and classpath entries in order.
type Options struct {
	classPath []string
	jvmArgs   []string
	present   map[string]bool
}

func NewOptions() *Options {
	return &Options{
		classPath: make([]string, 0, 10),
		jvmArgs:   make([]string, 0, 20),
		present:   make(map[string]bool),
	}
}

// AddOption appends arg unless it was added before.
func (opts *Options) AddOption(arg string) {
	if present := opts.present[arg]; present {
		trace.Debug("skip duplicate JVM option:", arg)
		return
	}
	opts.AppendOption(arg)
}

func (opts *Options) AppendOption(arg string) {
	trace.Trace("append JVM option:", arg)
	opts.present[arg] = true
	opts.jvmArgs = append(opts.jvmArgs, arg)
}

// AddJvmArgsFromString splits args on whitespace, like the shell would
// for an unquoted variable.
func (opts *Options) AddJvmArgsFromString(args string) {
	for _, x := range strings.Fields(args) {
		opts.AppendOption(x)
	}
}

func (opts *Options) AddClassPath(entries ...string) {
	for _, x := range entries {
		if x != "" {
			opts.classPath = append(opts.classPath, x)
		}
	}
}

func (opts *Options) ClassPath() string {
	cp := strings.Join(opts.classPath, string(os.PathListSeparator))
	trace.Trace("computed classpath:", cp)
	return cp
}

func (opts *Options) Args() []string {
	return append([]string(nil), opts.jvmArgs...)
}
