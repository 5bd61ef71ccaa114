// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

package jvm

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/alexwang789/atlas/internal/admin/envvars"
	"github.com/alexwang789/atlas/internal/admin/prog"
	"github.com/alexwang789/atlas/internal/admin/trace"
	"github.com/alexwang789/atlas/internal/osutil"
)

const (
	JAVA_PROG = "java"
	JAR_PROG  = "jar"
)

// FindJava returns $JAVA_HOME/bin/java, or the first java found in
// $PATH. When neither exists the bare name is returned, so that the
// problem shows up when the process is started.
func FindJava(getenv func(string) string) string {
	return findJdkTool(JAVA_PROG, getenv)
}

// FindJar is FindJava for the jar tool.
func FindJar(getenv func(string) string) string {
	return findJdkTool(JAR_PROG, getenv)
}

func findJdkTool(tool string, getenv func(string) string) string {
	if runtime.GOOS == "windows" {
		tool = tool + ".exe"
	}
	if javaHome := getenv(envvars.JAVA_HOME); javaHome != "" {
		return filepath.Join(javaHome, "bin", tool)
	}
	if found := osutil.WhichIn(tool, getenv(envvars.PATH)); found != "" {
		return found
	}
	trace.Warning("JAVA_HOME not set and no", tool, "in PATH")
	return tool
}

// JavaCommand builds the full command line:
// java, jvmOpts, -classpath, classpath, classname, args.
func JavaCommand(java, classname string, args []string, classpath string, jvmOpts []string) []string {
	argv := make([]string, 0, len(jvmOpts)+len(args)+4)
	argv = append(argv, java)
	argv = append(argv, jvmOpts...)
	argv = append(argv, "-classpath", classpath, classname)
	argv = append(argv, args...)
	return argv
}

// JarCommand builds "jar -xf <path>".
func JarCommand(jar, path string) []string {
	return []string{jar, "-xf", path}
}

// JavaSpec prepares the JVM command line using the current environment.
func JavaSpec(classname string, args []string, classpath string, jvmOpts []string) *prog.Spec {
	argv := JavaCommand(FindJava(os.Getenv), classname, args, classpath, jvmOpts)
	trace.Trace("JVM command:", argv)
	return prog.NewSpec(argv)
}

// Java spawns the JVM without waiting for it.
func Java(classname string, args []string, classpath string, jvmOpts []string) (*prog.Process, error) {
	return JavaSpec(classname, args, classpath, jvmOpts).Start()
}

// Jar spawns "jar -xf path" in dir without waiting for it; the current
// working directory of this process is left alone.
func Jar(path, dir string) (*prog.Process, error) {
	p := prog.NewSpec(JarCommand(FindJar(os.Getenv), path))
	p.Dir = dir
	return p.Start()
}
