// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

// handling of informational output
package trace

import (
	"fmt"
)

// Messages at a level above the current one are dropped. Warnings and
// errors sit below levelNone, so Silent keeps them.
type outputLevel int

const (
	levelError outputLevel = iota - 2
	levelWarning
	levelNone
	levelInfo
	levelTrace
	levelDebug
	levelSpam
)

var currentOutputLevel outputLevel = levelInfo // info shown by default

// AdjustVerbosity raises (or, when negative, lowers) the level by howMuch;
// each -v on the command line is one step.
func AdjustVerbosity(howMuch int) {
	currentOutputLevel = (outputLevel)(howMuch + int(currentOutputLevel))
}

// Silent drops everything except warnings and errors.
func Silent() {
	currentOutputLevel = levelNone
}

func outputTracing(l outputLevel, v ...interface{}) {
	if l > currentOutputLevel {
		return
	}
	msg := fmt.Sprintln(v...)
	logMessage(l, msg)
}

// Info prints without any prefix, for messages meant for the operator.
func Info(v ...interface{}) {
	outputTracing(levelInfo, v...)
}

func Trace(v ...interface{}) {
	outputTracing(levelTrace, v...)
}

func Debug(v ...interface{}) {
	outputTracing(levelDebug, v...)
}

// very chatty, shown at -vvv
func SpamDebug(v ...interface{}) {
	outputTracing(levelSpam, v...)
}

func Warning(v ...interface{}) {
	outputTracing(levelWarning, v...)
}

// Error is always shown, even after Silent()
func Error(v ...interface{}) {
	logMessage(levelError, fmt.Sprintln(v...))
}
