// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

package osutil

import (
	"fmt"

	"github.com/alexwang789/atlas/internal/admin/trace"
)

// ExitError is raised with panic() by ExitErrMsg and turned into an
// exit status by the recover() in main.
type ExitError struct {
	err error
	msg string
}

func (j *ExitError) String() string {
	switch {
	case j.err == nil:
		return j.msg
	case j.msg == "":
		return j.err.Error()
	}
	return fmt.Sprintf("%s: %s", j.msg, j.err.Error())
}

func (j *ExitError) Error() string {
	return j.String()
}

func (j *ExitError) Unwrap() error {
	return j.err
}

// ExitErrMsg exits with an error, prefixed by message
func ExitErrMsg(e error, message string) {
	trace.Trace("just exit with error:", message)
	panic(&ExitError{err: e, msg: message})
}
