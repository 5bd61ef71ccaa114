// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

//go:build windows

package prog

import (
	"fmt"
)

func (spec *Spec) Exec() error {
	return fmt.Errorf("cannot replace the current process on windows, start '%s' instead", spec.Program)
}
