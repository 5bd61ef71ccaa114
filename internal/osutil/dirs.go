// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

package osutil

import (
	"errors"
	"os"

	"github.com/alexwang789/atlas/internal/admin/trace"
)

// DirMustExist creates dirName (one level only) if it is missing.
func DirMustExist(dirName string) (string, error) {
	_, err := os.Stat(dirName)
	if errors.Is(err, os.ErrNotExist) {
		trace.Trace("mkdir:", dirName)
		err = os.Mkdir(dirName, 0755)
	}
	return dirName, err
}
