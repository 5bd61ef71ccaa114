// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

package osutil

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alexwang789/atlas/internal/admin/trace"
)

// WritePidFile stores pid in decimal form in fileName, replacing any old
// content. The write is not atomic.
func WritePidFile(fileName string, pid int) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	if _, err = f.WriteString(strconv.Itoa(pid)); err != nil {
		f.Close()
		return err
	}
	trace.Debug("wrote pid", pid, "to", fileName)
	return f.Close()
}

func ReadPidFile(fileName string) (int, error) {
	got, err := os.ReadFile(fileName)
	if err != nil {
		return 0, err
	}
	txt := strings.TrimSpace(string(got))
	pid, err := strconv.Atoi(txt)
	if err != nil || pid < 1 {
		return 0, fmt.Errorf("invalid pid '%s' in file %s", txt, fileName)
	}
	return pid, nil
}
