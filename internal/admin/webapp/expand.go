// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

// unpacking of the metadata web application archive
package webapp

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alexwang789/atlas/internal/admin/defaults"
	"github.com/alexwang789/atlas/internal/admin/trace"
	"github.com/alexwang789/atlas/internal/ioutil"
)

// Extractor unpacks archive into targetDir.
type Extractor interface {
	Extract(archive, targetDir string) error
}

type Expander struct {
	// WebAppDir holds the expanded application in its "metadata" subdirectory.
	WebAppDir string
	Archive   string
	Extractor Extractor
}

// NewExpander expands layout.WarFile() below layout.WebApp.
func NewExpander(layout defaults.Layout, extractor Extractor) *Expander {
	return &Expander{
		WebAppDir: layout.WebApp,
		Archive:   layout.WarFile(),
		Extractor: extractor,
	}
}

func (e *Expander) TargetDir() string {
	return filepath.Join(e.WebAppDir, defaults.EXPANDED_WEBAPP)
}

// IsExpanded checks for <target>/WEB-INF.
func (e *Expander) IsExpanded() bool {
	return ioutil.Exists(filepath.Join(e.TargetDir(), "WEB-INF"))
}

// Expand unpacks the archive unless that was done before, and reports
// whether anything was extracted. Only the target directory itself is
// created; WebAppDir must exist.
func (e *Expander) Expand() (bool, error) {
	target := e.TargetDir()
	if e.IsExpanded() {
		trace.Debug("web application already expanded in", target)
		return false, nil
	}
	if err := os.Mkdir(target, 0755); err != nil && !errors.Is(err, fs.ErrExist) {
		return false, err
	}
	trace.Info("Expanding web application", e.Archive, "into", target)
	if err := e.Extractor.Extract(e.Archive, target); err != nil {
		return false, fmt.Errorf("cannot expand %s: %w", e.Archive, err)
	}
	return true, nil
}
