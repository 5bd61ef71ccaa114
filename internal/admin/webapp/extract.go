// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

package webapp

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexwang789/atlas/internal/admin/jvm"
	"github.com/alexwang789/atlas/internal/admin/trace"
	"github.com/klauspost/compress/zip"
)

const (
	EXTRACT_WITH_JAR    = "jar"
	EXTRACT_WITH_NATIVE = "native"
)

// NewExtractor maps a configured name to an Extractor.
func NewExtractor(name string) (Extractor, error) {
	switch name {
	case "", EXTRACT_WITH_JAR:
		return JarTool{}, nil
	case EXTRACT_WITH_NATIVE:
		return Native{}, nil
	}
	return nil, fmt.Errorf("unknown webapp extractor '%s' (expected %s or %s)", name, EXTRACT_WITH_JAR, EXTRACT_WITH_NATIVE)
}

// JarTool runs "jar -xf" from the JDK with targetDir as its working
// directory and waits for it. A relative archive is taken relative to the
// working directory of this process, not targetDir.
type JarTool struct{}

func (JarTool) Extract(archive, targetDir string) error {
	archive, err := filepath.Abs(archive)
	if err != nil {
		return err
	}
	p, err := jvm.Jar(archive, targetDir)
	if err != nil {
		return err
	}
	return p.Wait()
}

// Native unzips in-process, for hosts with only a JRE.
type Native struct{}

func (Native) Extract(archive, targetDir string) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()
	for _, f := range r.File {
		if err := extractEntry(f, targetDir); err != nil {
			return err
		}
	}
	trace.Debug("extracted", len(r.File), "entries from", archive)
	return nil
}

func extractEntry(f *zip.File, targetDir string) error {
	name := filepath.FromSlash(f.Name)
	dest := filepath.Join(targetDir, name)
	rel, err := filepath.Rel(targetDir, dest)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("archive entry '%s' is outside target directory", f.Name)
	}
	if f.FileInfo().IsDir() {
		return os.MkdirAll(dest, 0755)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	src, err := f.Open()
	if err != nil {
		return err
	}
	defer src.Close()
	mode := f.Mode().Perm()
	if mode == 0 {
		mode = 0644
	}
	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return err
	}
	trace.SpamDebug("extracted", dest)
	return out.Close()
}
