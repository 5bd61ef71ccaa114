// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.
// Entrypoint for the metadata server launcher: metadata-start, metadata-stop etc.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexwang789/atlas/internal/admin/metadata-wrapper/server"
	"github.com/alexwang789/atlas/internal/admin/trace"
	"github.com/alexwang789/atlas/internal/osutil"
	"github.com/spf13/cobra"
)

func main() {
	defer handleSimplePanic()
	action := filepath.Base(os.Args[0])
	if action == "metadata-wrapper" && len(os.Args) > 1 {
		action = os.Args[1]
		os.Args = os.Args[1:]
	}
	var cmd *cobra.Command
	switch action {
	case "metadata-start", "start":
		cmd = server.NewStartCmd()
	case "metadata-stop", "stop":
		cmd = server.NewStopCmd()
	case "metadata-paths", "paths":
		cmd = server.NewPathsCmd()
	case "metadata-which", "which":
		cmd = server.NewWhichCmd()
	case "export-env":
		cmd = server.NewExportEnvCmd()
	default:
		fmt.Fprintf(os.Stderr, "unknown action '%s'\n", action)
		fmt.Fprintln(os.Stderr, "actions: metadata-start, metadata-stop, metadata-paths, metadata-which, export-env")
		os.Exit(1)
	}
	cmd.SetArgs(os.Args[1:])
	if err := cmd.Execute(); err != nil {
		trace.Error(err)
		os.Exit(1)
	}
}

func handleSimplePanic() {
	if r := recover(); r != nil {
		if jee, ok := r.(*osutil.ExitError); ok {
			trace.Error(jee)
			os.Exit(1)
		} else {
			panic(r)
		}
	}
}
