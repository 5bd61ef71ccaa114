// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

package server

import (
	"fmt"
	"os"

	"github.com/alexwang789/atlas/config"
	"github.com/alexwang789/atlas/internal/admin/defaults"
	"github.com/alexwang789/atlas/internal/admin/trace"
	"github.com/alexwang789/atlas/internal/build"
	"github.com/alexwang789/atlas/internal/metadata"
	"github.com/alexwang789/atlas/internal/osutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func traceFlags(cmd *cobra.Command) {
	cmd.Flags().Visit(func(f *pflag.Flag) {
		trace.Debug("flag", f.Name, "=", f.Value.String())
	})
}

func NewStartCmd() *cobra.Command {
	var (
		so        StartOptions
		verbosity int
	)
	cmd := &cobra.Command{
		Use:   "metadata-start [flags] [-- server-arguments]",
		Short: "start the metadata server",
		Long: `metadata-start expands the metadata web application if needed
and starts the metadata server JVM in the background, writing its
process id to <log dir>/metadata.pid.`,
		Version:       build.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			trace.AdjustVerbosity(verbosity)
			traceFlags(cmd)
			so.ServerArgs = args
			return RunStart(so)
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVarP(&so.Foreground, "foreground", "f", false, "replace this process with the server instead of starting it in the background")
	cmd.Flags().StringVar(&so.Extractor, "extractor", "", "how to expand metadata.war: jar or native (default from config, else jar)")
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "more output, repeat for even more")
	return cmd
}

func NewStopCmd() *cobra.Command {
	so := StopOptions{Stdout: os.Stdout}
	var verbosity int
	cmd := &cobra.Command{
		Use:           "metadata-stop",
		Short:         "stop the metadata server started by metadata-start",
		Version:       build.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			trace.AdjustVerbosity(verbosity)
			traceFlags(cmd)
			return RunStop(so)
		},
	}
	cmd.Flags().DurationVarP(&so.Timeout, "timeout", "t", DEFAULT_STOP_TIMEOUT, "how long to wait for the server to exit")
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "more output, repeat for even more")
	return cmd
}

func NewPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "metadata-paths",
		Short:         "show the directories the metadata server will use",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := resolveLayout(false)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(layout)
			if err != nil {
				return err
			}
			printLayout(cmd, layout, pidFileFor(layout, cfg))
			printConfig(cmd, cfg)
			return nil
		},
	}
}

func printLayout(cmd *cobra.Command, layout defaults.Layout, pidFile string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "home\t%s\n", layout.Home)
	fmt.Fprintf(out, "lib\t%s\n", layout.Lib)
	fmt.Fprintf(out, "conf\t%s\n", layout.Conf)
	fmt.Fprintf(out, "log\t%s\n", layout.Log)
	fmt.Fprintf(out, "data\t%s\n", layout.Data)
	fmt.Fprintf(out, "webapp\t%s\n", layout.WebApp)
	fmt.Fprintf(out, "war\t%s\n", layout.WarFile())
	fmt.Fprintf(out, "pidfile\t%s\n", pidFile)
}

// settings from metadata-launcher.yaml, if any
func printConfig(cmd *cobra.Command, cfg *config.Config) {
	for _, k := range cfg.Keys() {
		v, _ := cfg.Get(k)
		fmt.Fprintf(cmd.OutOrStdout(), "config.%s\t%s\n", k, v)
	}
}

func NewWhichCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "metadata-which program",
		Short:         "find an executable the way the launcher does",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			found := osutil.Which(args[0])
			if found == "" {
				return fmt.Errorf("%s: not found", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), found)
			return nil
		},
	}
}

func NewExportEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "export-env",
		Short:         "print variables from metadata-env.sh as sh statements",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// stdout is meant for eval, keep everything else off it
			trace.Silent()
			defer trace.SetOutput(trace.SetOutput(cmd.ErrOrStderr()))
			home := metadata.FindHome()
			return metadata.ExportEnvScriptToSh(defaults.ConfDir(home), cmd.OutOrStdout())
		},
	}
}
