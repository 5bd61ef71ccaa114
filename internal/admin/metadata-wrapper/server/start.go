// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

package server

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexwang789/atlas/config"
	"github.com/alexwang789/atlas/internal/admin/defaults"
	"github.com/alexwang789/atlas/internal/admin/envvars"
	"github.com/alexwang789/atlas/internal/admin/jvm"
	"github.com/alexwang789/atlas/internal/admin/prog"
	"github.com/alexwang789/atlas/internal/admin/trace"
	"github.com/alexwang789/atlas/internal/admin/webapp"
	"github.com/alexwang789/atlas/internal/ioutil"
	"github.com/alexwang789/atlas/internal/osutil"
)

const (
	MAIN_CLASS       = "org.apache.hadoop.metadata.Main"
	DEFAULT_JVM_OPTS = "-Xmx1024m -Dlog4j.configuration=application.properties"
	LOG_FILE         = "application.log"
	STARTED_MESSAGE  = "Apache Hadoop Metadata Server started!!!"
)

type StartOptions struct {
	Foreground bool
	Extractor  string
	ServerArgs []string
}

// Launch is a fully prepared server start.
type Launch struct {
	Layout  defaults.Layout
	PidFile string
	Spec    *prog.Spec
}

func jvmOptions(layout defaults.Layout, cfg *config.Config) *jvm.Options {
	opts := jvm.NewOptions()
	opts.AddOption("-Dmetadata.log.dir=" + layout.Log)
	opts.AddOption("-Dmetadata.log.file=" + LOG_FILE)
	opts.AddOption("-Dmetadata.home=" + layout.Home)
	opts.AddOption("-Dmetadata.conf=" + layout.Conf)
	userOpts, found := os.LookupEnv(envvars.METADATA_OPTS)
	if !found {
		userOpts = cfg.GetOr(config.JVM_OPTS, DEFAULT_JVM_OPTS)
	}
	opts.AddJvmArgsFromString(userOpts)
	return opts
}

func classPath(layout defaults.Layout, opts *jvm.Options) string {
	webInf := filepath.Join(layout.ExpandedWebAppDir(), "WEB-INF")
	opts.AddClassPath(
		layout.Conf,
		filepath.Join(webInf, "classes"),
		filepath.Join(webInf, "lib", "*"),
		filepath.Join(layout.Home, "libext", "*"),
		os.Getenv(envvars.METADATACPPATH))
	return opts.ClassPath()
}

// Prepare resolves directories, expands the web application and builds
// the JVM command line, without starting anything.
func Prepare(so StartOptions) (*Launch, error) {
	layout, err := resolveLayout(true)
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig(layout)
	if err != nil {
		return nil, err
	}
	opts := jvmOptions(layout, cfg)
	extractorName := so.Extractor
	if extractorName == "" {
		extractorName = cfg.GetOr(config.WEBAPP_EXTRACTOR, webapp.EXTRACT_WITH_JAR)
	}
	extractor, err := webapp.NewExtractor(extractorName)
	if err != nil {
		return nil, err
	}
	if _, err := webapp.NewExpander(layout, extractor).Expand(); err != nil {
		return nil, err
	}
	cp := classPath(layout, opts)
	args := append([]string{"-app", layout.ExpandedWebAppDir()}, so.ServerArgs...)
	mainClass := cfg.GetOr(config.MAIN_CLASS, MAIN_CLASS)
	spec := jvm.JavaSpec(mainClass, args, cp, opts.Args())
	exportLayout(spec, layout)
	return &Launch{
		Layout:  layout,
		PidFile: pidFileFor(layout, cfg),
		Spec:    spec,
	}, nil
}

// exportLayout passes the resolved directories to the server environment.
func exportLayout(spec *prog.Spec, layout defaults.Layout) {
	spec.Setenv(envvars.METADATA_HOME_DIR, layout.Home)
	spec.Setenv(envvars.METADATA_CONF, layout.Conf)
	spec.Setenv(envvars.METADATA_LOG_DIR, layout.Log)
	spec.Setenv(envvars.METADATA_DATA_DIR, layout.Data)
}

// Start spawns the server in the background and records its pid.
func (l *Launch) Start() (int, error) {
	if ioutil.Exists(l.PidFile) {
		return 0, fmt.Errorf("%s already exists, exiting", l.PidFile)
	}
	p, err := l.Spec.Start()
	if err != nil {
		return 0, err
	}
	pid := p.Pid()
	if err := osutil.WritePidFile(l.PidFile, pid); err != nil {
		if relErr := p.Release(); relErr != nil {
			trace.Warning("cannot release process", pid, ":", relErr)
		}
		return pid, fmt.Errorf("server started as pid %d, but cannot record it: %w", pid, err)
	}
	if err := p.Release(); err != nil {
		return pid, fmt.Errorf("cannot release process %d: %w", pid, err)
	}
	return pid, nil
}

// Exec records the pid of this process and turns it into the server.
func (l *Launch) Exec() error {
	if ioutil.Exists(l.PidFile) {
		return fmt.Errorf("%s already exists, exiting", l.PidFile)
	}
	if err := osutil.WritePidFile(l.PidFile, os.Getpid()); err != nil {
		return err
	}
	err := l.Spec.Exec()
	os.Remove(l.PidFile)
	return err
}

func RunStart(so StartOptions) error {
	adjustVerbosityFromEnv()
	l, err := Prepare(so)
	if err != nil {
		return err
	}
	if so.Foreground {
		err = l.Exec()
		osutil.ExitErrMsg(err, "cannot run the metadata server in the foreground")
	}
	pid, err := l.Start()
	if err != nil {
		return err
	}
	trace.Debug("server pid", pid, "written to", l.PidFile)
	trace.Info(STARTED_MESSAGE)
	return nil
}
