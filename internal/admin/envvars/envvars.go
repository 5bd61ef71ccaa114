// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

// names of environment variables read by the launcher
package envvars

const (
	JAVA_HOME                    = "JAVA_HOME"
	METADATA_OPTS                = "METADATA_OPTS"
	METADATA_LOG_DIR             = "METADATA_LOG_DIR"
	METADATA_CONF                = "METADATA_CONF"
	METADATACPPATH               = "METADATACPPATH"
	METADATA_DATA_DIR            = "METADATA_DATA_DIR"
	METADATA_HOME_DIR            = "METADATA_HOME_DIR"
	METADATA_EXPANDED_WEBAPP_DIR = "METADATA_EXPANDED_WEBAPP_DIR"

	PATH     = "PATH"
	NO_COLOR = "NO_COLOR"

	TRACE_METADATA_STARTUP = "TRACE_METADATA_STARTUP"
	DEBUG_METADATA_STARTUP = "DEBUG_METADATA_STARTUP"
)

// Variables that may be copied back from metadata-env.sh.
var EnvScriptKeys = []string{
	JAVA_HOME,
	METADATA_OPTS,
	METADATA_LOG_DIR,
	METADATA_CONF,
	METADATACPPATH,
	METADATA_DATA_DIR,
	METADATA_HOME_DIR,
	METADATA_EXPANDED_WEBAPP_DIR,
}

// IsEnvScriptKey reports whether name is in EnvScriptKeys.
func IsEnvScriptKey(name string) bool {
	for _, k := range EnvScriptKeys {
		if k == name {
			return true
		}
	}
	return false
}
