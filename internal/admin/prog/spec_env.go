// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

package prog

import (
	"os"
	"sort"
	"strings"

	"github.com/alexwang789/atlas/internal/admin/trace"
)

func (p *Spec) Setenv(k, v string) {
	p.Env[k] = v
}

// EffectiveEnv is os.Environ() with the entries of Env replacing or
// added to it, sorted by name.
func (spec *Spec) EffectiveEnv() []string {
	envMap := make(map[string]string)
	for _, entry := range os.Environ() {
		k, _, found := strings.Cut(entry, "=")
		if !found {
			trace.Trace("invalid entry in os.Environ():", entry)
		}
		envMap[k] = entry
	}
	for k, v := range spec.Env {
		trace.Trace("add to environment:", k, "=", v)
		envMap[k] = k + "=" + v
	}
	envVec := make([]string, 0, len(envMap))
	for _, val := range envMap {
		envVec = append(envVec, val)
	}
	sort.Strings(envVec)
	return envVec
}
