// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

package build

// Version is set at link time with -ldflags "-X ...build.Version=..."
var Version string = "0.0.0-devel"
