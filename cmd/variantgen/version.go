package main

import (
	"fmt"
	"runtime/debug"
)

// version is overridden at release time via -ldflags.
var version = "devel"

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

// Version returns the version string. When installed via
// `go install ...@version` the module version is used; for development
// builds the VCS revision is appended if available.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return version + "+" + s.Value[:7]
		}
	}
	return version
}
