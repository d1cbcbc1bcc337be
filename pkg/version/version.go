package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Module is the import path reported when build info is unavailable.
const Module = "github.com/garghimanshu0786/think-center-vscode"

var (
	// Version is the semantic version or git describe result.
	Version = "dev"
	// GitCommit is the short git commit hash for this build.
	GitCommit = "unknown"
	// BuildDate is the RFC3339 timestamp when the binary was built.
	BuildDate = "unknown"
)

// Info is the build description printed by thinkcenter version.
type Info struct {
	Module    string
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get collects the linker-set fields and what the binary knows about itself.
// A commit stamped by the go toolchain fills GitCommit when ldflags did not.
func Get() Info {
	info := Info{
		Module:    Module,
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if bi.Main.Path != "" {
		info.Module = bi.Main.Path
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "unknown" && len(s.Value) >= 7 {
				info.GitCommit = s.Value[:7]
			}
		case "vcs.time":
			if info.BuildDate == "unknown" {
				info.BuildDate = s.Value
			}
		}
	}
	return info
}

// String returns a human readable version summary.
func String() string {
	i := Get()
	return fmt.Sprintf("thinkcenter %s (commit %s, built %s)\n%s, %s %s", i.Version, i.GitCommit, i.BuildDate, i.Module, i.GoVersion, i.Platform)
}
