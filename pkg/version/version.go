// Package version reports build information injected through -ldflags.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info holds version information
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns version information. When the binary was installed with
// `go install` the module version from the build info replaces "dev".
func GetInfo() Info {
	v := Version
	if v == "dev" {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			v = bi.Main.Version
		}
	}
	return Info{
		Version:   v,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

func (i Info) String() string {
	return fmt.Sprintf("ost version %s\ncommit: %s\nbuilt: %s\ngo: %s\nplatform: %s",
		i.Version, i.Commit, i.Date, i.GoVersion, i.Platform)
}

// ShortString returns a short version string
func (i Info) ShortString() string {
	return fmt.Sprintf("ost version %s", i.Version)
}
