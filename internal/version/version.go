// Package version reports build information for fightsongs.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Info contains version information about fightsongs.
type Info struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
	GoVer   string `json:"go_version" yaml:"go_version"`
	OS      string `json:"os" yaml:"os"`
	Arch    string `json:"arch" yaml:"arch"`
}

// NewInfo creates a new Info from the build variables.
// Unset commit and date are filled from the module's VCS stamp when the
// binary was built from a checkout.
func NewInfo(version, commit, date string) *Info {
	info := &Info{
		Version: version,
		Commit:  commit,
		Date:    date,
		GoVer:   runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.fillFromBuild(bi.Settings)
	}
	return info
}

func (i *Info) fillFromBuild(settings []debug.BuildSetting) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if isUnset(i.Commit) && s.Value != "" {
				i.Commit = shortRevision(s.Value)
			}
		case "vcs.time":
			if isUnset(i.Date) && s.Value != "" {
				i.Date = s.Value
			}
		}
	}
}

func isUnset(s string) bool {
	return s == "" || s == "none" || s == "unknown"
}

func shortRevision(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// String returns a formatted version string.
func (i *Info) String() string {
	return fmt.Sprintf("fightsongs %s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}

// FullString returns a detailed version string.
func (i *Info) FullString() string {
	return fmt.Sprintf(`fightsongs %s
  Commit:   %s
  Built:    %s
  Go:       %s
  OS/Arch:  %s/%s`, i.Version, i.Commit, i.Date, i.GoVer, i.OS, i.Arch)
}
