package version

import (
	"runtime"
	"runtime/debug"
)

// Set at build time with -ldflags "-X hint-relay/api/internal/version.BuildVersion=...".
var (
	BuildVersion = "dev"
	GitSHA       = ""
	BuildTime    = ""
)

type Info struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	GitSHA    string `json:"git_sha,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	GoVersion string `json:"go_version"`
}

// Get fills unset build fields from the VCS stamp embedded by the toolchain.
func Get(service string) Info {
	sha, built := GitSHA, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if sha == "" {
					sha = s.Value
				}
			case "vcs.time":
				if built == "" {
					built = s.Value
				}
			}
		}
	}
	return Info{
		Service:   service,
		Version:   BuildVersion,
		GitSHA:    sha,
		BuildTime: built,
		GoVersion: runtime.Version(),
	}
}
