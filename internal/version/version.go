package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"
)

// Set with -ldflags -X for release builds.
var (
	Version = ""
	Commit  = ""
)

const shortRevision = 7

func init() {
	info, _ := debug.ReadBuildInfo()
	Version, Commit = resolve(Version, Commit, info, time.Now())
}

// resolve fills whichever of version and commit the linker left empty.
// info may be nil.
func resolve(version, commit string, info *debug.BuildInfo, now time.Time) (string, string) {
	vcs := vcsSettings(info)

	if commit == "" && vcs["vcs.revision"] != "" {
		commit = vcs["vcs.revision"]
		if len(commit) > shortRevision {
			commit = commit[:shortRevision]
		}
		if vcs["vcs.modified"] == "true" {
			commit += "-dirty"
		}
	}
	if commit == "" {
		commit = "unknown"
	}

	if version == "" {
		if t, err := time.Parse(time.RFC3339, vcs["vcs.time"]); err == nil {
			version = "dev-" + t.Format("20060102")
		} else {
			version = "dev-" + now.Format("20060102-150405")
		}
	}
	return version, commit
}

func vcsSettings(info *debug.BuildInfo) map[string]string {
	out := make(map[string]string)
	if info == nil {
		return out
	}
	for _, s := range info.Settings {
		if strings.HasPrefix(s.Key, "vcs.") {
			out[s.Key] = s.Value
		}
	}
	return out
}

// Full returns the version with commit and Go toolchain,
// e.g. "v0.3.0 (commit: abc1234, go1.24.10)".
func Full() string {
	return fmt.Sprintf("%s (commit: %s, %s)", Version, Commit, runtime.Version())
}

// IsDev reports whether the binary was built without a release stamp.
func IsDev() bool {
	return strings.HasPrefix(Version, "dev-")
}
