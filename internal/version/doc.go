// Package version identifies the optimium-args binary.
//
// Release builds stamp both values at link time:
//
//	go build -ldflags "\
//	    -X github.com/optimium-tools/optimium-args/internal/version.Version=v0.3.0 \
//	    -X github.com/optimium-tools/optimium-args/internal/version.Commit=$(git rev-parse --short HEAD)" \
//	    ./cmd/optimium-args
//
// A plain go build or go install from a checkout has no stamp. Such builds
// are named after the VCS data the toolchain embeds: "dev-YYYYMMDD" from the
// commit date and the short revision, suffixed "-dirty" for uncommitted
// changes. Without VCS data the version is "dev-" plus the start time.
//
// The result is printed by "optimium-args version" and shown in the wizard
// header, so a generated user_arguments file can be traced back to the
// build that wrote it.
package version
