package version

import (
	"fmt"
	"runtime"
)

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X main.Version=1.2.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const (
	// ServiceName is the name reported by the liveness probe.
	ServiceName = "aws-scalable-webapp"

	// ServiceVersion is the API version reported by the liveness probe.
	// It is independent of the build version so load balancer checks stay stable.
	ServiceVersion = "1.0.0"
)

type Info struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func Get() Info {
	return Info{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

func (i Info) String() string {
	return fmt.Sprintf("%s %s (%s) built at %s on %s",
		ServiceName,
		i.Version,
		i.GitCommit,
		i.BuildTime,
		i.Platform,
	)
}
