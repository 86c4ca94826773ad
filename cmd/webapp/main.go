package main

import (
	"fmt"
	"os"

	"evalgo.org/webapp/internal/commands"
	"evalgo.org/webapp/internal/version"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// @title AWS Scalable Web Application API
// @version 1.0.0
// @description Instance metadata, liveness and status endpoints.
// @BasePath /
func main() {
	version.Version = Version
	version.BuildTime = BuildTime
	version.GitCommit = GitCommit

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
