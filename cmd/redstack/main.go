// Package main is the entry point for the redstack CLI.
//
// redstack composes the AWS resources of a Redmine deployment (ECS service,
// EFS storage, load balancer) into a dependency-ordered plan. Existing
// networks and load balancers can be reused by reference.
//
// Commands: init, plan, synth, publish.
package main

import (
	"fmt"
	"os"

	"github.com/imamik/redstack/cmd/redstack/commands"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
