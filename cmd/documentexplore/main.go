package main

import (
	"os"

	"github.com/ambareesh69/documentexplore/internal/adapters/driving/cli"
)

// version is injected at build time:
//
//	go build -ldflags "-X main.version=v1.0.0" ./cmd/documentexplore
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
