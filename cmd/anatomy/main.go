// Package main provides the anatomy CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/anatomy/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
