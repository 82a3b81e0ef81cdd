// Package main is the entry point for the lumina CLI.
package main

import (
	"os"

	"github.com/lumina-app/lumina/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
