// Package main is the entry point for the pickline CLI.
package main

import (
	"os"

	"github.com/runger/pickline/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute(os.Args[1:], cmd.DefaultStreams()))
}
