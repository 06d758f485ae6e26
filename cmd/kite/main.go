// Package main is the entry point for the kite editor.
package main

import (
	"fmt"
	"os"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "kite: %v\n", err)
		os.Exit(1)
	}
}
