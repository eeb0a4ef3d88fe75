// Command wiitdb looks up and identifies GameCube and Wii discs using the
// GameTDB database.
package main

import (
	"fmt"
	"os"
)

// Build information, set with -ldflags at release time.
var (
	Version   = "dev"
	GitCommit = "none"
	Timestamp = "unknown"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
