package main

import (
	"fmt"
	"os"

	"vidsum/cmd/vidsum/cmd"
	"vidsum/internal/config"
)

func main() {
	// Load .env if present; commands pick up keys from the environment
	// as a fallback for the CLI path.
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration warning: %v\n", err)
	}

	cmd.Execute()
}
