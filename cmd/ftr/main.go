package main

import (
	"fmt"
	"os"

	"ftr/internal/cli/commands"
)

var version = "dev"

func main() {
	rootCmd := commands.NewRootCommand(version)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
