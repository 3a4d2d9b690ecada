package main

import (
	"fmt"
	"os"

	"github.com/mph-llm-experiments/alearn/internal/cli"
	"github.com/mph-llm-experiments/alearn/internal/config"
)

var version = "0.1.0"

func main() {
	// Check for version flag early
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-version" {
			fmt.Printf("alearn v%s\n", version)
			os.Exit(0)
		}
	}

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := cli.Run(cfg, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
