package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	configfile "github.com/brieflabs/briefgen/internal/adapters/driven/config/file"
	"github.com/brieflabs/briefgen/internal/adapters/driving/cli"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	// Optional .env for API keys; a missing file is fine.
	_ = godotenv.Load()

	store, err := configfile.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "briefgen: load config: %v\n", err)
		os.Exit(1)
	}

	if err := cli.Execute(version, store); err != nil {
		os.Exit(1)
	}
}
