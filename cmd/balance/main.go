package main

import (
	"os"

	"github.com/lavatech-dev/balance/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
