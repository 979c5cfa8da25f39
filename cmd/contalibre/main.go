package main

import (
	"os"

	"github.com/contalibre-dev/contalibre/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
