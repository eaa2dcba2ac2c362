package main

import (
	"os"

	"github.com/mmynk/tripwiser/internal/commands"
	"github.com/mmynk/tripwiser/pkg/logging"
)

func main() {
	logging.Setup()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
