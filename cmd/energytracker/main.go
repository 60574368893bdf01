package main

import (
	"os"

	"github.com/jgoulah/energytracker/internal/logging"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}
