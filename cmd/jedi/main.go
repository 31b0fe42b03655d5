package main

import (
	"os"

	"jediarchives/cmd/jedi/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
