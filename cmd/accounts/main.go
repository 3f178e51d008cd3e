package main

import (
	"os"

	"github.com/Nayem55/accounts-app/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
