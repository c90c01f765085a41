package main

import (
	"os"

	"github.com/ynabtoledger/ynabtoledger/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
