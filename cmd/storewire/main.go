package main

import (
	"os"

	"github.com/elizafairlady/go-storewire/cmd/storewire/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
