package main

import (
	"os"

	"github.com/athanorlabs/go-dlog/cmd/dlog/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
