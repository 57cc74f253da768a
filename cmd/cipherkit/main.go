package main

import (
	"os"

	"cipherkit/cmd/cipherkit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
