package main

import (
	"os"

	"smarta/cmd/smarta/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
