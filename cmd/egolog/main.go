package main

import (
	"os"

	"github.com/rustyeddy/egolog/cmd/egolog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
