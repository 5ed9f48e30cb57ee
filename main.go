package main

import (
	"os"

	"github.com/instancekit/instancekit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
