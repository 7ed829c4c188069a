package main

import (
	"os"

	"github.com/comereal/gamejamtoolkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
