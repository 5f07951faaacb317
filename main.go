package main

import (
	"os"

	"github.com/aiaware/aiaware/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
