package main

import (
	"os"

	"github.com/learnzy/learnzy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
