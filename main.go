package main

import (
	"os"

	"github.com/abhisek/bilan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
