package main

import (
	"os"

	"github.com/govalues/numprec/cmd/numprec/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
