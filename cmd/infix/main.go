package main

import (
	"os"

	"github.com/mattn/infix/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
