package main

import (
	"os"

	"github.com/Koneist/OS/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
