package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/ryanjeffares/compdb-vs/internal/cli"
)

var version = "1.0.0"

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
