package main

import (
	"os"

	"sonard/internal/cli"
)

func main() { os.Exit(cli.Main()) }
