// Package cli implements the sonard command tree.
//
//   - main.go:     Main/MainWithArgs exit-code wrappers used by cmd/sonard.
//   - root.go:     root command, persistent flags, config resolution.
//   - serve.go:    the HTTP service.
//   - query.go:    headless one-shot evaluation against a catalog.
//   - supplier.go: catalog supplier chain from config.
//   - logger.go:   zerolog setup.
package cli

import (
	"fmt"
	"io"
	"os"
)

// Version is stamped at build time with -ldflags "-X sonard/internal/cli.Version=...".
var Version = "dev"

// MainWithArgs runs the command tree and returns a process exit code.
func MainWithArgs(args []string, stdout, stderr io.Writer) int {
	root := buildRootCmd(&Options{}, stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	return 0
}

// Main returns an exit code for use by cmd/sonard.
func Main() int { return MainWithArgs(os.Args[1:], os.Stdout, os.Stderr) }
