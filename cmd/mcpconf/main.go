package main

import (
	"fmt"
	"os"

	"github.com/mcptools/mcpconf/internal/cli"
	"github.com/mcptools/mcpconf/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.Fail(err.Error()))
		os.Exit(1)
	}
}
