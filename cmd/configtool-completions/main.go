// Command configtool-completions writes a shell completion script to stdout.
// It runs the root command's completion subcommand so both stay identical.
package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/configtool/internal/cli"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <bash|zsh|fish|powershell>\n", os.Args[0])
		os.Exit(1)
	}

	rootCmd := cli.NewRootCmd()
	rootCmd.SetArgs([]string{"completion", os.Args[1]})
	if err := cli.Execute(rootCmd); err != nil {
		os.Exit(1)
	}
}
