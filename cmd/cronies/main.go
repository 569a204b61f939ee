// Package main implements the cronies CLI, which runs a pipeline of
// transformation steps over a JSON or YAML document.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cronies",
		Short: "Chainable transformations over JSON and YAML documents",
		Long: `cronies applies a pipeline of steps (dedupe, flatten, round, format dates,
merge, ...) to a JSON or YAML document and prints the result.

Settings are read from an optional YAML file (--config) and CRONIES_*
environment variables.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().String("config", "", "path to a YAML config file")
	root.AddCommand(newRunCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the cronies version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "cronies "+version)
		},
	}
}
