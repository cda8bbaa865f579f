package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/slugsweep/cmd"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "slugsweep",
	Short: "slugsweep - rename files and directories to lowercase, hyphenated slugs.",
	Long: `slugsweep sweeps a directory tree and renames every file and directory to a
canonical slug: lowercase letters, digits and single hyphens, with the
file extension kept and lower-cased.

Sweeps are dry-runs unless --apply is given, clashing names get numeric
suffixes, and an applied sweep writes an old/new mapping you can keep.

Usage:
  slugsweep <command> [flags]

Available Commands:
  rename     Rename a tree to slug form
  name       Print the slug form of names
  tree       Print the folder structure of a directory
  config     Manage the config file
  history    View the log of applied sweeps

Run 'slugsweep help <command>' for more details on a specific command.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		banner := figure.NewColorFigure("slugsweep", "small", "green", true)
		banner.Print()
		fmt.Println()
		fmt.Println("Run 'slugsweep --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.Commands()...)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
