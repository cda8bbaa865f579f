package cmd

import (
	"github.com/spf13/cobra"
)

var configPath string

func init() {
	ConfigCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is the user config directory)")
	addLoggingFlags(ConfigCmd)

	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
}

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage slugsweep configuration",
	Long: `Provides commands for managing the user configuration file.

The config file holds the defaults of the rename command: excluded
directory names and globs, the mapping file name, how many renames to
list, and whether applied sweeps are recorded in the audit log.

Examples:
  # Write a config file with the built-in defaults
  slugsweep config init

  # Show the effective configuration
  slugsweep config show`,
}
