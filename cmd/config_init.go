package cmd

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/slugsweep/internal/configs"
	serrors "github.com/PolarWolf314/slugsweep/internal/errors"
	"github.com/PolarWolf314/slugsweep/internal/ui"
	"github.com/spf13/cobra"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Long: `Writes the built-in defaults to the config file so they can be edited.

Refuses to overwrite an existing file unless --force is given.

Examples:
  slugsweep config init
  slugsweep config init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")

		path := configPath
		if path == "" {
			path = configs.DefaultConfigPath()
		}
		Logger.Debugf("Config path: %s", path)

		if _, err := os.Stat(path); err == nil && !configInitForce {
			fmt.Println(ui.Error.Sprint("✗") + " Config file already exists at " + ui.Path.Sprint(path) + "\n" +
				ui.Info.Sprint("→") + " Use " + ui.Flag.Sprint("--force") + " to overwrite it")
			return fmt.Errorf("%s: %w", path, serrors.ErrConfigExists)
		}

		if err := configs.SaveConfig(path, configs.DefaultConfig()); err != nil {
			return Logger.ErrorfAndReturn("Failed to write config: %v", err)
		}

		fmt.Println(ui.Success.Sprint("✓") + " Config written to " + ui.Path.Sprint(path))
		return nil
	},
}
