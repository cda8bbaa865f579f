package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/PolarWolf314/slugsweep/internal/configs"
	"github.com/PolarWolf314/slugsweep/internal/ui"
	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration",
	Long: `Displays the configuration the rename command would use: the config
file merged over the built-in defaults.

Examples:
  slugsweep config show
  slugsweep config show --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")

		path := configPath
		if path == "" {
			path = configs.DefaultConfigPath()
		}

		config, err := configs.LoadConfig(path)
		if err != nil {
			fmt.Println(ui.Error.Sprint("✗") + " " + err.Error())
			return err
		}

		if configShowJSON {
			data, err := json.MarshalIndent(config, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to encode config: %v", err)
			}
			fmt.Println(string(data))
			return nil
		}

		if _, err := os.Stat(path); err != nil {
			fmt.Println(ui.Muted.Sprint("no config file at " + path + ", showing defaults"))
		} else {
			fmt.Println(ui.Muted.Sprint(path))
		}
		return toml.NewEncoder(os.Stdout).Encode(config)
	},
}
