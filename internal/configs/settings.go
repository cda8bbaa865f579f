package configs

import (
	"log"
	"os"
	"path/filepath"
)

type UserSettings struct {
	UserConfigsPath string
	UserDataPath    string
}

var UserSlugsweepSettings *UserSettings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(homeDir, ".config")
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	UserSlugsweepSettings = &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "slugsweep"),
		UserDataPath:    filepath.Join(dataDir, "slugsweep"),
	}
}

// DefaultConfigPath returns where the user config file lives.
func DefaultConfigPath() string {
	return filepath.Join(UserSlugsweepSettings.UserConfigsPath, "config.toml")
}
