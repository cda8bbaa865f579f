// Package configs manages slugsweep's user configuration and settings.
//
// Configuration is stored in TOML format in the user's config directory:
//
//   - $XDG_CONFIG_HOME/slugsweep/config.toml (os.UserConfigDir)
//
// The file is optional. Missing keys keep their built-in defaults, and
// unknown keys are rejected so typos do not silently fall back:
//
//	[rename]
//	exclude = ["node_modules", ".git", "img", "static", "assets", "build"]
//	exclude_globs = ["docs/**/archive"]
//	mapping_file = "rename-mapping.json"
//	print_limit = 300
//
//	[audit]
//	enabled = true
//
// Command-line flags override the file; the file overrides the defaults.
//
// # Settings
//
// UserSlugsweepSettings is initialized at startup with the config and data
// directories. Tests point it at temporary directories.
package configs
