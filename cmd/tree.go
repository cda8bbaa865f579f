package cmd

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/slugsweep/internal/configs"
	"github.com/PolarWolf314/slugsweep/internal/ui"
	"github.com/PolarWolf314/slugsweep/internal/utils"
	"github.com/PolarWolf314/slugsweep/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	treePreview         bool
	treeExcludeDefaults bool
	treeConfigPath      string
)

func init() {
	TreeCmd.Flags().BoolVar(&treePreview, "preview", false, "show the name each entry would be renamed to")
	TreeCmd.Flags().BoolVar(&treeExcludeDefaults, "exclude-defaults", false, "do not descend into the configured excluded directories")
	TreeCmd.Flags().StringVar(&treeConfigPath, "config", "", "config file (default is the user config directory)")
	addLoggingFlags(TreeCmd)
}

var TreeCmd = &cobra.Command{
	Use:   "tree [DIR]",
	Short: "Print the folder structure of a directory",
	Long: `Prints the folder structure under DIR (the current directory by default),
sorted by name.

With --preview every entry a rename sweep would change is followed by its
new name, which makes it a quick visual check before running rename.

Examples:
  slugsweep tree docs
  slugsweep tree docs --preview --exclude-defaults`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTree,
}

func runTree(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting tree command")

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	root, err := utils.ResolveRoot(dir)
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to resolve directory: %v", err)
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		fmt.Println(ui.Error.Sprint("✗") + " " + ui.Path.Sprint(dir) + " is not a directory")
		return fmt.Errorf("%s is not a directory", dir)
	}

	opts := workflows.TreeOptions{Preview: treePreview}
	if treeExcludeDefaults {
		config, err := configs.LoadConfig(treeConfigPath)
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load config: %v", err)
		}
		opts.Exclude = workflows.NewExclusionSet(config.Rename.Exclude...)
		Logger.Debugf("Excluding %v", config.Rename.Exclude)
	}

	fmt.Printf("Folder structure of %s:\n\n", ui.Highlight.Sprint(dir))
	if err := workflows.Tree(os.Stdout, root, opts); err != nil {
		return Logger.ErrorfAndReturn("Failed to print tree: %v", err)
	}
	return nil
}
