package cmd

import (
	"fmt"

	"github.com/PolarWolf314/slugsweep/internal/slug"
	"github.com/PolarWolf314/slugsweep/internal/ui"
	"github.com/PolarWolf314/slugsweep/internal/utils"
	"github.com/spf13/cobra"
)

var nameDir bool

func init() {
	NameCmd.Flags().BoolVar(&nameDir, "dir", false, "treat every name as a directory name (no extension split)")
	addLoggingFlags(NameCmd)
}

var NameCmd = &cobra.Command{
	Use:   "name [TEXT...]",
	Short: "Print the slug form of names",
	Long: `Prints the name each argument would be renamed to, one per line.
Reads names from stdin, one per line, when no arguments are given.

Names that clean to nothing are reported on stderr and skipped.

Examples:
  slugsweep name "My Report (Final).PDF"   # my-report-final.pdf
  slugsweep name --dir "Old_Photos 2019"   # old-photos-2019
  ls | slugsweep name`,
	RunE: runName,
}

func runName(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting name command")

	names := args
	if len(names) == 0 {
		lines, err := utils.ReadStdinLines()
		if err != nil {
			return Logger.ErrorfAndReturn("%v", err)
		}
		names = lines
	}
	Logger.Debugf("Cleaning %d names (dir=%t)", len(names), nameDir)

	for _, name := range names {
		clean, ok := slug.CleanFile(name)
		if nameDir {
			clean, ok = slug.CleanDir(name)
		}
		if !ok {
			Logger.Warnf("%s cleans to an empty name; skipped", ui.Highlight.Sprint(name))
			continue
		}
		fmt.Println(clean)
	}
	return nil
}
