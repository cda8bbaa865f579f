package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/PolarWolf314/slugsweep/internal/audit"
	"github.com/PolarWolf314/slugsweep/internal/configs"
	serrors "github.com/PolarWolf314/slugsweep/internal/errors"
	"github.com/PolarWolf314/slugsweep/internal/report"
	"github.com/PolarWolf314/slugsweep/internal/ui"
	"github.com/PolarWolf314/slugsweep/internal/utils"
	"github.com/PolarWolf314/slugsweep/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	renameRoot              string
	renameApply             bool
	renameMappingFile       string
	renameExclude           []string
	renameExcludeGlobs      []string
	renameNoDefaultExcludes bool
	renameLimit             int
	renameYes               bool
	renameConfigPath        string
)

func init() {
	RenameCmd.Flags().StringVar(&renameRoot, "root", "", "directory to sweep (required)")
	RenameCmd.Flags().BoolVar(&renameApply, "apply", false, "perform the renames; without it the sweep is a dry-run")
	RenameCmd.Flags().StringVar(&renameMappingFile, "mapping-file", report.DefaultMappingFile, "where to write the old/new mapping after an applied sweep")
	RenameCmd.Flags().StringSliceVar(&renameExclude, "exclude", nil, "additional directory names to skip (case-insensitive)")
	RenameCmd.Flags().StringSliceVar(&renameExcludeGlobs, "exclude-glob", nil, "glob of paths relative to the root to skip, e.g. 'docs/**/archive'")
	RenameCmd.Flags().BoolVar(&renameNoDefaultExcludes, "no-default-excludes", false, "do not skip the configured directory names")
	RenameCmd.Flags().IntVar(&renameLimit, "limit", report.DefaultPrintLimit, "maximum renames to list (-1 for all)")
	RenameCmd.Flags().BoolVarP(&renameYes, "yes", "y", false, "do not ask for confirmation before applying")
	RenameCmd.Flags().StringVar(&renameConfigPath, "config", "", "config file (default is the user config directory)")
	_ = RenameCmd.MarkFlagRequired("root")

	addLoggingFlags(RenameCmd)
}

var RenameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Rename every file and directory under a root to slug form",
	Long: `Sweeps a directory tree bottom-up and renames every file and directory to
lowercase, hyphen-separated form. Extensions are kept and lower-cased.

Without --apply nothing is touched: the sweep is simulated and the planned
renames are printed. Clashing names get a numeric suffix (report-1.txt).
Symlinks are never followed or renamed, and directories named in the
exclusion list (node_modules, .git, img, static, assets, build by default)
are skipped entirely.

After an applied sweep the old/new pairs are written to the mapping file.

Examples:
  slugsweep rename --root ./notes                       # Dry-run
  slugsweep rename --root ./notes --apply               # Perform the renames
  slugsweep rename --root . --exclude vendor --apply    # Skip vendor/ too
  slugsweep rename --root . --exclude-glob 'docs/**/raw'`,
	Args: cobra.NoArgs,
	RunE: runRename,
}

func runRename(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting rename command")

	config, err := configs.LoadConfig(renameConfigPath)
	if err != nil {
		fmt.Println(ui.Error.Sprint("✗") + " " + err.Error())
		return err
	}

	root, err := utils.ResolveRoot(renameRoot)
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to resolve root: %v", err)
	}

	opts, limit, mappingFile := renameSettings(cmd, config, root)
	Logger.Debugf("Excluded names: %v", opts.Exclude)
	if len(opts.ExcludeGlobs) > 0 {
		Logger.Infof("Excluding paths matching:%s", utils.FormatPaths(opts.ExcludeGlobs))
	}

	if opts.Apply && !renameYes && utils.IsTerminal() {
		if !confirmAction(fmt.Sprintf("Rename entries under %s?", ui.Path.Sprint(root))) {
			fmt.Println(ui.Warning.Sprint("⚠") + " Aborted. Nothing was renamed.")
			return nil
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := sweep(ctx, opts)
	if result == nil {
		return err
	}
	interrupted := err
	if interrupted != nil {
		Logger.Warnf("Sweep interrupted: %v. Showing what was done so far.", interrupted)
	}

	report.PrintSummary(os.Stdout, result, limit)

	mappingPath := ""
	if result.Apply && len(result.Mapping) > 0 {
		Logger.Debugf("Writing %d records to %s", len(result.Mapping), mappingFile)
		if err := report.WriteMapping(mappingFile, result.Mapping); err != nil {
			return Logger.ErrorfAndReturn("Failed to write mapping file: %v", err)
		}
		mappingPath = mappingFile
	}

	if result.Apply && config.Audit.Enabled {
		entry := audit.NewEntry(audit.OpRename)
		entry.Root = root
		entry.RenamedCount = len(result.Mapping)
		entry.ErrorCount = len(result.Errors)
		if mappingPath != "" {
			if abs, err := filepath.Abs(mappingPath); err == nil {
				entry.MappingFile = abs
			}
		}
		audit.Log(entry)
		Logger.Debugf("Recorded sweep in %s", audit.LogPath())
	}

	report.PrintOutcome(os.Stdout, result, mappingPath)
	return interrupted
}

// renameSettings merges flags over the config file. Flags win when given.
func renameSettings(cmd *cobra.Command, config *configs.Config, root string) (workflows.RenameOptions, int, string) {
	names := config.Rename.Exclude
	if renameNoDefaultExcludes {
		names = nil
	}
	names = append(append([]string{}, names...), renameExclude...)

	globs := append(append([]string{}, config.Rename.ExcludeGlobs...), renameExcludeGlobs...)

	limit := config.Rename.PrintLimit
	if cmd.Flags().Changed("limit") {
		limit = renameLimit
	}

	mappingFile := config.Rename.MappingFile
	if cmd.Flags().Changed("mapping-file") {
		mappingFile = renameMappingFile
	}

	opts := workflows.RenameOptions{
		Root:         root,
		Apply:        renameApply,
		Exclude:      workflows.NewExclusionSet(names...),
		ExcludeGlobs: globs,
		Logger:       Logger,
	}
	return opts, limit, mappingFile
}

// sweep runs the rename workflow behind a spinner. A nil result means the
// sweep never started; the spinner has already shown why.
func sweep(ctx context.Context, opts workflows.RenameOptions) (*workflows.RenameResult, error) {
	message := "Planning renames..."
	if opts.Apply {
		message = "Renaming..."
	}
	spinner, cleanup := startSpinner(message, verbose)
	defer cleanup()

	result, err := workflows.Rename(ctx, opts)
	if result == nil {
		spinner.FinalMSG = formatRenameError(err, opts.Root)
		return nil, err
	}
	return result, err
}

// formatRenameError formats a rename error for display to the user.
func formatRenameError(err error, root string) string {
	switch {
	case errors.Is(err, serrors.ErrRootNotFound):
		return ui.Error.Sprint("✗") + " Root directory " + ui.Path.Sprint(root) + " does not exist"

	case errors.Is(err, serrors.ErrNotADirectory):
		return ui.Error.Sprint("✗") + " " + ui.Path.Sprint(root) + " is not a directory\n" +
			ui.Info.Sprint("→") + " Pass a directory to " + ui.Flag.Sprint("--root")

	default:
		return ui.Error.Sprint("✗") + " Sweep failed: " + err.Error()
	}
}
