package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/PolarWolf314/slugsweep/internal/audit"
	serrors "github.com/PolarWolf314/slugsweep/internal/errors"
	"github.com/PolarWolf314/slugsweep/internal/report"
	"github.com/PolarWolf314/slugsweep/internal/ui"
	"github.com/PolarWolf314/slugsweep/internal/utils"
	"github.com/spf13/cobra"
)

var (
	historyLimit    int
	historyReverse  bool
	historyRoot     string
	historySince    string
	historyUntil    string
	historyJSON     bool
	historyMappings bool
)

func init() {
	HistoryCmd.Flags().IntVarP(&historyLimit, "number", "n", 0, "limit number of entries shown")
	HistoryCmd.Flags().BoolVar(&historyReverse, "reverse", false, "show most recent entries first")
	HistoryCmd.Flags().StringVar(&historyRoot, "root", "", "only show sweeps of this directory")
	HistoryCmd.Flags().StringVar(&historySince, "since", "", "show entries after date (YYYY-MM-DD)")
	HistoryCmd.Flags().StringVar(&historyUntil, "until", "", "show entries before date (YYYY-MM-DD)")
	HistoryCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON array")
	HistoryCmd.Flags().BoolVar(&historyMappings, "mappings", false, "list the renames recorded in each sweep's mapping file")
	addLoggingFlags(HistoryCmd)
}

var HistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "View the log of applied sweeps",
	Long: `Displays every applied rename sweep: when it ran, which directory it swept,
how many entries were renamed or failed, and where the mapping was written.

Examples:
  slugsweep history                     # Full log
  slugsweep history -n 10 --reverse     # Ten most recent, newest first
  slugsweep history --root ~/notes      # Sweeps of one directory
  slugsweep history --since 2024-01-01  # Filter by date
  slugsweep history --mappings          # Include each sweep's renames
  slugsweep history --json              # JSON output`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting history command")

	opts := audit.QueryOptions{
		Limit:   historyLimit,
		Reverse: historyReverse,
		Since:   historySince,
		Until:   historyUntil,
	}
	if historyRoot != "" {
		root, err := utils.ResolveRoot(historyRoot)
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to resolve root: %v", err)
		}
		opts.Root = root
	}

	result, err := audit.Query(opts)
	if err != nil {
		fmt.Println(formatHistoryError(err))
		if isHistoryUnexpectedError(err) {
			return err
		}
		return nil
	}

	Logger.Debugf("Parsed %d entries from audit log", result.TotalEntriesBeforeFilter)
	Logger.Debugf("After filtering: %d entries", len(result.Entries))

	if len(result.Entries) == 0 {
		if result.TotalEntriesBeforeFilter == 0 {
			fmt.Println("No sweeps recorded yet.")
		} else {
			fmt.Println("No sweeps found matching the filters.")
		}
		return nil
	}

	if historyJSON {
		data, err := json.MarshalIndent(result.Entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal entries to JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	for _, e := range result.Entries {
		fmt.Printf("%-19s  %-10s  %s  %s\n", e.FormatDateTime(), e.User, ui.Path.Sprint(e.Root), historyDetails(e))
		if historyMappings && e.MappingFile != "" {
			printMapping(e.MappingFile)
		}
	}
	return nil
}

// printMapping lists the renames of one mapping file, indented under its
// history entry. Mapping files may have been moved or deleted since.
func printMapping(path string) {
	records, err := report.ReadMapping(path)
	if err != nil {
		Logger.Debugf("Reading %s: %v", path, err)
		fmt.Println("    " + ui.Muted.Sprint("mapping unavailable"))
		return
	}
	for _, r := range records {
		fmt.Println("    " + ui.RenamePair(r.Old, r.New))
	}
}

func historyDetails(e audit.Entry) string {
	details := fmt.Sprintf("%d renamed, %d errors", e.RenamedCount, e.ErrorCount)
	if e.MappingFile != "" {
		details += ", mapping " + e.MappingFile
	}
	return details
}

// formatHistoryError formats a history error for display to the user.
func formatHistoryError(err error) string {
	switch {
	case errors.Is(err, serrors.ErrNoAuditLog):
		return ui.Info.Sprint("ℹ") + " No sweeps recorded yet. Applied sweeps are logged to " + ui.Path.Sprint(audit.LogPath())

	case errors.Is(err, serrors.ErrInvalidDateFormat):
		return ui.Error.Sprint("✗") + " " + err.Error()

	default:
		return ui.Error.Sprint("✗") + " Failed to read audit log: " + err.Error()
	}
}

// isHistoryUnexpectedError returns true if the error should cause a non-zero exit.
func isHistoryUnexpectedError(err error) bool {
	return !errors.Is(err, serrors.ErrNoAuditLog)
}
