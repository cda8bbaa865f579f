package report

import (
	"fmt"
	"io"

	"github.com/PolarWolf314/slugsweep/internal/ui"
	"github.com/PolarWolf314/slugsweep/internal/workflows"
)

// DefaultPrintLimit caps how many renames the summary lists.
const DefaultPrintLimit = 300

// PrintSummary writes the planned or performed renames and the errors of
// result to w. At most limit pairs are listed; a negative limit lists all.
func PrintSummary(w io.Writer, result *workflows.RenameResult, limit int) {
	fmt.Fprintf(w, "\nPlanned/Renamed: %d items\n", len(result.Mapping))

	shown := result.Mapping
	if limit >= 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	for _, r := range shown {
		fmt.Fprintln(w, ui.RenamePair(r.Old, r.New))
	}
	if hidden := len(result.Mapping) - len(shown); hidden > 0 {
		fmt.Fprintln(w, ui.Muted.Sprintf("%d more not shown", hidden))
	}

	if len(result.Errors) > 0 {
		fmt.Fprintf(w, "\n%s %d\n", ui.Error.Sprint("Errors:"), len(result.Errors))
		for _, f := range result.Errors {
			fmt.Fprintf(w, "%s %s: %v\n", ui.Error.Sprint("ERR"), ui.Path.Sprint(f.Path), f.Err)
		}
	}
}

// PrintOutcome writes the closing status line: where the mapping went
// after an applied sweep, a failure notice when every rename failed, or a
// reminder that nothing was changed.
func PrintOutcome(w io.Writer, result *workflows.RenameResult, mappingPath string) {
	switch {
	case !result.Apply:
		fmt.Fprintf(w, "\n%s Dry-run finished. No changes applied. Re-run with %s to commit changes.\n",
			ui.Warning.Sprint("[dry-run]"), ui.Flag.Sprint("--apply"))
	case mappingPath != "":
		fmt.Fprintf(w, "\n%s Mapping written to %s\n", ui.Success.Sprint("✓"), ui.Path.Sprint(mappingPath))
	case len(result.Errors) > 0:
		fmt.Fprintf(w, "\n%s Nothing was renamed. %d %s failed.\n",
			ui.Error.Sprint("✗"), len(result.Errors), entries(len(result.Errors)))
	default:
		fmt.Fprintf(w, "\n%s Nothing to rename.\n", ui.Success.Sprint("✓"))
	}
}

func entries(n int) string {
	if n == 1 {
		return "entry"
	}
	return "entries"
}
