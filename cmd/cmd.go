package cmd

import (
	logger "github.com/PolarWolf314/slugsweep/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger
)

// addLoggingFlags registers --verbose and --debug on c and builds Logger
// from them before c runs.
func addLoggingFlags(c *cobra.Command) {
	c.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	c.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	c.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
		Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
	}
}

// Commands returns every top-level command for registration on the root.
func Commands() []*cobra.Command {
	return []*cobra.Command{RenameCmd, NameCmd, TreeCmd, ConfigCmd, HistoryCmd}
}

// ResetGlobalState resets all global variables and flag values to their
// defaults for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	Logger = logger.Logger{}
	for _, c := range Commands() {
		resetCobraFlagState(c)
	}
}

// resetCobraFlagState restores every flag of c and its subcommands so that
// one test's arguments do not leak into the next.
func resetCobraFlagState(c *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		flag.Changed = false
		if slice, ok := flag.Value.(pflag.SliceValue); ok {
			_ = slice.Replace(nil)
			return
		}
		_ = flag.Value.Set(flag.DefValue)
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetCobraFlagState(sub)
	}
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
