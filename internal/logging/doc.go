// Package logger provides levelled logging for slugsweep commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is formatted with coloured prefixes from fatih/color.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info messages
//   - --debug: Shows all messages including per-entry decisions
//
// Without flags, only warnings and errors are shown.
//
// # Log Methods
//
//	Logger.Infof()           // Shown with --verbose or --debug
//	Logger.Debugf()          // Shown only with --debug
//	Logger.Warnf()           // Always shown on stderr
//	Logger.Errorf()          // Always shown on stderr
//	Logger.ErrorfAndReturn() // Errorf, then returns the message as an error
//
// # Usage
//
// Create a logger with the desired verbosity:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Processing %d entries", count)
//
// Commands create a logger in their PersistentPreRun and pass it to the
// workflows through their options.
package logger
