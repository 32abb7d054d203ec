// Package logging configures the single process-wide logger.
//
// Two entry points set it up, both replacing any earlier configuration:
//
//   - EnableFileAndConsoleLogging writes to the console and to a fresh
//     <storage root>/log/log_<YYYYMMDD_HHMMSS>.log file, on hosts whose
//     Capabilities allow file logging. Elsewhere it does nothing.
//   - EnableConsoleOnlyLogging writes to the console only and never touches
//     the filesystem.
//
// Both capture every level from DEBUG up and render lines as
//
//	[LEVEL] 2006-01-02 15:04:05 message key=value ...
//
// GetLogger returns the shared handle. Until one of the entry points has
// succeeded it discards everything.
//
// Components that log should be handed a Logger (or a *Service built at
// startup) rather than reach for GetLogger themselves:
//
//	svc := &logging.Service{ConfigService: cfg}
//	if err := svc.EnableFileAndConsole(); err != nil { return err }
//	defer svc.Close()
//	logging.SetDefault(svc)
//
//	svc.InfoWith().Str("tool", "sleep").Msg("invoked")
//
// Initialization is expected to happen once, before other goroutines start
// logging. Reconfiguration is memory-safe but not ordered with respect to
// events already in flight.
package logging
