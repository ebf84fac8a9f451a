// Package logging provides structured logging for algotest, built on Go's
// standard slog package.
//
// All log entries carry a subsystem identifier so output from the discovery
// engine, the execution engine, the report layer and the simulated feed can
// be told apart and filtered:
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Discovery", "planned %d suites", n)
//	logging.Debug("Engine", "running %s.%s", suite, unit)
//	logging.Error("SimFeed", err, "failed to load bar data from %s", path)
//
// Level filtering happens at the handler, so filtered-out messages cost no
// allocations. The package is safe for concurrent use.
package logging
