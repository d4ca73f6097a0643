// Package debug owns the process-wide zap logger used by the command-line
// tool. Library packages never call into it; they accept a *zap.Logger and
// default to a no-op logger.
//
// Until Init is called, Logger returns a no-op logger.
package debug
