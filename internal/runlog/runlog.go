// Package runlog is a thin wrapper over log/slog giving both binaries a
// single leveled logger for the ambient "one line per major phase" run
// log (load, Algorithm S/EE iteration boundaries, sampler acceptance-rate
// warnings, simulator sample emission). A third-party structured logger
// was considered and rejected: this is a short-lived batch process, not
// a long-running service, so slog's stdlib leveled handler already
// covers everything a request-scoped, trace-correlating logger would add
// for no benefit here.
package runlog

import (
	"io"
	"log/slog"
	"os"
)

// Level mirrors the -v/-q verbosity flags both binaries accept.
type Level int

const (
	Quiet Level = iota
	Normal
	Verbose
)

// New builds a text-handler slog.Logger writing to w at the level
// implied by lvl: Quiet logs warnings and errors only, Normal adds info,
// Verbose adds debug.
func New(w io.Writer, lvl Level) *slog.Logger {
	var slvl slog.Level
	switch lvl {
	case Quiet:
		slvl = slog.LevelWarn
	case Verbose:
		slvl = slog.LevelDebug
	default:
		slvl = slog.LevelInfo
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slvl})
	return slog.New(h)
}

// Default returns a Normal-level logger writing to stderr.
func Default() *slog.Logger {
	return New(os.Stderr, Normal)
}
