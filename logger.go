package genart

import (
	"log/slog"
	"sync/atomic"
)

// discardLogger is in effect until SetLogger installs another one.
var discardLogger = slog.New(slog.DiscardHandler)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(discardLogger)
}

// SetLogger routes genart's log records to l. Passing nil restores the
// default, which drops every record. It may be called while artworks are
// rendering.
//
// Records:
//   - Info "artwork generated" (seed, mode, depth) whenever the trees are
//     regrown: New, Reseed, SetSeed, ToggleMode
//   - Info "artwork resized" (width, height) and "GPU device attached"
//   - Debug "channel tree" (channel, nodes, depth, tree), once per channel
//     after each generation
//   - Debug "software render" (width, height, bands, workers) and
//     "artwork shader compiled" (spirv_bytes)
//   - Debug "rendered" (mode, seed, elapsed) after every Render
//
// Example:
//
//	genart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger
	}
	logger.Store(l)
}

// Logger returns the logger genart writes to.
func Logger() *slog.Logger {
	return logger.Load()
}
