package tint

import (
	"log/slog"
	"sync/atomic"
)

// silent discards every record. slog.DiscardHandler reports Enabled false,
// so attribute formatting is skipped on the default path.
var silent = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes tint's diagnostics to l. Passing nil silences them
// again, which is also the default. It may be called at any time from any
// goroutine.
//
// Records emitted:
//   - [slog.LevelDebug] "tint: hex parse failed" and "tint: unknown color name",
//     with the rejected text under "input"
//   - [slog.LevelWarn] "tint: empty gradient requested", with "steps" and "stops"
//
// For example:
//
//	tint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}

// logRejected records input that a parser refused.
func logRejected(msg, input string) {
	Logger().Debug(msg, "input", input)
}

// logEmptyGradient records a gradient request that yields no colors.
func logEmptyGradient(steps, stops int) {
	Logger().Warn("tint: empty gradient requested", "steps", steps, "stops", stops)
}
