package sketchy

import (
	"log/slog"
	"sync/atomic"
)

// logger is the shared logger of sketchy and its sub-packages.
// It is swapped atomically so SetLogger may run while others log.
var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(discardLogger())
}

func discardLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

// SetLogger routes the log output of sketchy and its sub-packages to l.
// Nothing is logged until SetLogger is called; nil restores that silence.
//
// Levels:
//   - [slog.LevelDebug]: one record per generation (targets, lines)
//   - [slog.LevelInfo]: config reloads and exports
//   - [slog.LevelWarn]: recoverable problems, e.g. a primitive from another host
//
// Example:
//
//	sketchy.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger()
	}
	logger.Store(l)
}

// Logger returns the logger set by SetLogger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return logger.Load()
}
