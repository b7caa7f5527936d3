package loopview

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by loopview and its host packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// The logger is forwarded to gg as well, so canvas diagnostics (accelerator
// selection, CPU fallback) end up in the same sink.
//
// Log levels used by loopview:
//   - [slog.LevelDebug]: attribute fallbacks, gradient rebuilds, measure results
//   - [slog.LevelWarn]: recoverable host errors (failed uploads, dialog errors)
//
// Example:
//
//	loopview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
		loggerPtr.Store(l)
		gg.SetLogger(nil)
		return
	}
	loggerPtr.Store(l)
	gg.SetLogger(l.With("component", "gg"))
}

// Logger returns the current logger. Host packages call this to share the
// configuration without keeping their own copy.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
