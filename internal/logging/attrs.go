package logging

import (
	"context"
	"log/slog"
	"time"
)

// Structured keys shared by the transport and CLI. The console handler lifts
// the request fields into the line header.
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldURL       = "url"
	FieldStatus    = "status"
	FieldElapsed   = "elapsed"
)

// Error wraps err under the "error" key.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// RequestID tags a record with the id sent as X-Request-ID.
func RequestID(id string) slog.Attr {
	return slog.String(FieldRequestID, id)
}

// URL tags a record with a request URL. Tokens are redacted by the handlers.
func URL(raw string) slog.Attr {
	return slog.String(FieldURL, raw)
}

// Status tags a record with an HTTP status code.
func Status(code int) slog.Attr {
	return slog.Int(FieldStatus, code)
}

// Elapsed tags a record with a request duration.
func Elapsed(d time.Duration) slog.Attr {
	return slog.Duration(FieldElapsed, d)
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(discardHandler{})
}

// NewComponentLogger scopes logger to component. A nil logger discards.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(slog.String(FieldComponent, component))
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h discardHandler) WithGroup(string) slog.Handler { return h }
