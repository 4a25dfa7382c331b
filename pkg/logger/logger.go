// Package logger configures logrus and carries a request-scoped entry
// through context.
package logger

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

type ctxKey struct{}

const RequestIDField = "request_id"

// Init sets the global level and picks the text formatter for local
// development and JSON everywhere else.
func Init(level, environment string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logrus.SetLevel(lvl)

	if environment == "local" {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	return nil
}

// WithRequestID returns a context whose logger is tagged with the request id
func WithRequestID(ctx context.Context, requestID string) context.Context {
	entry := Logger(ctx).WithField(RequestIDField, requestID)
	return context.WithValue(ctx, ctxKey{}, entry)
}

// Logger returns the entry stored in ctx, or a fresh entry on the standard logger.
func Logger(ctx context.Context) *logrus.Entry {
	if ctx != nil {
		if entry, ok := ctx.Value(ctxKey{}).(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
