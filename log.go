package jws

import (
	"context"
	"log/slog"
)

var discardLogger = slog.New(slog.DiscardHandler)

// Records carry the error kind only. Keys, tokens, signatures and claim
// values are never logged.

func reasonAttr(err error) slog.Attr {
	return slog.String("reason", reason(err))
}

func algAttr(alg string) slog.Attr {
	return slog.String("alg", alg)
}

func logAttrs(logger *slog.Logger, msg string, attrs ...slog.Attr) {
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	logger.LogAttrs(context.Background(), slog.LevelDebug, msg, slog.Group("jws", attrsToAny(attrs)...))
}

func attrsToAny(attrs []slog.Attr) []any {
	out := make([]any, len(attrs))
	for i, a := range attrs {
		out[i] = a
	}
	return out
}
