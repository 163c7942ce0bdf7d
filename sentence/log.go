package sentence

import (
	"context"
	"fmt"
	"log/slog"
)

// LogValue wraps s so that it is only rendered if the record is actually logged
func LogValue(s Sentence) slog.LogValuer {
	return sentenceLogValuer{s}
}

type sentenceLogValuer struct{ s Sentence }

func (l sentenceLogValuer) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("str", l.s.String()),
		slog.String("hash", fmt.Sprintf("%x", l.s.Hash())),
		slog.String("kind", l.s.Kind().String()),
	)
}

// SlogHandler wraps underlying so that Sentence attributes are logged lazily via LogValue
func SlogHandler(underlying slog.Handler) slog.Handler {
	return &sentenceLogHandler{underlying: underlying}
}

type sentenceLogHandler struct {
	underlying slog.Handler
}

func (l *sentenceLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return l.underlying.Enabled(ctx, level)
}

func (l *sentenceLogHandler) Handle(ctx context.Context, record slog.Record) error {
	newRecord := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		newRecord.AddAttrs(wrapAttr(attr))
		return true
	})
	return l.underlying.Handle(ctx, newRecord)
}

func (l *sentenceLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	wrapped := make([]slog.Attr, len(attrs))
	for i, attr := range attrs {
		wrapped[i] = wrapAttr(attr)
	}
	return SlogHandler(l.underlying.WithAttrs(wrapped))
}

func (l *sentenceLogHandler) WithGroup(name string) slog.Handler {
	return SlogHandler(l.underlying.WithGroup(name))
}

func wrapAttr(attr slog.Attr) slog.Attr {
	if attr.Value.Kind() != slog.KindAny {
		return attr
	}
	if s, ok := attr.Value.Any().(Sentence); ok {
		attr.Value = slog.AnyValue(LogValue(s))
	}
	return attr
}
