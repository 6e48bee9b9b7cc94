package trace

import (
	"log/slog"
	"time"
)

// Wrap returns a callback that logs around each invocation of f.
func Wrap[V, R any](cfg *Config, name string, f func(V) R) func(V) R {
	return func(v V) R {
		span := newSpan(cfg, name)
		span.start(v)
		r := f(v)
		span.done(r)
		return r
	}
}

// WrapMut is [Wrap] for mutating callbacks such as those given to over.OverMut.
// With [Config.LogValues] set, the pointee is dumped before and after f runs.
func WrapMut[V any](cfg *Config, name string, f func(*V)) func(*V) {
	return func(v *V) {
		span := newSpan(cfg, name)
		span.start(*v)
		f(v)
		span.done(*v)
	}
}

type span struct {
	cfg  *Config
	name string
	id   string
	t0   time.Time
}

func newSpan(cfg *Config, name string) *span {
	return &span{
		cfg:  cfg,
		name: name,
		id:   cfg.NewSpanID(),
		t0:   cfg.TimeNow(),
	}
}

func (s *span) start(input any) {
	s.cfg.Logger.Info(
		"overStart",
		slog.String("name", s.name),
		slog.String("spanID", s.id),
		slog.Time("t", s.t0),
	)
	if s.cfg.LogValues {
		s.cfg.Logger.Debug(
			"overInput",
			slog.String("name", s.name),
			slog.String("spanID", s.id),
			slog.Any("value", input),
		)
	}
}

func (s *span) done(output any) {
	if s.cfg.LogValues {
		s.cfg.Logger.Debug(
			"overOutput",
			slog.String("name", s.name),
			slog.String("spanID", s.id),
			slog.Any("value", output),
		)
	}
	t := s.cfg.TimeNow()
	s.cfg.Logger.Info(
		"overDone",
		slog.Duration("elapsed", t.Sub(s.t0)),
		slog.String("name", s.name),
		slog.String("spanID", s.id),
		slog.Time("t0", s.t0),
		slog.Time("t", t),
	)
}
