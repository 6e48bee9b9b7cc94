// Package trace decorates callbacks passed to the over helpers with structured
// logging.
//
// The over helpers themselves never log. When you want to see what flows
// through a chain, wrap the callback instead:
//
//	cfg := trace.NewConfig()
//	cfg.Logger = slog.Default()
//	n := over.Over(5, trace.Wrap(cfg, "double", func(n int) int { return n * 2 }))
//
// Each wrapped invocation emits an overStart and an overDone record at Info
// level, both carrying the same span ID. The callback result is returned
// unchanged. If the callback panics, overDone is not emitted and the panic
// keeps unwinding.
package trace
