package push3

import "context"

// NewDefaultCache is a convenience constructor for the common case: build the
// default instruction set for cfg, optionally extend it, and snapshot it into
// a Cache ready for Parse/Run.
func NewDefaultCache(cfg Configuration, extra ...func(is *InstructionSet)) *Cache {
	is := DefaultInstructionSet(cfg)
	for _, fn := range extra {
		fn(is)
	}
	return is.Snapshot()
}

// Eval is the one-call embedding surface for simple callers: validate cfg,
// build the default cache, parse src, and run it to completion against a
// freshly constructed State. It returns the State for stack inspection, the
// RunResult, and any host-level error (ConfigError or ParseError) from
// before execution started.
func Eval(ctx context.Context, src string, cfg Configuration, opts ...Option) (*State, RunResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, RunResult{}, err
	}
	cache := NewDefaultCache(cfg)
	program, err := Parse(src, cache, cfg)
	if err != nil {
		return nil, RunResult{}, err
	}
	st := New(cfg, opts...)
	result := Run(ctx, st, cache, program)
	return st, result, nil
}
