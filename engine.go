package push3

import (
	"context"

	"github.com/jcorbin/push3/internal/panicerr"
)

// RunResult reports how a Run terminated.
type RunResult struct {
	Steps            int
	StepLimitReached bool
}

// Run drives the EXEC-consuming loop until EXEC is empty, the configured
// EvalPushLimit is reached, or ctx is done. The same State can be re-entered
// with Run again to resume: all pending work lives on EXEC, so there is no
// hidden program counter.
func Run(ctx context.Context, st *State, cache *Cache, program Value) RunResult {
	if st.Config.TopLevelPushCode {
		st.Code.Push(program)
	}

	st.Exec.Push(program)

	steps := 0
	limit := st.Config.EvalPushLimit
	for st.Exec.Depth() > 0 {
		if limit > 0 && steps >= limit {
			return RunResult{Steps: steps, StepLimitReached: true}
		}
		select {
		case <-ctx.Done():
			return RunResult{Steps: steps, StepLimitReached: true}
		default:
		}

		item, ok := st.Exec.Pop()
		if !ok {
			break
		}
		steps++
		step(st, cache, item)
	}

	if st.Config.TopLevelPopCode {
		st.Code.Pop()
	}

	return RunResult{Steps: steps}
}

// step dispatches a single EXEC item by its Kind. A handler panic is
// recovered and treated as a no-op; st.Diagnostic, if set, is notified.
func step(st *State, cache *Cache, item Value) {
	switch item.Kind {
	case KindList:
		if len(item.List) == 0 {
			return
		}
		st.Exec.PushAll(item.List)

	case KindInt:
		st.Integer.Push(item)
	case KindFloat:
		st.Float.Push(item)
	case KindBool:
		st.Boolean.Push(item)

	case KindInstruction:
		h, ok := cache.Lookup(item.Name)
		if !ok {
			return
		}
		invoke(st, cache, item.Name, h)

	case KindName:
		if st.quoteNextName {
			st.quoteNextName = false
			st.Name.Push(item)
			return
		}
		if bound, ok := st.Lookup(item.Name); ok {
			st.Exec.Push(bound)
			return
		}
		st.Name.Push(item)
	}
}

// invoke runs a handler with panic recovery, so that an implementation bug
// or an unexpected runtime condition degrades to a no-op rather than
// crashing a whole evolutionary run.
func invoke(st *State, cache *Cache, name string, h Handler) {
	defer func() {
		if r := recover(); r != nil {
			if st.Diagnostic != nil {
				st.Diagnostic(name, r)
			}
		}
	}()
	h(st, cache)
}

// RunRecovered wraps Run through internal/panicerr.Recover, guarding
// against a truly unexpected condition unwinding the calling goroutine
// rather than just degrading one handler to a no-op. Host callers that want
// a hard error instead of a silent no-op on catastrophic failure should use
// this entry point.
func RunRecovered(ctx context.Context, st *State, cache *Cache, program Value) (RunResult, error) {
	var result RunResult
	err := panicerr.Recover("push3", func() error {
		result = Run(ctx, st, cache, program)
		return nil
	})
	return result, err
}
