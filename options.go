package push3

import "pgregory.net/rand"

// WithSeed seeds the State's random source deterministically.
func WithSeed(seed int64) Option { return seedOption(seed) }

// WithDiagnostic installs a hook called whenever the engine recovers a
// handler panic and reduces it to a no-op.
func WithDiagnostic(fn func(instruction string, recovered interface{})) Option {
	return diagnosticOption(fn)
}

// WithStackLimit installs a soft depth cap on one of the data stacks. Kind must be one
// of KindInt, KindFloat, KindBool, KindName, KindList.
func WithStackLimit(k Kind, limit int) Option { return stackLimitOption{k, limit} }

// WithExecLimit installs a soft depth cap on EXEC.
func WithExecLimit(limit int) Option { return execLimitOption(limit) }

type seedOption int64

func (s seedOption) apply(st *State) { st.Rand = rand.New(rand.NewSource(int64(s))) }

type diagnosticOption func(instruction string, recovered interface{})

func (d diagnosticOption) apply(st *State) { st.Diagnostic = d }

type stackLimitOption struct {
	kind  Kind
	limit int
}

func (o stackLimitOption) apply(st *State) {
	if s := st.StackByKind(o.kind); s != nil {
		s.Limit = o.limit
	}
}

type execLimitOption int

func (o execLimitOption) apply(st *State) { st.Exec.Limit = int(o) }
