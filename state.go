package push3

import (
	"sort"

	"pgregory.net/rand"
)

// State aggregates every typed stack, the name-binding table, the
// configuration block, and the random source handle. It is created
// empty, optionally seeded by the caller, then executed; only the engine and
// the instruction handlers it invokes mutate it thereafter.
type State struct {
	Integer Stack
	Float   Stack
	Boolean Stack
	Name    Stack
	Code    Stack
	Exec    Stack

	// Bindings maps a canonical NAME symbol to its bound Value.
	Bindings map[string]Value

	Config Configuration

	// Rand is the random source used by every *.RAND and CODE.RAND handler,
	// and by RandomCode/RandomCodeWithSize/decompose. pgregory.net/rand
	// mirrors math/rand's API but ships a faster, better-distributed PCG
	// generator.
	Rand *rand.Rand

	// quoteNextName implements NAME.QUOTE's one-step flag: the next
	// NameLit the engine resolves is pushed literally onto NAME even if
	// bound.
	quoteNextName bool

	// Diagnostic, if set, is called whenever the engine recovers a panic
	// from a handler and turns it into a no-op.
	Diagnostic func(instruction string, recovered interface{})
}

// Option configures a State at construction time, following this implementation's
// functional-options idiom (see options.go).
type Option interface{ apply(st *State) }

// New constructs an empty State with the given configuration, applying any
// further options (e.g. WithSeed, WithDiagnostic).
func New(cfg Configuration, opts ...Option) *State {
	st := &State{
		Bindings: make(map[string]Value),
		Config:   cfg,
		Rand:     rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(st)
		}
	}
	return st
}

// StackByKind returns the typed stack holding values of kind k, for the
// generic T.* instruction family which is parameterized over the data
// kinds INTEGER/FLOAT/BOOLEAN/NAME/CODE. EXEC has no associated Kind and is
// addressed directly via st.Exec.
func (st *State) StackByKind(k Kind) *Stack {
	switch k {
	case KindInt:
		return &st.Integer
	case KindFloat:
		return &st.Float
	case KindBool:
		return &st.Boolean
	case KindName:
		return &st.Name
	case KindList:
		return &st.Code
	default:
		return nil
	}
}

// Define binds a NAME to a Value, canonicalizing the symbol.
func (st *State) Define(name string, v Value) {
	st.Bindings[CanonicalName(name)] = v
}

// Lookup returns the Value bound to name, if any.
func (st *State) Lookup(name string) (Value, bool) {
	v, ok := st.Bindings[CanonicalName(name)]
	return v, ok
}

// KnownNames returns every bound NAME symbol in sorted order, used by
// CODE.RAND's "previously seen name" atom sampling.
func (st *State) KnownNames() []string {
	names := make([]string, 0, len(st.Bindings))
	for n := range st.Bindings {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
