package push3

// Handler is the signature every instruction implements: a pure function of
// (state, cache) that mutates state. Handlers must be total: for any
// input state they either perform their effect or leave the state
// untouched.
type Handler func(st *State, cache *Cache)

// InstructionSet is an ordered mapping from canonical instruction name to
// Handler. Order of registration is preserved for deterministic
// Cache snapshots and deterministic RANDOM-CODE sampling given a seeded
// random source.
type InstructionSet struct {
	names    []string
	handlers map[string]Handler
}

// NewInstructionSet returns an empty registry.
func NewInstructionSet() *InstructionSet {
	return &InstructionSet{handlers: make(map[string]Handler)}
}

// Register adds or replaces the handler for name. name is canonicalized.
func (is *InstructionSet) Register(name string, h Handler) {
	name = CanonicalName(name)
	if _, exists := is.handlers[name]; !exists {
		is.names = append(is.names, name)
	}
	is.handlers[name] = h
}

// Lookup returns the handler registered for name, if any.
func (is *InstructionSet) Lookup(name string) (Handler, bool) {
	h, ok := is.handlers[CanonicalName(name)]
	return h, ok
}

// Has reports whether name is registered.
func (is *InstructionSet) Has(name string) bool {
	_, ok := is.handlers[CanonicalName(name)]
	return ok
}

// Names returns every registered instruction name, in registration order.
func (is *InstructionSet) Names() []string {
	out := make([]string, len(is.names))
	copy(out, is.names)
	return out
}

// Snapshot freezes the registry's current name set into an immutable Cache,
// so handlers that synthesize code (e.g. CODE.RAND) can sample from it
// without borrowing the live registry.
func (is *InstructionSet) Snapshot() *Cache {
	names := is.Names()
	return &Cache{names: names, handlers: is}
}

// Cache is an immutable snapshot of an InstructionSet's name set, handed to
// handlers instead of the live registry.
type Cache struct {
	names    []string
	handlers *InstructionSet
}

// Names returns the snapshotted instruction names.
func (c *Cache) Names() []string { return c.names }

// Lookup resolves a handler by name against the underlying registry. The
// registry itself is read-only during execution, so this is safe to
// call from within a running engine.
func (c *Cache) Lookup(name string) (Handler, bool) {
	if c.handlers == nil {
		return nil, false
	}
	return c.handlers.Lookup(name)
}

// DefaultInstructionSet builds the full instruction vocabulary.
func DefaultInstructionSet(cfg Configuration) *InstructionSet {
	is := NewInstructionSet()
	registerArithmetic(is)
	registerBoolean(is)
	registerGenericStack(is, cfg)
	registerCode(is)
	registerControlFlow(is)
	registerCombinators(is)
	registerNameBinding(is)
	registerRandom(is)
	return is
}
