package push3

// registerGenericStack loads the uniform stack vocabulary for every
// stack: INTEGER, FLOAT, BOOLEAN, NAME, CODE, and EXEC. EXEC.DUP/POP/etc.
// only manipulate the pending item, the same as any other T.DUP/T.POP; they
// don't execute it, so there is nothing about EXEC's auto-dispatch for them
// to bypass.
func registerGenericStack(is *InstructionSet, cfg Configuration) {
	for _, k := range []Kind{KindInt, KindFloat, KindBool, KindName, KindList} {
		k := k
		registerStackFamily(is, k.String()+".", func(st *State) *Stack { return st.StackByKind(k) }, cfg.EnableDup2)
	}
	registerStackFamily(is, "EXEC.", func(st *State) *Stack { return &st.Exec }, cfg.EnableDup2)
}

// registerStackFamily registers the shared DUP/POP/SWAP/ROT/FLUSH/
// STACKDEPTH/YANK/YANKDUP/SHOVE/=/DUP2 vocabulary for one stack, reached
// through the given accessor so the same code serves both the five typed
// data stacks and EXEC.
func registerStackFamily(is *InstructionSet, prefix string, stack func(st *State) *Stack, enableDup2 bool) {
	is.Register(prefix+"DUP", func(st *State, _ *Cache) {
		stack(st).Dup()
	})
	is.Register(prefix+"POP", func(st *State, _ *Cache) {
		stack(st).Pop()
	})
	is.Register(prefix+"SWAP", func(st *State, _ *Cache) {
		stack(st).Swap()
	})
	is.Register(prefix+"ROT", func(st *State, _ *Cache) {
		stack(st).Rot()
	})
	is.Register(prefix+"FLUSH", func(st *State, _ *Cache) {
		stack(st).Flush()
	})
	is.Register(prefix+"STACKDEPTH", func(st *State, _ *Cache) {
		stack(st).StackDepth(&st.Integer)
	})
	is.Register(prefix+"YANK", func(st *State, _ *Cache) {
		yankWithIndex(st, stack, func(s *Stack, i int) { s.Yank(i) })
	})
	is.Register(prefix+"YANKDUP", func(st *State, _ *Cache) {
		yankWithIndex(st, stack, func(s *Stack, i int) { s.YankDup(i) })
	})
	is.Register(prefix+"SHOVE", func(st *State, _ *Cache) {
		yankWithIndex(st, stack, func(s *Stack, i int) { s.Shove(i) })
	})
	is.Register(prefix+"=", func(st *State, _ *Cache) {
		s := stack(st)
		b, ok := s.Peek(0)
		if !ok {
			return
		}
		a, ok := s.Peek(1)
		if !ok {
			return
		}
		s.Pop()
		s.Pop()
		st.Boolean.Push(Bool(a.Equal(b)))
	})

	if enableDup2 {
		is.Register(prefix+"DUP2", func(st *State, _ *Cache) {
			s := stack(st)
			b, ok := s.Peek(0)
			if !ok {
				return
			}
			a, ok := s.Peek(1)
			if !ok {
				return
			}
			s.Push(a)
			s.Push(b)
		})
	}
}

// yankWithIndex implements the shared precondition for YANK/YANKDUP/SHOVE:
// pop an INTEGER index, then apply op to the target stack. If INTEGER is
// empty, the whole instruction no-ops (the index is required input).
func yankWithIndex(st *State, stack func(st *State) *Stack, op func(s *Stack, i int)) {
	idx, ok := st.Integer.Pop()
	if !ok {
		return
	}
	op(stack(st), int(idx.Int))
}
