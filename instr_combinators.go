package push3

// registerCombinators loads the K/S/Y combinators that rewrite the EXEC
// stream.
func registerCombinators(is *InstructionSet) {
	// EXEC.K pops two EXEC items, discards the second, re-pushes the first:
	// keeps top, removes next.
	is.Register("EXEC.K", func(st *State, _ *Cache) {
		a, ok := st.Exec.Peek(0)
		if !ok {
			return
		}
		if _, ok := st.Exec.Peek(1); !ok {
			return
		}
		st.Exec.Pop()
		st.Exec.Pop()
		st.Exec.Push(a)
	})

	// EXEC.S pops three items a,b,c and pushes, in order, (b c), then c,
	// then a -- so the next items popped are a, then c, then (b c).
	is.Register("EXEC.S", func(st *State, _ *Cache) {
		if st.Exec.Depth() < 3 {
			return
		}
		a, _ := st.Exec.Pop()
		b, _ := st.Exec.Pop()
		c, _ := st.Exec.Pop()
		st.Exec.Push(CodeList(b, c))
		st.Exec.Push(c)
		st.Exec.Push(a)
	})

	// EXEC.Y pops one item a and re-pushes (EXEC.Y a) followed by a, giving
	// self-application for recursion: the next items popped are a, then
	// (EXEC.Y a).
	is.Register("EXEC.Y", func(st *State, _ *Cache) {
		a, ok := st.Exec.Pop()
		if !ok {
			return
		}
		st.Exec.Push(CodeList(Instr("EXEC.Y"), a))
		st.Exec.Push(a)
	})
}
