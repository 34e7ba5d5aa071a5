package push3

// registerNameBinding loads *.DEFINE and NAME.QUOTE. CODE.DEFINITION
// lives in instr_code.go alongside the rest of the CODE family.
func registerNameBinding(is *InstructionSet) {
	for _, k := range []Kind{KindInt, KindFloat, KindBool, KindName, KindList} {
		k := k
		is.Register(k.String()+".DEFINE", func(st *State, _ *Cache) {
			n, ok := st.Name.Pop()
			if !ok {
				return
			}
			s := st.StackByKind(k)
			v, ok := s.Pop()
			if !ok {
				st.Name.Push(n)
				return
			}
			st.Define(n.Name, v)
		})
	}

	// NAME.QUOTE sets a one-step flag causing the next NameLit reached by the
	// engine to be pushed literally onto NAME even if bound.
	is.Register("NAME.QUOTE", func(st *State, _ *Cache) {
		st.quoteNextName = true
	})
}
