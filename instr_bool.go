package push3

// registerBoolean loads the BOOLEAN instruction family.
func registerBoolean(is *InstructionSet) {
	is.Register("BOOLEAN.AND", boolBinOp(func(a, b bool) bool { return a && b }))
	is.Register("BOOLEAN.OR", boolBinOp(func(a, b bool) bool { return a || b }))
	is.Register("BOOLEAN.XOR", boolBinOp(func(a, b bool) bool { return a != b }))
	is.Register("BOOLEAN.=", boolBinOp(func(a, b bool) bool { return a == b }))
	is.Register("BOOLEAN.NOT", func(st *State, _ *Cache) {
		v, ok := st.Boolean.Pop()
		if !ok {
			return
		}
		st.Boolean.Push(Bool(!v.Bool))
	})
}

func boolBinOp(f func(a, b bool) bool) Handler {
	return func(st *State, _ *Cache) {
		b, ok := st.Boolean.Peek(0)
		if !ok {
			return
		}
		a, ok := st.Boolean.Peek(1)
		if !ok {
			return
		}
		st.Boolean.Pop()
		st.Boolean.Pop()
		st.Boolean.Push(Bool(f(a.Bool, b.Bool)))
	}
}
