package push3

// registerCode loads the CODE manipulation family.
func registerCode(is *InstructionSet) {
	// CODE.QUOTE pops the next EXEC item without executing it and pushes it
	// onto CODE.
	is.Register("CODE.QUOTE", func(st *State, _ *Cache) {
		v, ok := st.Exec.Pop()
		if !ok {
			return
		}
		st.Code.Push(v)
	})

	// CODE.DO pops from CODE and pushes onto EXEC, executing it.
	is.Register("CODE.DO", func(st *State, _ *Cache) {
		v, ok := st.Code.Pop()
		if !ok {
			return
		}
		st.Exec.Push(v)
	})

	// CODE.CAR treats the top of CODE as a list (an atom is a one-element
	// list) and pushes its first element back onto CODE.
	is.Register("CODE.CAR", func(st *State, _ *Cache) {
		v, ok := st.Code.Peek(0)
		if !ok {
			return
		}
		items := v.AsList()
		if len(items) == 0 {
			return
		}
		st.Code.Pop()
		st.Code.Push(items[0])
	})

	// CODE.CDR pushes the list with its first element removed.
	is.Register("CODE.CDR", func(st *State, _ *Cache) {
		v, ok := st.Code.Peek(0)
		if !ok {
			return
		}
		items := v.AsList()
		if len(items) == 0 {
			return
		}
		rest := make(List, len(items)-1)
		copy(rest, items[1:])
		st.Code.Pop()
		st.Code.Push(Value{Kind: KindList, List: rest})
	})

	// CODE.CONS prepends the second item to the list form of the top item.
	is.Register("CODE.CONS", func(st *State, _ *Cache) {
		top, ok := st.Code.Peek(0)
		if !ok {
			return
		}
		head, ok := st.Code.Peek(1)
		if !ok {
			return
		}
		st.Code.Pop()
		st.Code.Pop()
		items := top.AsList()
		consed := make(List, 0, len(items)+1)
		consed = append(consed, head)
		consed = append(consed, items...)
		st.Code.Push(Value{Kind: KindList, List: consed})
	})

	// CODE.APPEND concatenates the list forms of the top two items.
	is.Register("CODE.APPEND", func(st *State, _ *Cache) {
		top, ok := st.Code.Peek(0)
		if !ok {
			return
		}
		below, ok := st.Code.Peek(1)
		if !ok {
			return
		}
		st.Code.Pop()
		st.Code.Pop()
		a := below.AsList()
		b := top.AsList()
		appended := make(List, 0, len(a)+len(b))
		appended = append(appended, a...)
		appended = append(appended, b...)
		st.Code.Push(Value{Kind: KindList, List: appended})
	})

	// CODE.SIZE counts points: an atom is 1 point, a list is 1
	// plus the points of its children.
	is.Register("CODE.SIZE", func(st *State, _ *Cache) {
		v, ok := st.Code.Peek(0)
		if !ok {
			return
		}
		st.Integer.Push(Int(int64(v.Points())))
	})

	// CODE.DEFINITION pops a NAME and pushes its bound value onto CODE; a
	// no-op if unbound.
	is.Register("CODE.DEFINITION", func(st *State, _ *Cache) {
		n, ok := st.Name.Pop()
		if !ok {
			return
		}
		v, bound := st.Lookup(n.Name)
		if !bound {
			st.Name.Push(n)
			return
		}
		st.Code.Push(v)
	})
}
