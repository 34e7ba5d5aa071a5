package push3

// registerControlFlow loads *.IF and the DO*RANGE/DO*COUNT/DO*TIMES family.
// Bodies are always resumed by pushing onto EXEC, never by native Go
// looping or recursion over the body, preserving reentrancy: state capture
// is just the stacks, with no hidden program counter.
func registerControlFlow(is *InstructionSet) {
	is.Register("EXEC.IF", ifHandler(func(st *State) *Stack { return &st.Exec }))
	is.Register("CODE.IF", ifHandler(func(st *State) *Stack { return &st.Code }))

	is.Register("EXEC.DO*RANGE", doRangeHandler(func(st *State) *Stack { return &st.Exec }, "EXEC.DO*RANGE"))
	is.Register("CODE.DO*RANGE", doRangeHandler(func(st *State) *Stack { return &st.Code }, "CODE.DO*RANGE"))

	is.Register("EXEC.DO*COUNT", doCountHandler(func(st *State) *Stack { return &st.Exec }, "EXEC.DO*RANGE", false))
	is.Register("CODE.DO*COUNT", doCountHandler(func(st *State) *Stack { return &st.Code }, "CODE.DO*RANGE", false))

	is.Register("EXEC.DO*TIMES", doCountHandler(func(st *State) *Stack { return &st.Exec }, "EXEC.DO*RANGE", true))
	is.Register("CODE.DO*TIMES", doCountHandler(func(st *State) *Stack { return &st.Code }, "CODE.DO*RANGE", true))
}

// ifHandler implements *.IF: pop BOOLEAN c and two items t (top) and e
// (below) off bodySrc's stack; if c is true push t onto EXEC, else push e.
// If any precondition is unmet, every popped item is restored so the
// instruction remains a total no-op.
func ifHandler(bodySrc func(st *State) *Stack) Handler {
	return func(st *State, _ *Cache) {
		s := bodySrc(st)
		thenItem, ok := s.Pop()
		if !ok {
			return
		}
		elseItem, ok := s.Pop()
		if !ok {
			s.Push(thenItem)
			return
		}
		c, ok := st.Boolean.Pop()
		if !ok {
			s.Push(elseItem)
			s.Push(thenItem)
			return
		}
		if c.Bool {
			st.Exec.Push(thenItem)
		} else {
			st.Exec.Push(elseItem)
		}
	}
}

// doRangeHandler implements *.DO*RANGE: requires two INTEGERs
// (destination d on top, current c below) and a body popped from bodySrc's
// stack. selfName is the instruction name used to rebuild the continuation
// (EXEC.DO*RANGE or CODE.DO*RANGE).
func doRangeHandler(bodySrc func(st *State) *Stack, selfName string) Handler {
	return func(st *State, _ *Cache) {
		s := bodySrc(st)
		body, ok := s.Pop()
		if !ok {
			return
		}
		d, ok := st.Integer.Peek(0)
		if !ok {
			s.Push(body)
			return
		}
		c, ok := st.Integer.Peek(1)
		if !ok {
			s.Push(body)
			return
		}
		st.Integer.Pop()
		st.Integer.Pop()

		if c.Int == d.Int {
			st.Exec.Push(body)
			st.Integer.Push(c)
			return
		}

		step := int64(1)
		if d.Int < c.Int {
			step = -1
		}
		next := c.Int + step
		// selfName must precede body here: the continuation is later
		// splatted in list order (first element ends up on top, so it's
		// popped first), and the re-invoked handler's own s.Pop() is what
		// retrieves body for the next iteration. Putting body first would
		// dispatch it as a standalone step before the handler ever runs
		// again, leaving nothing for that next invocation to pop.
		continuation := CodeList(Int(next), Int(d.Int), Instr(selfName), body)
		if s == &st.Code {
			// CODE.DO*RANGE pops its body from CODE, so CODE.QUOTE moves
			// body from EXEC onto CODE before the handler runs again.
			continuation = CodeList(Int(next), Int(d.Int), Instr("CODE.QUOTE"), body, Instr(selfName))
		}
		st.Exec.Push(continuation)
		st.Exec.Push(body)
		st.Integer.Push(c)
	}
}

// doCountHandler implements *.DO*COUNT (timesMode=false) and *.DO*TIMES
// (timesMode=true) by converting to a *.DO*RANGE over [0, n-1]. A
// non-positive count is a no-op.
func doCountHandler(bodySrc func(st *State) *Stack, rangeName string, timesMode bool) Handler {
	return func(st *State, _ *Cache) {
		s := bodySrc(st)
		body, ok := s.Pop()
		if !ok {
			return
		}
		n, ok := st.Integer.Pop()
		if !ok {
			s.Push(body)
			return
		}
		if n.Int <= 0 {
			st.Integer.Push(n)
			s.Push(body)
			return
		}
		if timesMode {
			body = CodeList(Instr("INTEGER.POP"), body)
		}
		st.Integer.Push(Int(0))
		st.Integer.Push(Int(n.Int - 1))
		s.Push(body)
		doRangeHandler(bodySrc, rangeName)(st, nil)
	}
}
