package push3

import "math"

// registerArithmetic loads INTEGER and FLOAT arithmetic, comparisons, and
// cross-type conversions.
//
// Integer arithmetic uses Go's native wrapping int64 semantics: overflow
// wraps rather than panicking or growing to arbitrary precision, a stable
// and documented choice rather than an arbitrary-precision regime.
func registerArithmetic(is *InstructionSet) {
	is.Register("INTEGER.+", intBinOp(func(a, b int64) (int64, bool) { return a + b, true }))
	is.Register("INTEGER.-", intBinOp(func(a, b int64) (int64, bool) { return a - b, true }))
	is.Register("INTEGER.*", intBinOp(func(a, b int64) (int64, bool) { return a * b, true }))
	is.Register("INTEGER./", intBinOp(func(a, b int64) (int64, bool) {
		if b == 0 {
			return 0, false
		}
		return floorDivInt(a, b), true
	}))
	is.Register("INTEGER.%", intBinOp(func(a, b int64) (int64, bool) {
		if b == 0 {
			return 0, false
		}
		return floorModInt(a, b), true
	}))
	is.Register("INTEGER.MIN", intBinOp(func(a, b int64) (int64, bool) {
		if a < b {
			return a, true
		}
		return b, true
	}))
	is.Register("INTEGER.MAX", intBinOp(func(a, b int64) (int64, bool) {
		if a > b {
			return a, true
		}
		return b, true
	}))
	is.Register("INTEGER.<", intCmpOp(func(a, b int64) bool { return a < b }))
	is.Register("INTEGER.>", intCmpOp(func(a, b int64) bool { return a > b }))
	is.Register("INTEGER.=", intCmpOp(func(a, b int64) bool { return a == b }))

	is.Register("FLOAT.+", floatBinOp(func(a, b float64) float64 { return a + b }))
	is.Register("FLOAT.-", floatBinOp(func(a, b float64) float64 { return a - b }))
	is.Register("FLOAT.*", floatBinOp(func(a, b float64) float64 { return a * b }))
	is.Register("FLOAT./", func(st *State, _ *Cache) {
		b, ok := st.Float.Peek(0)
		if !ok {
			return
		}
		a, ok := st.Float.Peek(1)
		if !ok {
			return
		}
		if b.Float == 0 {
			return
		}
		st.Float.Pop()
		st.Float.Pop()
		st.Float.Push(Float(a.Float / b.Float))
	})
	is.Register("FLOAT.%", func(st *State, _ *Cache) {
		b, ok := st.Float.Peek(0)
		if !ok {
			return
		}
		a, ok := st.Float.Peek(1)
		if !ok {
			return
		}
		if b.Float == 0 {
			return
		}
		st.Float.Pop()
		st.Float.Pop()
		st.Float.Push(Float(floorModFloat(a.Float, b.Float)))
	})
	is.Register("FLOAT.MIN", floatBinOp(math.Min))
	is.Register("FLOAT.MAX", floatBinOp(math.Max))
	is.Register("FLOAT.<", floatCmpOp(func(a, b float64) bool { return a < b }))
	is.Register("FLOAT.>", floatCmpOp(func(a, b float64) bool { return a > b }))
	is.Register("FLOAT.=", floatCmpOp(func(a, b float64) bool { return a == b }))

	is.Register("INTEGER.FROMFLOAT", func(st *State, _ *Cache) {
		v, ok := st.Float.Pop()
		if !ok {
			return
		}
		st.Integer.Push(Int(int64(v.Float)))
	})
	is.Register("INTEGER.FROMBOOLEAN", func(st *State, _ *Cache) {
		v, ok := st.Boolean.Pop()
		if !ok {
			return
		}
		if v.Bool {
			st.Integer.Push(Int(1))
		} else {
			st.Integer.Push(Int(0))
		}
	})
	is.Register("FLOAT.FROMINT", func(st *State, _ *Cache) {
		v, ok := st.Integer.Pop()
		if !ok {
			return
		}
		st.Float.Push(Float(float64(v.Int)))
	})
	is.Register("FLOAT.FROMBOOLEAN", func(st *State, _ *Cache) {
		v, ok := st.Boolean.Pop()
		if !ok {
			return
		}
		if v.Bool {
			st.Float.Push(Float(1))
		} else {
			st.Float.Push(Float(0))
		}
	})
	is.Register("BOOLEAN.FROMINTEGER", func(st *State, _ *Cache) {
		v, ok := st.Integer.Pop()
		if !ok {
			return
		}
		st.Boolean.Push(Bool(v.Int != 0))
	})
	is.Register("BOOLEAN.FROMFLOAT", func(st *State, _ *Cache) {
		v, ok := st.Float.Pop()
		if !ok {
			return
		}
		st.Boolean.Push(Bool(v.Float != 0))
	})
}

// floorDivInt performs floored integer division (quotient rounds toward
// negative infinity), matching floorModInt below.
func floorDivInt(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorModInt implements floored modulo: the result shares the
// sign of the divisor, e.g. -7 % 3 = 2.
func floorModInt(a, b int64) int64 {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

func floorModFloat(a, b float64) float64 {
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

func intBinOp(f func(a, b int64) (int64, bool)) Handler {
	return func(st *State, _ *Cache) {
		b, ok := st.Integer.Peek(0)
		if !ok {
			return
		}
		a, ok := st.Integer.Peek(1)
		if !ok {
			return
		}
		result, ok := f(a.Int, b.Int)
		if !ok {
			return
		}
		st.Integer.Pop()
		st.Integer.Pop()
		st.Integer.Push(Int(result))
	}
}

func intCmpOp(f func(a, b int64) bool) Handler {
	return func(st *State, _ *Cache) {
		b, ok := st.Integer.Peek(0)
		if !ok {
			return
		}
		a, ok := st.Integer.Peek(1)
		if !ok {
			return
		}
		st.Integer.Pop()
		st.Integer.Pop()
		st.Boolean.Push(Bool(f(a.Int, b.Int)))
	}
}

func floatBinOp(f func(a, b float64) float64) Handler {
	return func(st *State, _ *Cache) {
		b, ok := st.Float.Peek(0)
		if !ok {
			return
		}
		a, ok := st.Float.Peek(1)
		if !ok {
			return
		}
		st.Float.Pop()
		st.Float.Pop()
		st.Float.Push(Float(f(a.Float, b.Float)))
	}
}

func floatCmpOp(f func(a, b float64) bool) Handler {
	return func(st *State, _ *Cache) {
		b, ok := st.Float.Peek(0)
		if !ok {
			return
		}
		a, ok := st.Float.Peek(1)
		if !ok {
			return
		}
		st.Float.Pop()
		st.Float.Pop()
		st.Boolean.Push(Bool(f(a.Float, b.Float)))
	}
}
