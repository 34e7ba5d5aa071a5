package push3

// registerRandom loads the *.RAND family and CODE.RAND.
func registerRandom(is *InstructionSet) {
	is.Register("INTEGER.RAND", func(st *State, _ *Cache) {
		st.Integer.Push(Int(randInt(st, st.Config.MinRandomInteger, st.Config.MaxRandomInteger)))
	})
	is.Register("FLOAT.RAND", func(st *State, _ *Cache) {
		st.Float.Push(Float(randFloat(st, st.Config.MinRandomFloat, st.Config.MaxRandomFloat)))
	})
	is.Register("BOOLEAN.RAND", func(st *State, _ *Cache) {
		st.Boolean.Push(Bool(st.Rand.Intn(2) == 1))
	})
	is.Register("NAME.RAND", func(st *State, _ *Cache) {
		st.Name.Push(randNameAtom(st))
	})
	is.Register("CODE.RAND", func(st *State, cache *Cache) {
		st.Code.Push(RandomCode(st, cache, st.Config.MaxPointsInRandomExpressions))
	})
}

// randInt returns a uniform int64 in [lo, hi].
func randInt(st *State, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	span := hi - lo + 1
	return lo + int64(st.Rand.Int63n(span))
}

// randFloat returns a uniform float64 in [lo, hi].
func randFloat(st *State, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + st.Rand.Float64()*(hi-lo)
}

// randNameAtom produces either a fresh random ERC name (with probability
// NewERCNameProbability) or a previously seen bound name, falling back to a
// fresh name if none are bound yet.
func randNameAtom(st *State) Value {
	known := st.KnownNames()
	if len(known) > 0 && st.Rand.Float64() >= st.Config.NewERCNameProbability {
		return Name(known[st.Rand.Intn(len(known))])
	}
	return Name(freshNameSymbol(st))
}

const nameAlphabet = "abcdefghijklmnopqrstuvwxyz"

func freshNameSymbol(st *State) string {
	const length = 6
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = nameAlphabet[st.Rand.Intn(len(nameAlphabet))]
	}
	return "G" + string(buf)
}

// RandomCode implements RANDOM-CODE(max_points): sample n uniformly
// in [1, max_points], then call RandomCodeWithSize(n).
func RandomCode(st *State, cache *Cache, maxPoints int) Value {
	if maxPoints < 1 {
		maxPoints = 1
	}
	n := 1 + st.Rand.Intn(maxPoints)
	return RandomCodeWithSize(st, cache, n)
}

// RandomCodeWithSize implements RANDOM-CODE-WITH-SIZE(p).
func RandomCodeWithSize(st *State, cache *Cache, p int) Value {
	if p <= 1 {
		return randomAtom(st, cache)
	}
	parts := decompose(st, p-1, p-1)
	items := make(List, len(parts))
	for i, s := range parts {
		items[i] = RandomCodeWithSize(st, cache, s)
	}
	return Value{Kind: KindList, List: items}
}

// randomAtom samples a single atom uniformly from: a random instruction
// name from the Cache, a random integer, a random float, a random boolean,
// or (with probability NewERCNameProbability) a fresh name, else a
// previously seen name.
func randomAtom(st *State, cache *Cache) Value {
	names := cache.Names()
	choices, first := 5, 0
	if len(names) == 0 {
		// no instruction to sample: draw from the other four options
		choices, first = 4, 1
	}
	switch first + st.Rand.Intn(choices) {
	case 0:
		return Instr(names[st.Rand.Intn(len(names))])
	case 1:
		return Int(randInt(st, st.Config.MinRandomInteger, st.Config.MaxRandomInteger))
	case 2:
		return Float(randFloat(st, st.Config.MinRandomFloat, st.Config.MaxRandomFloat))
	case 3:
		return Bool(st.Rand.Intn(2) == 1)
	default:
		return randNameAtom(st)
	}
}

// decompose implements DECOMPOSE(n, m): repeatedly take s uniform in
// [1, min(n, m)], append s, decrement n by s, until n == 0, then shuffle.
func decompose(st *State, n, m int) []int {
	var parts []int
	for n > 0 {
		bound := n
		if m < bound {
			bound = m
		}
		s := 1 + st.Rand.Intn(bound)
		parts = append(parts, s)
		n -= s
	}
	st.Rand.Shuffle(len(parts), func(i, j int) { parts[i], parts[j] = parts[j], parts[i] })
	return parts
}
