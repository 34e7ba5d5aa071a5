package push3

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runProgram(t *testing.T, src string, seedInts ...int64) *State {
	t.Helper()
	cfg := DefaultConfiguration()
	cfg.EvalPushLimit = 200000
	cache := NewDefaultCache(cfg)
	program, err := Parse(src, cache, cfg)
	require.NoError(t, err)

	st := New(cfg, WithSeed(1))
	for _, n := range seedInts {
		st.Integer.Push(Int(n))
	}
	Run(context.Background(), st, cache, program)
	return st
}

func TestIntegerAdd(t *testing.T) {
	st := runProgram(t, "3 4 INTEGER.+")
	assert.Equal(t, []Value{Int(7)}, st.Integer.Items())
}

func TestMixedArithmeticScenario(t *testing.T) {
	st := runProgram(t, "2 3 INTEGER.* 4.1 5.2 FLOAT.+ TRUE FALSE BOOLEAN.OR")
	assert.Equal(t, []Value{Int(6)}, st.Integer.Items())
	require.Len(t, st.Float.Items(), 1)
	assert.InDelta(t, 9.3, st.Float.Items()[0].Float, 1e-9)
	assert.Equal(t, []Value{Bool(true)}, st.Boolean.Items())
}

func TestDivisionByZeroIsNoop(t *testing.T) {
	st := runProgram(t, "10 0 INTEGER./")
	assert.Equal(t, []Value{Int(0), Int(10)}, st.Integer.Items())
}

func TestFlooredModulo(t *testing.T) {
	st := runProgram(t, "-7 3 INTEGER.%")
	assert.Equal(t, []Value{Int(2)}, st.Integer.Items())
}

func TestIntegerRot(t *testing.T) {
	st := runProgram(t, "1 2 3 INTEGER.ROT")
	assert.Equal(t, []Value{Int(1), Int(3), Int(2)}, st.Integer.Items())
}

func TestFactorialViaDoRange(t *testing.T) {
	st := runProgram(t, "( 1 INTEGER.MAX 1 EXEC.DO*RANGE INTEGER.* )", 4)
	require.Len(t, st.Integer.Items(), 1)
	assert.Equal(t, int64(24), st.Integer.Items()[0].Int)
}

func TestExecIfTrueBranch(t *testing.T) {
	st := runProgram(t, "TRUE EXEC.IF 1 2")
	assert.Equal(t, []Value{Int(1)}, st.Integer.Items())
}

func TestExecIfFalseBranch(t *testing.T) {
	st := runProgram(t, "FALSE EXEC.IF 1 2")
	assert.Equal(t, []Value{Int(2)}, st.Integer.Items())
}

func TestStepLimitReached(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.EvalPushLimit = 5
	cfg.MaxPointsInProgram = 1000000
	cache := NewDefaultCache(cfg)

	items := make(List, 0, 20)
	for i := 0; i < 20; i++ {
		items = append(items, Int(1))
	}
	program := Value{Kind: KindList, List: items}

	st := New(cfg)
	result := Run(context.Background(), st, cache, program)
	assert.True(t, result.StepLimitReached)
	assert.Equal(t, 5, result.Steps)
}

func TestListSplattingOrder(t *testing.T) {
	st := runProgram(t, "( 1 2 3 )")
	// each atom gets routed to INTEGER in list order: 1 pushed first, then 2
	// on top of it, then 3 on top of that -> top-first [3,2,1]
	assert.Equal(t, []Value{Int(3), Int(2), Int(1)}, st.Integer.Items())
}

func TestNameBindingTransparency(t *testing.T) {
	cfg := DefaultConfiguration()
	cache := NewDefaultCache(cfg)
	st := New(cfg)

	program, err := Parse("5 foo INTEGER.DEFINE foo", cache, cfg)
	require.NoError(t, err)
	Run(context.Background(), st, cache, program)
	assert.Equal(t, []Value{Int(5)}, st.Integer.Items())
}

func TestUnboundNamePushesToNameStack(t *testing.T) {
	st := runProgram(t, "bar")
	assert.Equal(t, []Value{Name("BAR")}, st.Name.Items())
}

func TestExecKKeepsTopDiscardsNext(t *testing.T) {
	cfg := DefaultConfiguration()
	cache := NewDefaultCache(cfg)
	st := New(cfg)
	st.Exec.Push(Int(2))
	st.Exec.Push(Int(1))
	st.Exec.Push(Instr("EXEC.K"))
	Run(context.Background(), st, cache, CodeList())
	assert.Equal(t, []Value{Int(1)}, st.Integer.Items())
}

func TestExecSCombinatorOrder(t *testing.T) {
	cfg := DefaultConfiguration()
	cache := NewDefaultCache(cfg)
	st := New(cfg)
	c := Int(3)
	b := Int(2)
	a := Int(1)
	st.Exec.Push(c)
	st.Exec.Push(b)
	st.Exec.Push(a)
	st.Exec.Push(Instr("EXEC.S"))
	// drive one engine step manually: dispatch EXEC.S, then observe EXEC order
	item, _ := st.Exec.Pop()
	h, _ := cache.Lookup(item.Name)
	h(st, cache)
	v1, _ := st.Exec.Pop()
	v2, _ := st.Exec.Pop()
	v3, _ := st.Exec.Pop()
	assert.Equal(t, Int(1), v1) // a
	assert.Equal(t, Int(3), v2) // c
	assert.Equal(t, CodeList(Int(2), Int(3)), v3) // (b c)
}
