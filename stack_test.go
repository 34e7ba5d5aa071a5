package push3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackPushPop(t *testing.T) {
	var s Stack
	s.Push(Int(1))
	s.Push(Int(2))
	s.Push(Int(3))
	assert.Equal(t, 3, s.Depth())

	v, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, Int(3), v)
	assert.Equal(t, 2, s.Depth())
}

func TestStackPopEmptyIsNoop(t *testing.T) {
	var s Stack
	_, ok := s.Pop()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Depth())
}

func TestStackDupEmptyIsNoop(t *testing.T) {
	var s Stack
	s.Dup()
	assert.Equal(t, 0, s.Depth())
}

func TestStackRotRequiresThree(t *testing.T) {
	var s Stack
	s.Push(Int(1))
	s.Push(Int(2))
	s.Rot() // depth 2, no-op
	assert.Equal(t, []Value{Int(2), Int(1)}, s.Items())

	s.Push(Int(3))
	// stack top-first: 3 2 1 -> rot -> 1 3 2 (a,b,c = 3,2,1 -> c,a,b = 1,3,2)
	s.Rot()
	assert.Equal(t, []Value{Int(1), Int(3), Int(2)}, s.Items())
}

func TestStackYankClampsDepth(t *testing.T) {
	var s Stack
	s.Push(Int(1))
	s.Push(Int(2))
	s.Push(Int(3))
	s.Yank(100) // clamps to depth-1 = 2, which is Int(1)
	assert.Equal(t, []Value{Int(1), Int(3), Int(2)}, s.Items())
}

func TestStackYankOnEmptyIsNoop(t *testing.T) {
	var s Stack
	s.Yank(0)
	assert.Equal(t, 0, s.Depth())
}

func TestStackYankDup(t *testing.T) {
	var s Stack
	s.Push(Int(1))
	s.Push(Int(2))
	s.Push(Int(3))
	s.YankDup(1) // depth 1 from top is Int(2)
	assert.Equal(t, []Value{Int(2), Int(3), Int(2), Int(1)}, s.Items())
}

func TestStackShove(t *testing.T) {
	var s Stack
	s.Push(Int(1))
	s.Push(Int(2))
	s.Push(Int(3))
	s.Shove(2) // take top (3), insert at depth 2 of the remaining [2,1]
	assert.Equal(t, []Value{Int(2), Int(1), Int(3)}, s.Items())
}

func TestStackSwap(t *testing.T) {
	var s Stack
	s.Push(Int(1))
	s.Swap() // depth 1, no-op
	assert.Equal(t, []Value{Int(1)}, s.Items())

	s.Push(Int(2))
	s.Swap()
	assert.Equal(t, []Value{Int(1), Int(2)}, s.Items())
}

func TestStackStackDepth(t *testing.T) {
	var s, dst Stack
	s.Push(Int(1))
	s.Push(Int(2))
	s.StackDepth(&dst)
	assert.Equal(t, []Value{Int(2)}, dst.Items())
}

func TestStackLimitCapsPush(t *testing.T) {
	s := Stack{Limit: 2}
	s.Push(Int(1))
	s.Push(Int(2))
	s.Push(Int(3)) // over limit, no-op
	assert.Equal(t, 2, s.Depth())
}

func TestStackPushAllSplatsInOrder(t *testing.T) {
	var s Stack
	s.PushAll([]Value{Int(1), Int(2), Int(3)})
	// after PushAll, the next three pops should be 1, then 2, then 3
	v1, _ := s.Pop()
	v2, _ := s.Pop()
	v3, _ := s.Pop()
	assert.Equal(t, []Value{Int(1), Int(2), Int(3)}, []Value{v1, v2, v3})
}
