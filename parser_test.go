package push3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCache() *Cache {
	return NewDefaultCache(DefaultConfiguration())
}

func TestParseEmptyProgram(t *testing.T) {
	v, err := Parse("", testCache(), DefaultConfiguration())
	require.NoError(t, err)
	assert.Equal(t, KindList, v.Kind)
	assert.Empty(t, v.List)
}

func TestParseAtoms(t *testing.T) {
	v, err := Parse("3 -4 3.5 -.5 1.0e3 TRUE false foo INTEGER.+", testCache(), DefaultConfiguration())
	require.NoError(t, err)
	want := List{
		Int(3), Int(-4), Float(3.5), Float(-0.5), Float(1000),
		Bool(true), Bool(false), Name("FOO"), Instr("INTEGER.+"),
	}
	assert.Equal(t, want, v.List)
}

func TestParseNestedLists(t *testing.T) {
	v, err := Parse("(1 (2 3) 4)", testCache(), DefaultConfiguration())
	require.NoError(t, err)
	want := List{
		Value{Kind: KindList, List: List{Int(1), Value{Kind: KindList, List: List{Int(2), Int(3)}}, Int(4)}},
	}
	assert.Equal(t, want, v.List)
}

func TestParseUnbalancedParens(t *testing.T) {
	_, err := Parse("(1 2", testCache(), DefaultConfiguration())
	assert.Error(t, err)

	_, err = Parse("1 2)", testCache(), DefaultConfiguration())
	assert.Error(t, err)
}

func TestParseMaxPointsRejects(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.MaxPointsInProgram = 2
	_, err := Parse("1 2 3", testCache(), cfg)
	assert.Error(t, err)
}

func TestParseNonFiniteFloatRejected(t *testing.T) {
	_, err := Parse("1.0e400", testCache(), DefaultConfiguration())
	assert.Error(t, err)
}

func TestParsePrintRoundTrip(t *testing.T) {
	src := "(1 2.5 TRUE foo (INTEGER.+ bar))"
	v, err := Parse(src, testCache(), DefaultConfiguration())
	require.NoError(t, err)

	printed := v.List[0].String()
	v2, err := Parse(printed, testCache(), DefaultConfiguration())
	require.NoError(t, err)
	assert.Equal(t, v.List[0], v2.List[0])
}
