package typedcrf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchemaRejectsBadShapes(t *testing.T) {
	_, err := NewSchema(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidSchema)

	_, err = NewSchema([]int{2, 3}, []int{1})
	assert.ErrorIs(t, err, ErrInvalidSchema)

	_, err = NewSchema([]int{2, 0}, []int{1, 1})
	assert.ErrorIs(t, err, ErrInvalidSchema)

	_, err = NewSchema([]int{2}, []int{-1})
	assert.ErrorIs(t, err, ErrInvalidSchema)
}

func TestNewSchemaRejectsPartialClassWeights(t *testing.T) {
	// Class weights for one of two types.
	_, err := NewSchema([]int{2, 3}, []int{1, 1},
		WithClassWeights([][]float64{{1, 1}}))
	assert.ErrorIs(t, err, ErrInvalidSchema)

	// Class weight vector shorter than the type's state count.
	_, err = NewSchema([]int{2, 3}, []int{1, 1},
		WithClassWeights([][]float64{{1, 1}, {1, 1}}))
	assert.ErrorIs(t, err, ErrInvalidSchema)
}

func TestSchemaDerivedSizes(t *testing.T) {
	s, err := NewSchema([]int{2, 3}, []int{4, 6})
	require.NoError(t, err)

	assert.Equal(t, 2, s.NumTypes())
	assert.Equal(t, 5, s.TotalStates())
	assert.Equal(t, 10, s.TotalFeatures())
	// 2*4 + 3*6
	assert.Equal(t, 26, s.SizeUnaryWeights())
	assert.Equal(t, 6, s.EdgeStateCount(0, 1))
	assert.Equal(t, []float64{1, 1, 1, 1, 1}, s.ClassWeights())
}

func TestSchemaClassWeightsConcatenated(t *testing.T) {
	s, err := NewSchema([]int{2, 3}, []int{1, 1},
		WithClassWeights([][]float64{{0.5, 2}, {1, 3, 1}}))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 2, 1, 3, 1}, s.ClassWeights())
}

func TestSchemaLabelBounds(t *testing.T) {
	s, err := NewSchema([]int{2, 3}, []int{1, 1})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 5}, s.LabelBounds())

	lo, hi := s.TypeLabelRange(0)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 2, hi)
	lo, hi = s.TypeLabelRange(1)
	assert.Equal(t, 2, lo)
	assert.Equal(t, 5, hi)
}

func TestSchemaFeatureSlices(t *testing.T) {
	s, err := NewSchema([]int{1, 1, 1}, []int{4, 0, 6})
	require.NoError(t, err)

	start, end := s.FeatureSlice(0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 4, end)
	start, end = s.FeatureSlice(1)
	assert.Equal(t, 4, start)
	assert.Equal(t, 4, end)
	start, end = s.FeatureSlice(2)
	assert.Equal(t, 4, start)
	assert.Equal(t, 10, end)
}

func TestEdgePairOffsetsTileEdgeStateSpace(t *testing.T) {
	s, err := NewSchema([]int{2, 3, 4}, []int{1, 1, 1})
	require.NoError(t, err)

	// Row-major offsets must tile [0, TotalEdgeStates) with no gaps or
	// overlaps: each offset is the previous offset plus the previous
	// pair's edge-state count.
	next := 0
	for t1 := 0; t1 < s.NumTypes(); t1++ {
		for t2 := 0; t2 < s.NumTypes(); t2++ {
			assert.Equal(t, next, s.EdgePairOffset(t1, t2), "pair (%d,%d)", t1, t2)
			next += s.EdgeStateCount(t1, t2)
		}
	}
	assert.Equal(t, next, s.TotalEdgeStates())
	// (2+3+4)^2 joint states in total.
	assert.Equal(t, 81, s.TotalEdgeStates())
}

func TestTypeOfLabel(t *testing.T) {
	s, err := NewSchema([]int{2, 3}, []int{1, 1})
	require.NoError(t, err)

	typ, ok := s.TypeOfLabel(1)
	assert.True(t, ok)
	assert.Equal(t, 0, typ)

	typ, ok = s.TypeOfLabel(2)
	assert.True(t, ok)
	assert.Equal(t, 1, typ)

	_, ok = s.TypeOfLabel(5)
	assert.False(t, ok)
	_, ok = s.TypeOfLabel(-1)
	assert.False(t, ok)
}

func TestTolerateInferenceFailuresToggle(t *testing.T) {
	s, err := NewSchema([]int{2}, []int{1})
	require.NoError(t, err)
	assert.False(t, s.TolerateInferenceFailures())
	assert.True(t, s.SetTolerateInferenceFailures(true))
	assert.True(t, s.TolerateInferenceFailures())

	s2, err := NewSchema([]int{2}, []int{1}, WithTolerantInference())
	require.NoError(t, err)
	assert.True(t, s2.TolerateInferenceFailures())
}

func TestSchemaString(t *testing.T) {
	s, err := NewSchema([]int{2, 3}, []int{4, 6})
	require.NoError(t, err)
	assert.Equal(t, "Schema(types: 2, states: [2 3], features: [4 6])", s.String())
}
