package typedcrf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenLabels(t *testing.T) {
	s := twoTypeSchema(t)

	flat, err := s.FlattenLabels([][]int{{0, 1}, {0, 2, 1}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 4, 3}, flat)
}

func TestFlattenLabelsRejects(t *testing.T) {
	s := twoTypeSchema(t)

	_, err := s.FlattenLabels([][]int{{0, 1}})
	assert.ErrorIs(t, err, ErrLabelCountMismatch)

	// Local label 3 does not exist for a 3-state type.
	_, err = s.FlattenLabels([][]int{{0}, {3}})
	assert.ErrorIs(t, err, ErrInconsistentLabel)

	_, err = s.FlattenLabels([][]int{{-1}, {0}})
	assert.ErrorIs(t, err, ErrInconsistentLabel)
}

func TestSplitLabels(t *testing.T) {
	s := twoTypeSchema(t)
	x := twoTypeInstance()

	perType, err := s.SplitLabels(x, []int{0, 1, 2, 4, 3})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {0, 2, 1}}, perType)

	_, err = s.SplitLabels(x, []int{0, 1, 1, 4, 3})
	assert.ErrorIs(t, err, ErrInconsistentLabel)
}

func TestFlattenSplitRoundTrip(t *testing.T) {
	s := twoTypeSchema(t)
	x := twoTypeInstance()

	perType := [][]int{{1, 0}, {2, 0, 1}}
	flat, err := s.FlattenLabels(perType)
	require.NoError(t, err)
	back, err := s.SplitLabels(x, flat)
	require.NoError(t, err)
	assert.Equal(t, perType, back)
}
