package typedcrf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstanceBuilder(t *testing.T) {
	s := twoTypeSchema(t)
	b := NewInstanceBuilder(s)

	a0 := b.AddNode(0, []float64{1.0})
	a1 := b.AddNode(0, []float64{2.0})
	c0 := b.AddNode(1, []float64{3.0})
	assert.Equal(t, 0, a0)
	assert.Equal(t, 1, a1)
	assert.Equal(t, 0, c0)

	b.AddEdge(0, 1, a0, c0)
	b.AddEdge(0, 0, a0, a1)

	x := b.Build()
	require.NoError(t, s.ValidateInstance(x))
	assert.Equal(t, 2, x.NodeCount(0))
	assert.Equal(t, 1, x.NodeCount(1))
	assert.Equal(t, 3, x.TotalNodes())
	assert.Equal(t, []Edge{{Src: 0, Dst: 0}}, s.EdgesBetween(x, 0, 1))
	assert.Empty(t, s.EdgesBetween(x, 1, 1))
}

func TestInstanceBuilderEmpty(t *testing.T) {
	s := twoTypeSchema(t)
	x := NewInstanceBuilder(s).Build()
	require.NoError(t, s.ValidateInstance(x))
	assert.Equal(t, 0, x.TotalNodes())
}
