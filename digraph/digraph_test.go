package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veligo/cyclegraph/digraph"
)

// TestAddNode_Idempotent verifies repeated labels map to a single index.
func TestAddNode_Idempotent(t *testing.T) {
	g := digraph.New()

	a := g.AddNode("a")
	b := g.AddNode("b")
	again := g.AddNode("a")

	assert.Equal(t, 0, a)     // first node takes index 0
	assert.Equal(t, 1, b)     // second node takes index 1
	assert.Equal(t, a, again) // same label, same index
	assert.Equal(t, 2, g.NodeCount())
}

// TestAddEdge_RangeChecked verifies endpoint validation.
func TestAddEdge_RangeChecked(t *testing.T) {
	g := digraph.New()
	a := g.AddNode("a")

	assert.ErrorIs(t, g.AddEdge(a, 5), digraph.ErrIndexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(-1, a), digraph.ErrIndexOutOfRange)
	assert.Equal(t, 0, g.EdgeCount()) // nothing was recorded
}

// TestAddEdge_PreservesInsertionOrder verifies the deterministic successor
// order the analyses rely on.
func TestAddEdge_PreservesInsertionOrder(t *testing.T) {
	g := digraph.New()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	d := g.AddNode("d")

	require.NoError(t, g.AddEdge(a, c))
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(a, d))

	// Successors must come back exactly in AddEdge call order.
	assert.Equal(t, []int{c, b, d}, g.Successors(a))
	assert.Equal(t, 3, g.EdgeCount())
}

// TestAddEdge_SelfLoopAndParallel verifies loops and duplicates are stored.
func TestAddEdge_SelfLoopAndParallel(t *testing.T) {
	g := digraph.New()
	a := g.AddNode("a")
	b := g.AddNode("b")

	require.NoError(t, g.AddEdge(a, a)) // self-loop
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(a, b)) // parallel edge

	assert.Equal(t, []int{a, b, b}, g.Successors(a))
	assert.Equal(t, 3, g.EdgeCount())
}

// TestSuccessors_OutOfRange verifies invalid indices yield nil, not a panic.
func TestSuccessors_OutOfRange(t *testing.T) {
	g := digraph.New()
	g.AddNode("a")

	assert.Nil(t, g.Successors(-1))
	assert.Nil(t, g.Successors(1))
}

// TestAddEdgeByLabel verifies missing endpoints are created on demand.
func TestAddEdgeByLabel(t *testing.T) {
	g := digraph.New()

	require.NoError(t, g.AddEdgeByLabel("x", "y"))
	require.NoError(t, g.AddEdgeByLabel("y", "x"))

	x, ok := g.IndexOf("x")
	require.True(t, ok)
	y, ok := g.IndexOf("y")
	require.True(t, ok)

	assert.Equal(t, []int{y}, g.Successors(x))
	assert.Equal(t, []int{x}, g.Successors(y))
	assert.Equal(t, 2, g.NodeCount())
}

// TestLabelLookups covers Label, IndexOf and Labels round-trips and errors.
func TestLabelLookups(t *testing.T) {
	g := digraph.New()
	a := g.AddNode("a")
	b := g.AddNode("b")

	lbl, err := g.Label(a)
	require.NoError(t, err)
	assert.Equal(t, "a", lbl)

	_, err = g.Label(99)
	assert.ErrorIs(t, err, digraph.ErrIndexOutOfRange)

	_, ok := g.IndexOf("missing")
	assert.False(t, ok)

	labels, err := g.Labels([]int{b, a})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, labels)

	_, err = g.Labels([]int{a, 7})
	assert.ErrorIs(t, err, digraph.ErrIndexOutOfRange)
}

// TestEmptyGraph covers the zero-node container.
func TestEmptyGraph(t *testing.T) {
	g := digraph.New()

	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Nil(t, g.Successors(0))
}
