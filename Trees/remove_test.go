package Trees

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemove_NotFound(t *testing.T) {
	tree := From(5, 3, 8)
	_, err := tree.Remove(100)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorContains(t, err, "100")
	assert.Equal(t, uint(3), tree.Size())
	assert.Equal(t, []int{5, 3, 8}, tree.PreOrder())

	_, err = New[int]().Remove(1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRemove_Ok(t *testing.T) {
	tests := []struct {
		name     string
		add      []int
		remove   int
		preOrder []int // after removal
	}{
		{
			name:     "remove the only node",
			add:      []int{1},
			remove:   1,
			preOrder: []int{},
		},
		{
			name:     "remove a leaf on the left",
			add:      []int{50, 25, 100},
			remove:   25,
			preOrder: []int{50, 100},
		},
		{
			name:     "remove a root with only a right child",
			add:      []int{50, 100, 75},
			remove:   50,
			preOrder: []int{100, 75},
		},
		{
			name:     "remove a root with only a left child",
			add:      []int{50, 25, 10},
			remove:   50,
			preOrder: []int{25, 10},
		},
		{
			name:     "remove an inner node with one child",
			add:      []int{50, 25, 30, 100},
			remove:   25,
			preOrder: []int{50, 30, 100},
		},
		{
			name:     "remove a root with two children",
			add:      []int{5, 3, 8, 1, 4, 7, 9},
			remove:   5,
			preOrder: []int{4, 3, 1, 8, 7, 9},
		},
		{
			name:     "maximum of the left subtree is its root",
			add:      []int{5, 3, 8, 1, 4},
			remove:   3,
			preOrder: []int{5, 1, 4, 8},
		},
		{
			name:     "maximum of the left subtree has a left child",
			add:      []int{10, 5, 15, 3, 8, 7},
			remove:   10,
			preOrder: []int{8, 5, 3, 7, 15},
		},
		{
			name:     "remove one of several equal values",
			add:      []int{5, 5, 5},
			remove:   5,
			preOrder: []int{5, 5},
		},
		{
			name:     "equal copies of the left maximum stay on the left",
			add:      []int{10, 4, 4, 12},
			remove:   10,
			preOrder: []int{4, 4, 12},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := From(tt.add...)
			v, err := tree.Remove(tt.remove)
			require.NoError(t, err)
			assert.Equal(t, tt.remove, v)
			assert.Equal(t, tt.preOrder, tree.PreOrder())
			assert.Equal(t, uint(len(tt.add)-1), tree.Size())
			assert.False(t, tree.Corrupt())
		})
	}
}

func TestRemove_LiftedEqualValues(t *testing.T) {
	tree := From(10, 4, 4, 4, 12, 11)
	for _, want := range [][]int{
		{4, 4, 4, 12, 11},
		{4, 4, 12, 11},
		{4, 12, 11},
	} {
		v, err := tree.Remove(tree.root.v)
		require.NoError(t, err)
		assert.Equal(t, want, tree.PreOrder(), "after removing %d", v)
		assert.False(t, tree.Corrupt())
		assert.True(t, tree.Has(4))
		pred, ok := tree.Predecessor(11)
		assert.True(t, ok)
		assert.Equal(t, 4, pred)
		succ, ok := tree.Successor(4)
		assert.True(t, ok)
		assert.Equal(t, 11, succ)
	}
}

func TestRebalance_Shape(t *testing.T) {
	tests := []struct {
		add      []int
		preOrder []int
	}{
		{[]int{1, 2}, []int{2, 1}},
		{[]int{1, 2, 3}, []int{2, 1, 3}},
		{[]int{1, 2, 3, 4}, []int{3, 1, 2, 4}},
		{[]int{1, 2, 3, 4, 5}, []int{3, 2, 1, 5, 4}},
		{[]int{1, 2, 3, 4, 5, 6}, []int{4, 2, 1, 3, 5, 6}},
		{[]int{1, 2, 3, 4, 5, 6, 7}, []int{4, 2, 1, 3, 6, 5, 7}},
	}
	for _, tt := range tests {
		tree := From(tt.add...)
		tree.Rebalance()
		assert.Equal(t, tt.preOrder, tree.PreOrder(), "rebalancing %v", tt.add)
		assert.Equal(t, tt.add, tree.InOrder())
	}
	tree := New[int]()
	tree.Rebalance()
	assert.True(t, tree.IsEmpty())
}

func TestHeight(t *testing.T) {
	assert.Equal(t, uint(0), New[int]().Height())
	assert.Equal(t, uint(0), From(1).Height())
	assert.Equal(t, uint(1), From(1, 2).Height())
	assert.Equal(t, uint(2), From(5, 5, 5).Height())
	assert.Equal(t, uint(2), From(5, 3, 8, 1, 4).Height())
}

func TestReplace(t *testing.T) {
	tree := From(5, 3, 8)
	old, ok := tree.Replace(3, 4)
	assert.True(t, ok)
	assert.Equal(t, 3, old)
	assert.Equal(t, []int{4, 5, 8}, tree.InOrder())
	assert.False(t, tree.Corrupt())

	_, ok = tree.Replace(42, 1)
	assert.False(t, ok)
	assert.Equal(t, []int{5, 4, 8}, tree.PreOrder())

	_, ok = tree.Replace(4, 10)
	assert.True(t, ok)
	assert.True(t, tree.Corrupt())
}

func TestReplaceChecked(t *testing.T) {
	tree := From(5, 3, 8, 1, 4)
	_, err := tree.ReplaceChecked(4, 2)
	assert.ErrorIs(t, err, ErrOrder, "4 is in the right subtree of 3")
	old, err := tree.ReplaceChecked(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, old)
	assert.Equal(t, []int{2, 3, 4, 5, 8}, tree.InOrder())

	_, err = tree.ReplaceChecked(2, 6)
	require.ErrorIs(t, err, ErrOrder)
	var oe OrderError[int]
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, OrderError[int]{2, 6}, oe)

	_, err = tree.ReplaceChecked(3, 1)
	assert.ErrorIs(t, err, ErrOrder, "3 has 2 in its left subtree")
	_, err = tree.ReplaceChecked(5, 9)
	assert.ErrorIs(t, err, ErrOrder, "5 has 8 in its right subtree")
	_, err = tree.ReplaceChecked(8, 5)
	assert.NoError(t, err, "equal values belong on the right")
	_, err = tree.ReplaceChecked(2, 3)
	assert.NoError(t, err, "a value equal to a left-turn ancestor may stay on the left")
	assert.Equal(t, []int{3, 3, 4, 5, 5}, tree.InOrder())
	_, err = tree.ReplaceChecked(42, 1)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, tree.Corrupt())
}

func TestString(t *testing.T) {
	assert.Equal(t, "", New[int]().String())
	assert.Equal(t, "| 3\n2\n| 1\n", From(2, 1, 3).String())
	assert.Equal(t, "| | 7\n| 6\n5\n| 3\n", From(5, 3, 6, 7).String())
}

func TestCollection(t *testing.T) {
	var c OrderedCollection[string] = New[string]()
	assert.True(t, c.IsEmpty())
	c.Add("b")
	c.Add("a")
	assert.True(t, c.Has("a"))
	assert.Equal(t, uint(2), c.Size())
	v, ok := c.Minimum()
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	c.Clear()
	assert.True(t, c.IsEmpty())
	_, ok = c.Maximum()
	assert.False(t, ok)
}
