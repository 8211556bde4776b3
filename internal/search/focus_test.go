package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigationSkipsHiddenOptions(t *testing.T) {
	h := newFakeHost("apple", "berry", "apricot", "cherry", "avocado")
	f := New(h, DefaultConfig(), nil)
	f.SetQuery("a")

	idx, _ := f.Active()
	assert.Equal(t, 0, idx)
	require.True(t, f.Next())
	idx, _ = f.Active()
	assert.Equal(t, 2, idx)
	require.True(t, f.Next())
	idx, _ = f.Active()
	assert.Equal(t, 4, idx)
	assert.False(t, f.Next(), "no wrap past the last visible option")
	require.True(t, f.Prev())
	idx, _ = f.Active()
	assert.Equal(t, 2, idx)

	assert.False(t, f.SetActive(1), "hidden option cannot become active")
	assert.True(t, f.SetActive(4))
}

func TestStepAndBounds(t *testing.T) {
	h := newFakeHost(numbers...)
	f := New(h, DefaultConfig(), nil)
	f.SetQuery("")

	assert.True(t, f.Step(3))
	idx, _ := f.Active()
	assert.Equal(t, 3, idx)
	assert.True(t, f.Step(10))
	idx, _ = f.Active()
	assert.Equal(t, 6, idx)
	assert.True(t, f.Step(-100))
	idx, _ = f.Active()
	assert.Equal(t, 0, idx)
	assert.False(t, f.Step(0))

	assert.True(t, f.Last())
	idx, _ = f.Active()
	assert.Equal(t, 6, idx)
	assert.True(t, f.First())
	idx, _ = f.Active()
	assert.Equal(t, 0, idx)
}

func TestActiveReassignedWhenHidden(t *testing.T) {
	h := newFakeHost("red", "green", "blue")
	f := New(h, DefaultConfig(), nil)
	require.True(t, f.SetActive(1))

	h.opts[1].Text = "gold"
	f.SetQuery("re")
	idx, ok := f.Active()
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	f.SetQuery("zzz")
	_, ok = f.Active()
	assert.False(t, ok)
	assert.False(t, f.Next())
	f.SetQuery("")
	idx, ok = f.Active()
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestBackwardStepWithoutActiveLandsOnLast(t *testing.T) {
	h := newFakeHost("a", "b", "c")
	f := New(h, DefaultConfig(), nil)
	f.SetQuery("z")
	_, ok := f.Active()
	require.False(t, ok)

	h.opts[1].setVisible(true)
	h.opts[2].setVisible(true)
	assert.True(t, f.Prev())
	idx, _ := f.Active()
	assert.Equal(t, 2, idx)
}
