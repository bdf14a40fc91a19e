package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeap_createAndAddress(t *testing.T) {
	var h heap

	addr, err := h.create("x")
	require.NoError(t, err)
	assert.Equal(t, heapBase, addr)

	addr, err = h.create("y")
	require.NoError(t, err)
	assert.Equal(t, heapBase+1, addr)

	got, ok := h.addressOf("x")
	assert.True(t, ok)
	assert.Equal(t, heapBase, got)

	_, ok = h.addressOf("z")
	assert.False(t, ok)

	assert.True(t, h.defined("y"))
	assert.False(t, h.defined("z"))
}

func TestHeap_allot(t *testing.T) {
	var h heap
	assert.Equal(t, heapBase, h.frontier())

	require.NoError(t, h.allot(3))
	assert.Equal(t, heapBase+3, h.frontier())

	// the frontier never moves backward
	require.NoError(t, h.allot(-5))
	assert.Equal(t, heapBase+3, h.frontier())

	require.NoError(t, h.allot(0))
	assert.Equal(t, heapBase+3, h.frontier())
}

func TestHeap_getSet(t *testing.T) {
	var h heap
	require.NoError(t, h.allot(2))

	// unwritten cells read as zero
	v, err := h.get(heapBase)
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	require.NoError(t, h.set(heapBase+1, 42))
	v, err = h.get(heapBase + 1)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = h.get(heapBase - 1)
	assert.EqualError(t, err, "No such address 999")

	_, err = h.get(heapBase + 2)
	assert.EqualError(t, err, "No such address 1002")

	err = h.set(heapBase+2, 1)
	assert.EqualError(t, err, "No such address 1002")
}

func TestHeap_limit(t *testing.T) {
	h := heap{limit: 2}
	require.NoError(t, h.allot(2))

	err := h.allot(1)
	assert.EqualError(t, err, "Heap limit of 2 cells exceeded")

	_, err = h.create("x")
	assert.EqualError(t, err, "Heap limit of 2 cells exceeded")
	assert.False(t, h.defined("x"))
}
