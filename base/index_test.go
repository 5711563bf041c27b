package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdIndex(t *testing.T) {
	// Null indexer
	var index *IdIndex
	assert.Zero(t, index.Size())
	// Create an indexer
	index = NewIdIndex()
	assert.Zero(t, index.Size())
	// Insert ids, some repeated
	assert.Equal(t, 0, index.GetOrInsert(100))
	assert.Equal(t, 1, index.GetOrInsert(200))
	assert.Equal(t, 2, index.GetOrInsert(400))
	assert.Equal(t, 0, index.GetOrInsert(100)) // repeat: index unchanged
	assert.Equal(t, 3, index.Size())
	assert.Equal(t, 0, index.Lookup(100))
	assert.Equal(t, 1, index.Lookup(200))
	assert.Equal(t, 2, index.Lookup(400))
	assert.Equal(t, Missing, index.Lookup(999))
	assert.Equal(t, int64(100), index.IdOf(0))
	assert.Equal(t, int64(200), index.IdOf(1))
	assert.Equal(t, int64(400), index.IdOf(2))
	assert.Equal(t, []int64{100, 200, 400}, index.Ids())
}

func TestIdIndex_RoundTrip(t *testing.T) {
	index := NewIdIndex()
	ids := []int64{42, -7, 1 << 40, 0, 42, 1 << 40}
	for _, id := range ids {
		index.GetOrInsert(id)
	}
	for _, id := range ids {
		i := index.Lookup(id)
		assert.NotEqual(t, Missing, i)
		assert.Equal(t, id, index.IdOf(i))
	}
	for i := 0; i < index.Size(); i++ {
		assert.Equal(t, i, index.Lookup(index.IdOf(i)))
	}
}
