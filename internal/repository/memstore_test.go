package repository

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreInsertionOrder(t *testing.T) {
	s := NewMemStore[string, int]()
	s.Put("a", 1)
	s.Put("b", 2)
	s.Put("c", 3)

	require.Equal(t, []int{1, 2, 3}, s.Snapshot())

	// overwriting keeps the original position
	s.Put("a", 10)
	assert.Equal(t, []int{10, 2, 3}, s.Snapshot())
	assert.Equal(t, 3, s.Len())
}

func TestMemStoreUpdateMissingKey(t *testing.T) {
	s := NewMemStore[string, int]()

	_, ok := s.Update("missing", func(v int) int {
		t.Fatal("fn must not run for a missing key")
		return v
	})
	assert.False(t, ok)
}

func TestMemStoreConcurrentDistinctKeys(t *testing.T) {
	s := NewMemStore[int, int]()
	const keys = 100
	for i := 0; i < keys; i++ {
		s.Put(i, 0)
	}

	var wg sync.WaitGroup
	for i := 0; i < keys; i++ {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			for n := 0; n < 20; n++ {
				s.Update(k, func(v int) int { return v + 1 })
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < keys; i++ {
		v, ok := s.Get(i)
		require.True(t, ok)
		assert.Equal(t, 20, v)
	}
}
