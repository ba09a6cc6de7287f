package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStorageBasicOps(t *testing.T) {
	s := NewMemoryStorage[string, int]()

	s.Set("a", 1)
	s.Set("b", 2)
	s.Set("a", 3)

	v, ok := s.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, s.Count())

	assert.True(t, s.Delete("b"))
	assert.False(t, s.Delete("b"))
	_, ok = s.Get("b")
	assert.False(t, ok)
}

func TestMemoryStorageForEach(t *testing.T) {
	s := NewMemoryStorage[string, int]()
	s.Set("a", 1)
	s.Set("b", 2)
	s.Set("c", 3)

	visited := 0
	s.ForEach(func(key string, value int) bool {
		visited++
		return visited < 2
	})
	assert.Equal(t, 2, visited, "ForEach stops when the callback returns false")

	assert.Len(t, s.GetAll(), 3)
	assert.Len(t, s.GetAllValues(), 3)
}
