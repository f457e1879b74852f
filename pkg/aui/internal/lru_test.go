package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLRUEvictsLeastRecentlyUsed(t *testing.T) {
	var released []string
	c := NewLRUWithSize[string, string](2, func(v string) { released = append(released, v) })

	c.Set("a", "A")
	c.Set("b", "B")
	_, ok := c.Get("a")
	assert.True(t, ok)
	c.Set("c", "C")

	assert.Equal(t, []string{"B"}, released)
	_, ok = c.Get("b")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())

	c.Set("a", "A2")
	assert.Equal(t, []string{"B", "A"}, released, "replaced values are released")
	v, _ := c.Get("a")
	assert.Equal(t, "A2", v)
}

func TestLRUPurge(t *testing.T) {
	released := 0
	c := NewLRU[int, int](func(int) { released++ })
	for i := range 3 {
		c.Set(i, i)
	}
	c.Purge()
	assert.Equal(t, 3, released)
	assert.Zero(t, c.Len())
}
