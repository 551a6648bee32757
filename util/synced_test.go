package util

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeCounter(t *testing.T) {
	c := NewSafeIntWithValue(5)
	assert.Equal(t, 5, c.Value())

	c.Set(42)
	assert.Equal(t, 42, c.Value())

	// Concurrent readers see one of the written values, never garbage.
	c.Set(0)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := c.Value()
			assert.True(t, v == 0 || v == 1)
		}()
	}
	c.Set(1)
	wg.Wait()
	assert.Equal(t, 1, c.Value())
}

func TestSafeFlag(t *testing.T) {
	f := NewSafeBool()
	assert.False(t, f.Value())

	f.Set(true)
	assert.True(t, f.Value())

	f.Set(false)
	assert.False(t, f.Value())

	// Concurrent sets settle on the last write.
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Set(true)
		}()
	}
	wg.Wait()
	assert.True(t, f.Value())
}
