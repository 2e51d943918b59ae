package mainloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoalescerMergesBurstIntoSingleCallback(t *testing.T) {
	q := NewQueue(nil)
	c := NewCoalescer(q.Post)

	value := 0
	for i := 1; i <= 5; i++ {
		v := i
		c.Post("redraw", func() { value = v })
	}

	require.Equal(t, 1, q.Len())
	assert.True(t, c.Scheduled("redraw"))
	q.Drain()
	assert.False(t, c.Scheduled("redraw"))
	assert.Equal(t, 5, value, "latest callback runs")
}

func TestCoalescerKeysAreIndependent(t *testing.T) {
	q := NewQueue(nil)
	c := NewCoalescer(q.Post)

	var ran []string
	c.Post("redraw", func() { ran = append(ran, "redraw") })
	c.Post("status", func() { ran = append(ran, "status") })

	assert.Equal(t, 2, q.Drain())
	assert.Equal(t, []string{"redraw", "status"}, ran)

	// the key is free again after running
	c.Post("redraw", func() { ran = append(ran, "redraw") })
	assert.Equal(t, 1, q.Len())
}

func TestCoalescerDropsWorkAfterDestroy(t *testing.T) {
	q := NewQueue(nil)
	c := NewCoalescer(q.Post)

	ran := false
	c.Post("redraw", func() { ran = true })
	c.Destroy()

	require.Equal(t, 1, q.Drain())
	assert.False(t, ran, "queued work is dropped after destroy")

	c.Post("redraw", func() { ran = true })
	assert.Equal(t, 0, q.Len())
}

func TestNewCoalescerPanicsOnNilPost(t *testing.T) {
	assert.Panics(t, func() { _ = NewCoalescer(nil) })
}
