package mainloop

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_DrainRunsInOrder(t *testing.T) {
	q := NewQueue(nil)
	var got []int
	for i := 0; i < 3; i++ {
		n := i
		q.Post(func() { got = append(got, n) })
	}

	assert.Equal(t, 3, q.Drain())
	assert.Equal(t, []int{0, 1, 2}, got)
	assert.Equal(t, 0, q.Drain())
}

func TestQueue_PostDuringDrainRunsNextDrain(t *testing.T) {
	q := NewQueue(nil)
	second := false
	q.Post(func() {
		q.Post(func() { second = true })
	})

	assert.Equal(t, 1, q.Drain())
	assert.False(t, second)
	assert.Equal(t, 1, q.Drain())
	assert.True(t, second)
}

func TestQueue_ConcurrentPost(t *testing.T) {
	var woken atomic.Int32
	q := NewQueue(func() { woken.Add(1) })

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Post(func() {})
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, q.Drain())
	assert.Equal(t, int32(100), woken.Load())
}

func TestQueue_DestroyDropsWork(t *testing.T) {
	q := NewQueue(nil)
	ran := false
	q.Post(func() { ran = true })
	q.Destroy()
	q.Post(func() { ran = true })
	q.Post(nil)

	assert.Equal(t, 0, q.Drain())
	assert.False(t, ran)
}
