package watcher

import (
	"github.com/stretchr/testify/assert"
	"go.uber.org/atomic"
	"testing"
	"time"
)

func TestDebouncer_Trigger(t *testing.T) {
	a := assert.New(t)

	t.Run("Burst runs the callback once", func(t *testing.T) {
		calls := atomic.NewInt32(0)
		sut := NewDebouncer(20 * time.Millisecond)

		for i := 0; i < 10; i++ {
			sut.Trigger(func() { calls.Inc() })
		}

		a.Eventually(func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
		time.Sleep(50 * time.Millisecond)
		a.Equal(int32(1), calls.Load())
	})
	t.Run("Only the last callback runs", func(t *testing.T) {
		last := atomic.NewInt32(0)
		sut := NewDebouncer(20 * time.Millisecond)

		for i := int32(1); i <= 3; i++ {
			value := i
			sut.Trigger(func() { last.Store(value) })
		}

		a.Eventually(func() bool { return last.Load() == 3 }, time.Second, 5*time.Millisecond)
	})
	t.Run("Cancel", func(t *testing.T) {
		calls := atomic.NewInt32(0)
		sut := NewDebouncer(20 * time.Millisecond)

		sut.Trigger(func() { calls.Inc() })
		sut.Cancel()

		time.Sleep(60 * time.Millisecond)
		a.Equal(int32(0), calls.Load())
	})
}

func TestNewDebouncer_Default(t *testing.T) {
	assert.Equal(t, DefaultDebounceDuration, NewDebouncer(0).Duration())
}
