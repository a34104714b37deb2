package query

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerCoalescesBurst(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	var fired atomic.Int32
	for i := 0; i < 10; i++ {
		d.Trigger(func() { fired.Add(1) })
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestDebouncerLastTriggerWins(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	got := make(chan string, 1)
	d.Trigger(func() { got <- "first" })
	d.Trigger(func() { got <- "second" })

	select {
	case v := <-got:
		assert.Equal(t, "second", v)
	case <-time.After(200 * time.Millisecond):
		t.Fatal("debounced callback never fired")
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var fired atomic.Int32
	d.Trigger(func() { fired.Add(1) })
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestDebouncerDefaultDelay(t *testing.T) {
	d := NewDebouncer(0)
	assert.Equal(t, DefaultDebounce, d.delay)
}
