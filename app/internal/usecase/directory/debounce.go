package directory

import (
	"sync"
	"time"
)

// DefaultDebounceWindow is the quiescence period before a filter state is
// persisted.
const DefaultDebounceWindow = 300 * time.Millisecond

// Debouncer delivers only the last value triggered within a quiescence
// window. Earlier values are discarded. After Cancel no value is delivered.
type Debouncer[T any] struct {
	window time.Duration
	fn     func(T)

	mu       sync.Mutex
	timer    *time.Timer
	pending  T
	has      bool
	seq      uint64
	canceled bool
}

func NewDebouncer[T any](window time.Duration, fn func(T)) *Debouncer[T] {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Debouncer[T]{window: window, fn: fn}
}

func (d *Debouncer[T]) Trigger(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.canceled {
		return
	}
	d.pending = v
	d.has = true
	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() { d.fire(seq) })
}

func (d *Debouncer[T]) fire(seq uint64) {
	d.mu.Lock()
	v, ok := d.take(seq)
	d.mu.Unlock()
	if ok {
		d.fn(v)
	}
}

// Flush delivers a pending value immediately on the calling goroutine.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	v, ok := d.take(d.seq)
	d.mu.Unlock()
	if ok {
		d.fn(v)
	}
	return ok
}

// take must be called with d.mu held.
func (d *Debouncer[T]) take(seq uint64) (T, bool) {
	var zero T
	if d.canceled || !d.has || seq != d.seq {
		return zero, false
	}
	v := d.pending
	d.pending = zero
	d.has = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	return v, true
}

func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.has && !d.canceled
}

// Cancel drops any pending value and turns later triggers into no-ops.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.canceled = true
	d.has = false
	var zero T
	d.pending = zero
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
