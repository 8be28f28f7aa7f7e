package game

import "time"

// deferred is a single cancellable task that fires after a delay measured in
// simulation time. It is driven by Advance, so it runs on the same control
// flow as every other mutation and needs no locking.
type deferred struct {
	remaining time.Duration
	fn        func()
	active    bool
}

// schedule replaces any pending task.
func (d *deferred) schedule(delay time.Duration, fn func()) {
	d.remaining = delay
	d.fn = fn
	d.active = true
}

func (d *deferred) cancel() {
	d.active = false
	d.fn = nil
	d.remaining = 0
}

func (d *deferred) pending() bool {
	return d.active
}

// advance counts down by dt and runs the task once the delay has elapsed.
// It reports whether the task ran.
func (d *deferred) advance(dt time.Duration) bool {
	if !d.active {
		return false
	}
	d.remaining -= dt
	if d.remaining > 0 {
		return false
	}
	fn := d.fn
	d.cancel()
	if fn != nil {
		fn()
	}
	return true
}
