package terminal

import "time"

// Clock measures one game's playing time.
//
// It starts on the first move, freezes when the game ends and is reset for
// every new game. The zero value is not usable; call NewClock.
type Clock struct {
	now     func() time.Time
	started time.Time
	stopped time.Time
	running bool
	frozen  bool
}

// NewClock returns a stopped clock reading now. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Start begins timing. Calls after the first are no-ops until Reset.
func (c *Clock) Start() {
	if c.running || c.frozen {
		return
	}
	c.started = c.now()
	c.running = true
}

// Stop freezes the elapsed time.
func (c *Clock) Stop() {
	if !c.running {
		return
	}
	c.stopped = c.now()
	c.running = false
	c.frozen = true
}

// Reset returns the clock to zero.
func (c *Clock) Reset() {
	c.started = time.Time{}
	c.stopped = time.Time{}
	c.running = false
	c.frozen = false
}

// Elapsed returns the time played so far.
func (c *Clock) Elapsed() time.Duration {
	switch {
	case c.running:
		return c.now().Sub(c.started)
	case c.frozen:
		return c.stopped.Sub(c.started)
	default:
		return 0
	}
}
