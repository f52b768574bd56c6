package session

import (
	"sync"
	"time"
)

// Driver runs an Engine from its own one-second ticker, for hosts without
// an event loop of their own. Every engine access goes through the
// Driver's mutex, so commands and ticks never interleave. The ticker
// goroutine exists only while the engine is Running; Pause, Reset,
// completion and Close all tear it down.
type Driver struct {
	mu     sync.Mutex
	engine *Engine
	stop   chan struct{} // nil while not ticking
}

// NewDriver wraps engine. The engine must not be used directly afterwards.
func NewDriver(engine *Engine) *Driver {
	return &Driver{engine: engine}
}

// Start begins or resumes the session and arms the ticker.
func (d *Driver) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.engine.Start()
	d.armLocked()
}

// Pause freezes the session and stops the ticker.
func (d *Driver) Pause() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.engine.Pause()
	d.disarmLocked()
}

// Reset reinitializes the session and stops the ticker. A transition
// scheduled by a just-delivered tick cannot fire afterwards: the tick and
// the reset serialize on the same mutex.
func (d *Driver) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.engine.Reset()
	d.disarmLocked()
}

// SkipPhase ends the current phase early. If the skip completes the
// session the ticker stops.
func (d *Driver) SkipPhase() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.engine.SkipPhase()
	if d.engine.Snapshot().RunState != RunRunning {
		d.disarmLocked()
	}
}

// Snapshot returns the current session state.
func (d *Driver) Snapshot() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.engine.Snapshot()
}

// Close releases the ticker goroutine. The driver remains usable; Start
// re-arms it.
func (d *Driver) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.disarmLocked()
}

func (d *Driver) armLocked() {
	if d.stop != nil || d.engine.Snapshot().RunState != RunRunning {
		return
	}
	d.stop = make(chan struct{})
	go d.run(d.stop)
}

func (d *Driver) disarmLocked() {
	if d.stop != nil {
		close(d.stop)
		d.stop = nil
	}
}

func (d *Driver) run(stop chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			d.mu.Lock()
			if d.stop != stop {
				// Disarmed (or re-armed) while this tick was in flight.
				d.mu.Unlock()
				return
			}
			d.engine.Tick()
			if d.engine.Snapshot().RunState != RunRunning {
				d.disarmLocked()
			}
			d.mu.Unlock()
		}
	}
}
