package main

import (
	"sync"
	"time"

	"bast-security/keypad-display/display"
	"bast-security/keypad-display/hw"
	"bast-security/keypad-display/keypad"
)

// clicker pulses the buzzer once per key press, whatever the render
// policy. A held key does not click again. The pulse is ended by a timer so
// the scan loop never waits on it.
type clicker struct {
	pin hw.Line
	dur time.Duration

	state display.State

	mu    sync.Mutex
	timer *time.Timer
	gen   int
}

func (c *clicker) Scanned(r keypad.Result) {
	var pressed bool
	if c.state, pressed = c.state.Advance(display.Edge, r); pressed {
		c.pulse()
	}
}

func (c *clicker) Rendered(keypad.Code, uint8) {}

func (c *clicker) pulse() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
	}
	c.gen++
	gen := c.gen
	c.pin.Out(true)
	c.timer = time.AfterFunc(c.dur, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		// A newer pulse owns the pin.
		if c.gen == gen {
			c.pin.Out(false)
		}
	})
}
