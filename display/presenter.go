package display

import (
	"fmt"

	"bast-security/keypad-display/keypad"
)

// Policy decides whether a scan result is rendered.
type Policy int

const (
	// Level renders every Key result, including repeats of a held key.
	// NoKey leaves the display untouched.
	Level Policy = iota
	// Edge renders a key only when it differs from the previous scan
	// result, so a held key is shown once and shown again after a
	// release and re-press.
	Edge
)

func (p Policy) String() string {
	switch p {
	case Level:
		return "level"
	case Edge:
		return "edge"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// Set implements flag.Value.
func (p *Policy) Set(s string) error {
	switch s {
	case "level":
		*p = Level
	case "edge":
		*p = Edge
	default:
		return fmt.Errorf("unknown policy %q", s)
	}
	return nil
}

// State is the last-key memory threaded through successive Handle calls.
// The zero value has seen nothing.
type State struct {
	last keypad.Result
}

// Last returns the previous scan result seen under the Edge policy.
func (s State) Last() keypad.Result {
	return s.last
}

// Advance applies policy p to r without touching any display.
func (s State) Advance(p Policy, r keypad.Result) (next State, render bool) {
	if p == Edge {
		return State{last: r}, r.Pressed() && r != s.last
	}
	return s, r.Pressed()
}

// Presenter owns the display and applies one Policy to every scan result.
type Presenter struct {
	display *Display
	policy  Policy
}

// NewPresenter renders on d under policy p.
func NewPresenter(d *Display, p Policy) *Presenter {
	return &Presenter{display: d, policy: p}
}

func (p *Presenter) Policy() Policy {
	return p.policy
}

// Handle renders r if the policy asks for it and returns the state for
// the next call.
func (p *Presenter) Handle(st State, r keypad.Result) (State, bool) {
	next, render := st.Advance(p.policy, r)
	if render {
		code, _ := r.Code()
		p.display.Show(code)
	}
	return next, render
}

// Latched reads back the display register.
func (p *Presenter) Latched() uint8 {
	return p.display.Latched()
}
