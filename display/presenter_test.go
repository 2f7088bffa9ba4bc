package display

import (
	"testing"

	"bast-security/keypad-display/hw"
	"bast-security/keypad-display/keypad"
)

func newPresenter(policy Policy, mode Mode, initial uint8) (*Presenter, *hw.Latch) {
	reg := hw.NewLatch(initial)
	return NewPresenter(New(reg, mode), policy), reg
}

func TestLevelKeepsLastKey(t *testing.T) {
	p, reg := newPresenter(Level, Overwrite, 0)

	var st State
	st, _ = p.Handle(st, keypad.Key(5))
	_, rendered := p.Handle(st, keypad.NoKey)
	if rendered {
		t.Error("NoKey rendered")
	}
	if reg.Read() != 5 {
		t.Errorf("display = %d, want 5", reg.Read())
	}
}

func TestLevelRepeats(t *testing.T) {
	p, reg := newPresenter(Level, Overwrite, 0)

	var st State
	for i := 0; i < 2; i++ {
		var rendered bool
		st, rendered = p.Handle(st, keypad.Key(5))
		if !rendered {
			t.Errorf("handle %d not rendered", i)
		}
		if reg.Read() != 5 {
			t.Errorf("handle %d: display = %d, want 5", i, reg.Read())
		}
	}
	if reg.Writes() != 2 {
		t.Errorf("got %d writes, want 2", reg.Writes())
	}
}

func TestLevelNeverClears(t *testing.T) {
	p, reg := newPresenter(Level, PreserveUpper, 0x97)

	var st State
	for i := 0; i < 5; i++ {
		st, _ = p.Handle(st, keypad.NoKey)
	}
	if reg.Writes() != 0 || reg.Read() != 0x97 {
		t.Errorf("display = %#02x after %d writes", reg.Read(), reg.Writes())
	}
}

func TestEdgeRendersOnTransition(t *testing.T) {
	p, reg := newPresenter(Edge, Overwrite, 0)

	steps := []struct {
		in      keypad.Result
		render  bool
		display uint8
	}{
		{keypad.NoKey, false, 0},
		{keypad.Key(5), true, 5},
		{keypad.Key(5), false, 5},
		{keypad.Key(5), false, 5},
		{keypad.Key(6), true, 6},
		{keypad.NoKey, false, 6},
		{keypad.Key(6), true, 6},
		{keypad.NoKey, false, 6},
		{keypad.Key(0), true, 0},
	}

	var st State
	for i, s := range steps {
		var rendered bool
		st, rendered = p.Handle(st, s.in)
		if rendered != s.render {
			t.Errorf("step %d (%v): rendered %v, want %v", i, s.in, rendered, s.render)
		}
		if reg.Read() != s.display {
			t.Errorf("step %d (%v): display %d, want %d", i, s.in, reg.Read(), s.display)
		}
		if st.Last() != s.in {
			t.Errorf("step %d: last %v, want %v", i, st.Last(), s.in)
		}
	}
	if reg.Writes() != 4 {
		t.Errorf("got %d writes, want 4", reg.Writes())
	}
}

func TestAdvanceIsPure(t *testing.T) {
	st, render := State{}.Advance(Edge, keypad.Key(1))
	if !render || st.Last() != keypad.Key(1) {
		t.Errorf("first press: render %v, last %v", render, st.Last())
	}
	if _, render := st.Advance(Edge, keypad.Key(1)); render {
		t.Error("held key rendered again")
	}
	if _, render := st.Advance(Level, keypad.Key(1)); !render {
		t.Error("level policy suppressed a held key")
	}
}

func TestPolicyFlag(t *testing.T) {
	var p Policy
	if err := p.Set("edge"); err != nil || p != Edge {
		t.Errorf("Set(edge) = %v, policy %v", err, p)
	}
	if err := p.Set("level"); err != nil || p != Level {
		t.Errorf("Set(level) = %v, policy %v", err, p)
	}
	if err := p.Set("debounce"); err == nil {
		t.Error("Set(debounce) succeeded")
	}
}
