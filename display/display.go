// Package display renders key codes on an LED output port.
package display

import (
	"fmt"

	"bast-security/keypad-display/keypad"
)

// Register is the LED output port.
type Register interface {
	Read() uint8
	Write(v uint8)
}

// Mode selects how a key code is merged into the register.
type Mode int

const (
	// PreserveUpper writes the low nibble and keeps the upper nibble the
	// port already held.
	PreserveUpper Mode = iota
	// Overwrite writes the whole register.
	Overwrite
)

func (m Mode) String() string {
	switch m {
	case PreserveUpper:
		return "preserve"
	case Overwrite:
		return "overwrite"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Set implements flag.Value.
func (m *Mode) Set(s string) error {
	switch s {
	case "preserve":
		*m = PreserveUpper
	case "overwrite":
		*m = Overwrite
	default:
		return fmt.Errorf("unknown display mode %q", s)
	}
	return nil
}

// Display owns the LED register.
type Display struct {
	reg  Register
	mode Mode
}

func New(reg Register, mode Mode) *Display {
	return &Display{reg: reg, mode: mode}
}

// Show latches code and returns the value written.
func (d *Display) Show(code keypad.Code) uint8 {
	v := uint8(code)
	if d.mode == PreserveUpper {
		v = d.reg.Read()&0xF0 | v&0x0F
	}
	d.reg.Write(v)
	return v
}

// Latched reads back the register.
func (d *Display) Latched() uint8 {
	return d.reg.Read()
}

type tee struct {
	primary Register
	mirrors []Register
}

// Tee writes to primary and every mirror, and reads from primary.
func Tee(primary Register, mirrors ...Register) Register {
	if len(mirrors) == 0 {
		return primary
	}
	return &tee{primary: primary, mirrors: mirrors}
}

func (t *tee) Read() uint8 {
	return t.primary.Read()
}

func (t *tee) Write(v uint8) {
	t.primary.Write(v)
	for _, m := range t.mirrors {
		m.Write(v)
	}
}
