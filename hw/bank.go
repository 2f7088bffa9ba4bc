// Package hw connects the keypad and LED ports to real or simulated GPIO.
package hw

// Line is a single digital GPIO line.
type Line interface {
	Out(high bool)
	In() bool
}

// Bank groups lines into a port. Bit i of a port value is the level of
// line i.
type Bank struct {
	lines []Line
}

// NewBank groups lines into a port, lowest bit first.
func NewBank(lines ...Line) *Bank {
	return &Bank{lines: lines}
}

func (b *Bank) Width() int {
	return len(b.lines)
}

// Write sets every line from the bits of v.
func (b *Bank) Write(v uint8) {
	for i, l := range b.lines {
		l.Out(v&(1<<i) != 0)
	}
}

// Read composes the current line levels.
func (b *Bank) Read() uint8 {
	var v uint8
	for i, l := range b.lines {
		if l.In() {
			v |= 1 << i
		}
	}
	return v
}

// Drive lets a Bank act as the keypad row port.
func (b *Bank) Drive(levels uint8) {
	b.Write(levels)
}

// Sample lets a Bank act as the keypad column port.
func (b *Bank) Sample() uint8 {
	return b.Read()
}
