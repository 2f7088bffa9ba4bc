package hw

import "fmt"

// Pins lists BCM pin numbers for each port. A zero Buzzer means none.
type Pins struct {
	Rows   []int
	Cols   []int
	LEDs   []int
	Buzzer int
}

// DefaultPins is the wiring of the lock keypad header.
var DefaultPins = Pins{
	Rows: []int{10, 3, 4, 27},
	Cols: []int{22, 9, 17},
	LEDs: []int{5, 6, 13, 19},
}

// Validate checks the port widths the keypad and display expect.
// An empty LEDs list is allowed for readers that drive no display.
func (p Pins) Validate() error {
	if len(p.Rows) != 4 {
		return fmt.Errorf("pins: need 4 row pins, got %d", len(p.Rows))
	}
	if len(p.Cols) != 3 {
		return fmt.Errorf("pins: need 3 column pins, got %d", len(p.Cols))
	}
	if n := len(p.LEDs); n != 0 && n != 4 && n != 8 {
		return fmt.Errorf("pins: need 4 or 8 LED pins, got %d", n)
	}
	return nil
}

// Board is an opened set of ports.
type Board struct {
	Rows    *Bank
	Columns *Bank
	LEDs    *Bank
	Buzzer  Line

	close func() error
}

func (b *Board) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}
