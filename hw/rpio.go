package hw

import (
	"fmt"

	"github.com/stianeikeland/go-rpio"
)

type rpioLine rpio.Pin

func (l rpioLine) Out(high bool) {
	if high {
		rpio.Pin(l).High()
	} else {
		rpio.Pin(l).Low()
	}
}

func (l rpioLine) In() bool {
	return rpio.Pin(l).Read() == rpio.High
}

// OpenRPi maps the Pi GPIO registers and configures the pins: rows as
// outputs released HIGH, columns as pulled-up inputs, LEDs and buzzer as
// outputs driven LOW.
func OpenRPi(p Pins) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("open gpio: %w", err)
	}

	output := func(n int, high bool) Line {
		pin := rpio.Pin(n)
		pin.Output()
		rpioLine(pin).Out(high)
		return rpioLine(pin)
	}

	b := &Board{close: rpio.Close}
	var rows, cols, leds []Line
	for _, n := range p.Rows {
		rows = append(rows, output(n, true))
	}
	for _, n := range p.Cols {
		pin := rpio.Pin(n)
		pin.Input()
		pin.PullUp()
		cols = append(cols, rpioLine(pin))
	}
	for _, n := range p.LEDs {
		leds = append(leds, output(n, false))
	}
	if p.Buzzer != 0 {
		b.Buzzer = output(p.Buzzer, false)
	}

	b.Rows, b.Columns, b.LEDs = NewBank(rows...), NewBank(cols...), NewBank(leds...)
	return b, nil
}
