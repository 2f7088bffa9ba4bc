package hw

import (
	"fmt"
	"log"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

type periphLine struct {
	pin gpio.PinIO
}

func (l periphLine) Out(high bool) {
	if err := l.pin.Out(gpio.Level(high)); err != nil {
		log.Printf("gpio: drive %s: %v", l.pin, err)
	}
}

func (l periphLine) In() bool {
	return l.pin.Read() == gpio.High
}

// OpenPeriph configures the same ports as OpenRPi through periph.io, for
// boards go-rpio does not map.
func OpenPeriph(p Pins) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init periph host: %w", err)
	}

	lookup := func(n int) (gpio.PinIO, error) {
		pin := gpioreg.ByName(fmt.Sprintf("GPIO%d", n))
		if pin == nil {
			return nil, fmt.Errorf("unknown pin GPIO%d", n)
		}
		return pin, nil
	}
	output := func(n int, level gpio.Level) (Line, error) {
		pin, err := lookup(n)
		if err != nil {
			return nil, err
		}
		if err := pin.Out(level); err != nil {
			return nil, fmt.Errorf("configure %s as output: %w", pin, err)
		}
		return periphLine{pin}, nil
	}

	b := &Board{}
	var rows, cols, leds []Line
	for _, n := range p.Rows {
		l, err := output(n, gpio.High)
		if err != nil {
			return nil, err
		}
		rows = append(rows, l)
	}
	for _, n := range p.Cols {
		pin, err := lookup(n)
		if err != nil {
			return nil, err
		}
		if err := pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("configure %s as input: %w", pin, err)
		}
		cols = append(cols, periphLine{pin})
	}
	for _, n := range p.LEDs {
		l, err := output(n, gpio.Low)
		if err != nil {
			return nil, err
		}
		leds = append(leds, l)
	}
	if p.Buzzer != 0 {
		l, err := output(p.Buzzer, gpio.Low)
		if err != nil {
			return nil, err
		}
		b.Buzzer = l
	}

	b.Rows, b.Columns, b.LEDs = NewBank(rows...), NewBank(cols...), NewBank(leds...)
	return b, nil
}
