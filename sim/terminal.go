// Package sim runs the keypad and LED panel in a terminal. Typing a key
// label presses the matching intersection of a simulated matrix; the LED
// register is drawn as a row of lamps.
package sim

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"bast-security/keypad-display/hw"
	"bast-security/keypad-display/keypad"
)

// DefaultHold is how long a typed key stays pressed. Terminals send no
// release events, and keyboard auto-repeat re-arms the hold while a key is
// kept down.
const DefaultHold = 300 * time.Millisecond

var (
	styleText    = tcell.StyleDefault
	styleKey     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHeld    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Reverse(true)
	styleLampOn  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleLampOff = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Terminal implements display.Register for the LEDs it draws.
type Terminal struct {
	screen tcell.Screen
	matrix *hw.Matrix
	keymap keypad.Keymap
	width  int
	hold   time.Duration

	mu     sync.Mutex
	value  uint8
	timers map[[2]int]*time.Timer
	// gens counts presses per key; a release timer only acts for the
	// press that armed it.
	gens map[[2]int]int
}

// New draws on an initialised screen. width is the number of LEDs, 4 or 8.
func New(screen tcell.Screen, m *hw.Matrix, km keypad.Keymap, width int, hold time.Duration) *Terminal {
	t := &Terminal{
		screen: screen,
		matrix: m,
		keymap: km,
		width:  width,
		hold:   hold,
		timers: make(map[[2]int]*time.Timer),
		gens:   make(map[[2]int]int),
	}
	t.draw()
	return t
}

func (t *Terminal) Read() uint8 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.value
}

func (t *Terminal) Write(v uint8) {
	t.mu.Lock()
	changed := t.value != v
	t.value = v
	t.mu.Unlock()
	if changed {
		t.draw()
	}
}

// Run handles terminal events until the user quits with Esc or Ctrl-C, or
// the screen is finalised.
func (t *Terminal) Run() {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if t.key(ev.Key(), ev.Rune()) {
				return
			}
		case *tcell.EventResize:
			t.screen.Sync()
			t.draw()
		}
	}
}

// key handles one key event and reports whether to quit.
func (t *Terminal) key(k tcell.Key, r rune) bool {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		code, ok := keypad.ParseLabel(r)
		if !ok {
			return false
		}
		if row, col, ok := t.keymap.Locate(code); ok {
			t.press(row, col)
		}
	}
	return false
}

func (t *Terminal) press(row, col int) {
	at := [2]int{row, col}

	t.mu.Lock()
	if timer, ok := t.timers[at]; ok {
		timer.Stop()
	}
	t.gens[at]++
	gen := t.gens[at]
	t.matrix.Press(row, col)
	t.timers[at] = time.AfterFunc(t.hold, func() { t.release(at, gen) })
	t.mu.Unlock()
	t.draw()
}

// release lets go of a key unless it was pressed again after the press
// numbered gen.
func (t *Terminal) release(at [2]int, gen int) {
	t.mu.Lock()
	if t.gens[at] != gen {
		t.mu.Unlock()
		return
	}
	t.matrix.Release(at[0], at[1])
	delete(t.timers, at)
	t.mu.Unlock()
	t.draw()
}

// lines renders the panel as text.
func (t *Terminal) lines() []string {
	var out []string
	out = append(out, "keypad (Esc to quit)", "")
	for r := 0; r < keypad.Rows; r++ {
		var b strings.Builder
		for c := 0; c < keypad.Cols; c++ {
			label := " "
			if code, ok := t.keymap[r][c].Code(); ok {
				label = code.String()
			}
			fmt.Fprintf(&b, "[%s]", label)
		}
		out = append(out, b.String())
	}

	v := t.Read()
	var lamps strings.Builder
	for i := t.width - 1; i >= 0; i-- {
		if v&(1<<i) != 0 {
			lamps.WriteRune('●')
		} else {
			lamps.WriteRune('○')
		}
	}
	out = append(out, "", fmt.Sprintf("leds %s  0x%02X", lamps.String(), v))
	return out
}

func (t *Terminal) draw() {
	t.screen.Clear()
	for y, line := range t.lines() {
		x := 0
		for _, ch := range line {
			t.screen.SetContent(x, y, ch, nil, t.styleAt(y, x, ch))
			x++
		}
	}
	t.screen.Show()
}

// styleAt colours held key caps and lit lamps.
func (t *Terminal) styleAt(y, x int, ch rune) tcell.Style {
	switch {
	case ch == '●':
		return styleLampOn
	case ch == '○':
		return styleLampOff
	}
	row := y - 2
	if row < 0 || row >= keypad.Rows {
		return styleText
	}
	col := x / 3
	if col >= keypad.Cols {
		return styleText
	}
	if t.matrix.Pressed(row, col) {
		return styleHeld
	}
	return styleKey
}

// Type presses the keys labelled in s one after another. Each key is held
// for the hold time and released for as long again before the next, so a
// scanner sees every key as a separate press. Type blocks until the last
// key is released.
func (t *Terminal) Type(s string) {
	for _, r := range s {
		code, ok := keypad.ParseLabel(r)
		if !ok {
			continue
		}
		row, col, ok := t.keymap.Locate(code)
		if !ok {
			continue
		}
		t.press(row, col)
		time.Sleep(2 * t.hold)
	}
}
