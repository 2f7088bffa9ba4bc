package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"bast-security/keypad-display/display"
	"bast-security/keypad-display/hw"
	"bast-security/keypad-display/keypad"
)

// pinEntry collects keys until # and hands back the PIN. The * key is kept:
// the lock uses it to separate the system id from the one-time code.
type pinEntry struct {
	keys strings.Builder
}

func (e *pinEntry) add(code keypad.Code) (string, bool) {
	if code == keypad.Hash {
		pin := e.keys.String()
		e.keys.Reset()
		return pin, true
	}
	e.keys.WriteString(code.String())
	return "", false
}

func main() {

	//////////For Pin Pad//////////
	//		col 1	col 2	col 3
	// row 1	1	2	3
	// row 2	4	5	6
	// row 3	7	8	9
	// row 4	*	0	#

	settle := flag.Duration("settle", time.Microsecond, "Row settle time before sampling the columns")
	flag.Parse()

	log.SetPrefix("pin-reader: ")

	board, err := hw.OpenRPi(hw.Pins{Rows: hw.DefaultPins.Rows, Cols: hw.DefaultPins.Cols})
	if err != nil {
		log.Fatal(err)
	}
	defer board.Close()

	scanner := keypad.NewScanner(board.Rows, board.Columns, keypad.DefaultKeymap(),
		keypad.WithSettle(*settle),
		keypad.WithConfirm(true))

	var (
		state display.State
		entry pinEntry
	)

	for {
		r := scanner.Scan()

		var novel bool
		if state, novel = state.Advance(display.Edge, r); !novel {
			continue
		}

		code, _ := r.Code()
		if pin, done := entry.add(code); done {
			fmt.Println(pin)
		}
	}
}
