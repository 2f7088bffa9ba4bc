package keypad

import "fmt"

// Matrix geometry of the pad.
const (
	Rows = 4
	Cols = 3
)

// Unassigned returns the marker for a keymap cell with no key behind it.
func Unassigned() Result {
	return Result{}
}

// Keymap maps row/column intersections to keys. Every cell holds either
// Key(code) or Unassigned().
type Keymap [Rows][Cols]Result

// DefaultKeymap returns the layout printed on the common 4x3 membrane pad:
//
//	      col 1  col 2  col 3
//	row 1   1      2      3
//	row 2   4      5      6
//	row 3   7      8      9
//	row 4   *      0      #
func DefaultKeymap() Keymap {
	return Keymap{
		{Key(1), Key(2), Key(3)},
		{Key(4), Key(5), Key(6)},
		{Key(7), Key(8), Key(9)},
		{Key(Star), Key(0), Key(Hash)},
	}
}

// DuplicateKeyError reports a code bound to two intersections.
type DuplicateKeyError struct {
	Code          Code
	First, Second [2]int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("keymap: key %s at row %d col %d already bound at row %d col %d",
		e.Code, e.Second[0], e.Second[1], e.First[0], e.First[1])
}

// Validate checks that no code is bound twice.
func (km Keymap) Validate() error {
	seen := make(map[Code][2]int, Rows*Cols)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			code, ok := km[r][c].Code()
			if !ok {
				continue
			}
			if at, dup := seen[code]; dup {
				return &DuplicateKeyError{Code: code, First: at, Second: [2]int{r, c}}
			}
			seen[code] = [2]int{r, c}
		}
	}
	return nil
}

// Locate returns the intersection a code is bound to.
func (km Keymap) Locate(code Code) (row, col int, ok bool) {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if km[r][c] == Key(code) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
