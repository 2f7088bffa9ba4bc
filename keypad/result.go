package keypad

import "fmt"

// Code is a logical key identifier as stored in a Keymap.
type Code uint8

// Auxiliary keys of the 4x3 pad.
const (
	Star Code = 0xA
	Hash Code = 0xB
)

// String returns the label printed on the key cap.
func (c Code) String() string {
	switch {
	case c <= 9:
		return string(rune('0' + c))
	case c == Star:
		return "*"
	case c == Hash:
		return "#"
	}
	return fmt.Sprintf("0x%02X", uint8(c))
}

// ParseLabel is the inverse of Code.String for the key cap labels.
func ParseLabel(r rune) (Code, bool) {
	switch {
	case r >= '0' && r <= '9':
		return Code(r - '0'), true
	case r == '*':
		return Star, true
	case r == '#':
		return Hash, true
	}
	return 0, false
}

// Result is the outcome of one scan: either Key(code) or NoKey.
// The zero value is NoKey.
type Result struct {
	code    Code
	pressed bool
}

// NoKey reports that no intersection was active.
var NoKey = Result{}

// Key returns the result for a located key.
func Key(c Code) Result {
	return Result{code: c, pressed: true}
}

// Code returns the key code and whether a key was found.
func (r Result) Code() (Code, bool) {
	return r.code, r.pressed
}

// Pressed reports whether r is Key(code) rather than NoKey.
func (r Result) Pressed() bool {
	return r.pressed
}

func (r Result) String() string {
	if !r.pressed {
		return "NoKey"
	}
	return "Key(" + r.code.String() + ")"
}
