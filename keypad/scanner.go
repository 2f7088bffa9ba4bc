// Package keypad scans a 4x3 matrix keypad one row at a time.
//
// Rows are driven LOW to select them and released HIGH otherwise. Columns
// are pulled up, so a pressed key connecting the selected row reads LOW.
// Only one key is ever reported per scan: the first active intersection in
// row-major order wins.
package keypad

import "time"

// RowDriver sets the levels of the row lines. Bit r of levels is the level
// of row r; 1 is HIGH (released), 0 is LOW (selected).
type RowDriver interface {
	Drive(levels uint8)
}

// ColumnSensor samples the column lines. Bit c of the result is the level
// of column c; a pressed key reads 0.
type ColumnSensor interface {
	Sample() uint8
}

const rowsReleased uint8 = 1<<Rows - 1

// Scanner produces one Result per call to Scan.
type Scanner struct {
	rows    RowDriver
	cols    ColumnSensor
	keymap  Keymap
	settle  time.Duration
	confirm bool
	wait    func(time.Duration)
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithSettle holds each selected row for d before sampling the columns.
// Zero skips the wait.
func WithSettle(d time.Duration) Option {
	return func(s *Scanner) { s.settle = d }
}

// WithConfirm re-samples the columns before reporting a key, so a line that
// bounced back HIGH between the two reads is not reported.
func WithConfirm(on bool) Option {
	return func(s *Scanner) { s.confirm = on }
}

// WithWait replaces the busy-wait used for the settle delay.
func WithWait(wait func(time.Duration)) Option {
	return func(s *Scanner) { s.wait = wait }
}

// NewScanner scans keymap through the given ports. Without options there is
// no settle wait and no confirm read.
func NewScanner(rows RowDriver, cols ColumnSensor, keymap Keymap, opts ...Option) *Scanner {
	s := &Scanner{
		rows:   rows,
		cols:   cols,
		keymap: keymap,
		wait:   spin,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan selects each row in turn and returns the first pressed key found,
// or NoKey. Unassigned intersections are skipped.
func (s *Scanner) Scan() Result {
	for r := 0; r < Rows; r++ {
		s.rows.Drive(rowsReleased)
		s.rows.Drive(rowsReleased &^ (1 << r))
		if s.settle > 0 {
			s.wait(s.settle)
		}

		levels := s.cols.Sample()
		for c := 0; c < Cols; c++ {
			if levels&(1<<c) != 0 {
				continue
			}
			if s.confirm && s.cols.Sample()&(1<<c) != 0 {
				continue
			}
			if key := s.keymap[r][c]; key.Pressed() {
				return key
			}
		}
	}
	return NoKey
}

func spin(d time.Duration) {
	start := time.Now()
	for time.Since(start) < d {
	}
}
