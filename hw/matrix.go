package hw

import "sync"

// Matrix is an electrical model of a keypad matrix with pulled-up columns.
// A column reads LOW while a pressed key connects it to a row driven LOW.
// It is safe for concurrent use.
type Matrix struct {
	mu      sync.Mutex
	rows    int
	cols    int
	levels  uint8
	pressed map[[2]int]bool
	drives  int
}

// NewMatrix returns a matrix with no key pressed and every row released.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{
		rows:    rows,
		cols:    cols,
		levels:  uint8(1<<rows - 1),
		pressed: make(map[[2]int]bool),
	}
}

func (m *Matrix) Press(row, col int) {
	m.mu.Lock()
	m.pressed[[2]int{row, col}] = true
	m.mu.Unlock()
}

func (m *Matrix) Release(row, col int) {
	m.mu.Lock()
	delete(m.pressed, [2]int{row, col})
	m.mu.Unlock()
}

func (m *Matrix) ReleaseAll() {
	m.mu.Lock()
	m.pressed = make(map[[2]int]bool)
	m.mu.Unlock()
}

func (m *Matrix) Pressed(row, col int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pressed[[2]int{row, col}]
}

// Drive latches the row levels.
func (m *Matrix) Drive(levels uint8) {
	m.mu.Lock()
	m.levels = levels
	m.drives++
	m.mu.Unlock()
}

// Levels returns the row levels last driven.
func (m *Matrix) Levels() uint8 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.levels
}

// Drives counts Drive calls.
func (m *Matrix) Drives() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.drives
}

// Sample returns the column levels for the rows currently driven.
func (m *Matrix) Sample() uint8 {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := uint8(1<<m.cols - 1)
	for at := range m.pressed {
		if m.levels&(1<<at[0]) == 0 {
			v &^= 1 << at[1]
		}
	}
	return v
}

// Latch is a plain 8-bit output register.
type Latch struct {
	mu     sync.Mutex
	value  uint8
	writes int
}

func NewLatch(v uint8) *Latch {
	return &Latch{value: v}
}

func (l *Latch) Read() uint8 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.value
}

func (l *Latch) Write(v uint8) {
	l.mu.Lock()
	l.value = v
	l.writes++
	l.mu.Unlock()
}

// Writes counts Write calls.
func (l *Latch) Writes() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.writes
}
