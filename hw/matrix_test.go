package hw

import "testing"

func TestMatrixSample(t *testing.T) {
	m := NewMatrix(4, 3)
	if m.Levels() != 0x0F {
		t.Fatalf("rows start at %04b, want all released", m.Levels())
	}
	if got := m.Sample(); got != 0b111 {
		t.Errorf("idle sample = %03b", got)
	}

	m.Press(2, 1)
	m.Drive(0x0F)
	if got := m.Sample(); got != 0b111 {
		t.Errorf("no row selected: sample = %03b", got)
	}
	m.Drive(0x0F &^ (1 << 1))
	if got := m.Sample(); got != 0b111 {
		t.Errorf("other row selected: sample = %03b", got)
	}
	m.Drive(0x0F &^ (1 << 2))
	if got := m.Sample(); got != 0b101 {
		t.Errorf("row 2 selected: sample = %03b, want 101", got)
	}

	m.Release(2, 1)
	if got := m.Sample(); got != 0b111 {
		t.Errorf("released: sample = %03b", got)
	}
	if m.Drives() != 3 {
		t.Errorf("drives = %d", m.Drives())
	}
}

type fakeLine struct{ high bool }

func (l *fakeLine) Out(high bool) { l.high = high }
func (l *fakeLine) In() bool      { return l.high }

func TestBank(t *testing.T) {
	lines := []*fakeLine{{}, {}, {}, {}}
	b := NewBank(lines[0], lines[1], lines[2], lines[3])

	b.Write(0b1010)
	if lines[0].high || !lines[1].high || lines[2].high || !lines[3].high {
		t.Errorf("lines = %v %v %v %v", lines[0].high, lines[1].high, lines[2].high, lines[3].high)
	}
	if got := b.Read(); got != 0b1010 {
		t.Errorf("Read = %04b", got)
	}

	b.Drive(0x0F &^ 1)
	if got := b.Sample(); got != 0b1110 {
		t.Errorf("Sample = %04b", got)
	}
	if b.Width() != 4 {
		t.Errorf("Width = %d", b.Width())
	}
}

func TestPinsValidate(t *testing.T) {
	if err := DefaultPins.Validate(); err != nil {
		t.Error(err)
	}

	bad := []Pins{
		{Rows: []int{1, 2, 3}, Cols: []int{4, 5, 6}},
		{Rows: []int{1, 2, 3, 4}, Cols: []int{5, 6}},
		{Rows: []int{1, 2, 3, 4}, Cols: []int{5, 6, 7}, LEDs: []int{8, 9}},
	}
	for i, p := range bad {
		if err := p.Validate(); err == nil {
			t.Errorf("pins %d validated", i)
		}
	}

	eight := Pins{Rows: []int{1, 2, 3, 4}, Cols: []int{5, 6, 7}, LEDs: []int{8, 9, 10, 11, 12, 13, 14, 15}}
	if err := eight.Validate(); err != nil {
		t.Error(err)
	}
}
