package display

import (
	"testing"

	"bast-security/keypad-display/hw"
	"bast-security/keypad-display/keypad"
)

func TestShowMasking(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		initial uint8
		code    keypad.Code
		want    uint8
	}{
		{"preserve keeps upper nibble", PreserveUpper, 0x5F, keypad.Star, 0x5A},
		{"preserve drops upper bits of code", PreserveUpper, 0x30, 0xF7, 0x37},
		{"overwrite", Overwrite, 0x5F, keypad.Star, 0x0A},
		{"overwrite full byte", Overwrite, 0x00, 0xF7, 0xF7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := hw.NewLatch(tt.initial)
			if got := New(reg, tt.mode).Show(tt.code); got != tt.want {
				t.Errorf("Show returned %#02x, want %#02x", got, tt.want)
			}
			if got := reg.Read(); got != tt.want {
				t.Errorf("register = %#02x, want %#02x", got, tt.want)
			}
		})
	}
}

func TestTee(t *testing.T) {
	primary, mirror := hw.NewLatch(0x50), hw.NewLatch(0)
	d := New(Tee(primary, mirror), PreserveUpper)

	d.Show(3)
	if primary.Read() != 0x53 || mirror.Read() != 0x53 {
		t.Errorf("primary %#02x, mirror %#02x, want 0x53", primary.Read(), mirror.Read())
	}
	if d.Latched() != 0x53 {
		t.Errorf("Latched = %#02x", d.Latched())
	}

	if reg := Tee(primary); reg != Register(primary) {
		t.Error("Tee without mirrors should return primary")
	}
}

func TestModeFlag(t *testing.T) {
	var m Mode
	if err := m.Set("overwrite"); err != nil || m != Overwrite {
		t.Errorf("Set(overwrite) = %v, mode %v", err, m)
	}
	if err := m.Set("preserve"); err != nil || m != PreserveUpper {
		t.Errorf("Set(preserve) = %v, mode %v", err, m)
	}
	if err := m.Set("blink"); err == nil {
		t.Error("Set(blink) succeeded")
	}
	if Overwrite.String() != "overwrite" {
		t.Errorf("got %q", Overwrite.String())
	}
}
