package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"bast-security/keypad-display/keypad"
)

func TestObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	o := New(reg)

	o.Scanned(keypad.NoKey)
	o.Scanned(keypad.Key(5))
	o.Scanned(keypad.Key(5))
	o.Scanned(keypad.Key(keypad.Hash))
	o.Rendered(5, 0x55)

	if got := testutil.ToFloat64(o.scans); got != 4 {
		t.Errorf("scans = %v, want 4", got)
	}
	if got := testutil.ToFloat64(o.keys.WithLabelValues("5")); got != 2 {
		t.Errorf("key 5 = %v, want 2", got)
	}
	if got := testutil.ToFloat64(o.keys.WithLabelValues("#")); got != 1 {
		t.Errorf("key # = %v, want 1", got)
	}
	if got := testutil.ToFloat64(o.renders.WithLabelValues("5")); got != 1 {
		t.Errorf("renders = %v, want 1", got)
	}
	if got := testutil.ToFloat64(o.latched); got != 0x55 {
		t.Errorf("latched = %v, want 85", got)
	}

	n, err := testutil.GatherAndCount(reg)
	if err != nil {
		t.Fatal(err)
	}
	// scans, latched, two key series, one render series.
	if n != 5 {
		t.Errorf("gathered %d series, want 5", n)
	}
}
