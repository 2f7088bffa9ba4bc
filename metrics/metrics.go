// Package metrics exports keypad loop counters to Prometheus.
package metrics

import (
	"errors"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bast-security/keypad-display/keypad"
)

// Observer counts scans and renders. It implements poll.Observer.
type Observer struct {
	scans   prometheus.Counter
	keys    *prometheus.CounterVec
	renders *prometheus.CounterVec
	latched prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Observer {
	o := &Observer{
		scans: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "keypad_scans_total",
			Help: "Total keypad scans.",
		}),
		keys: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keypad_keys_detected_total",
			Help: "Scans that found a pressed key, by key.",
		}, []string{"key"}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "display_renders_total",
			Help: "Writes to the LED register, by key.",
		}, []string{"key"}),
		latched: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "display_latched_value",
			Help: "Value currently latched on the LED register.",
		}),
	}
	reg.MustRegister(o.scans, o.keys, o.renders, o.latched)
	return o
}

func (o *Observer) Scanned(r keypad.Result) {
	o.scans.Inc()
	if code, ok := r.Code(); ok {
		o.keys.WithLabelValues(code.String()).Inc()
	}
}

func (o *Observer) Rendered(code keypad.Code, latched uint8) {
	o.renders.WithLabelValues(code.String()).Inc()
	o.latched.Set(float64(latched))
}

// Serve exposes g on addr at /metrics in the background. The returned
// server is shut down by the caller.
func Serve(addr string, g prometheus.Gatherer) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Println("metrics:", err)
		}
	}()
	return srv
}
