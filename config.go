package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bast-security/keypad-display/display"
	"bast-security/keypad-display/hw"
)

type config struct {
	backend  string
	pins     hw.Pins
	settle   time.Duration
	confirm  bool
	policy   display.Policy
	mode     display.Mode
	buzz     time.Duration
	interval time.Duration

	mqttBroker  string
	mqttTopic   string
	metricsAddr string
	feed        string
}

// pinList is a comma-separated list of BCM pin numbers.
type pinList []int

func (p *pinList) String() string {
	s := make([]string, len(*p))
	for i, n := range *p {
		s[i] = strconv.Itoa(n)
	}
	return strings.Join(s, ",")
}

func (p *pinList) Set(v string) error {
	var pins []int
	for _, f := range strings.Split(v, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || n < 0 {
			return fmt.Errorf("bad pin %q", f)
		}
		pins = append(pins, n)
	}
	*p = pins
	return nil
}

func parseConfig(args []string) (config, error) {
	cfg := config{
		pins:   hw.DefaultPins,
		policy: display.Level,
		mode:   display.PreserveUpper,
	}
	rows, cols, leds := pinList(cfg.pins.Rows), pinList(cfg.pins.Cols), pinList(cfg.pins.LEDs)

	fs := flag.NewFlagSet("keypad-display", flag.ContinueOnError)
	fs.StringVar(&cfg.backend, "backend", "rpio", "GPIO backend: rpio, periph or sim")
	fs.Var(&rows, "rows", "BCM pins of the 4 keypad rows")
	fs.Var(&cols, "cols", "BCM pins of the 3 keypad columns")
	fs.Var(&leds, "leds", "BCM pins of the 4 or 8 LEDs, lowest bit first")
	fs.IntVar(&cfg.pins.Buzzer, "buzzer", 0, "BCM pin of a key click buzzer, 0 for none")
	fs.DurationVar(&cfg.buzz, "buzz", 20*time.Millisecond, "Length of the key click")
	fs.DurationVar(&cfg.settle, "settle", time.Microsecond, "Row settle time before sampling the columns")
	fs.BoolVar(&cfg.confirm, "confirm", true, "Re-read the columns before reporting a key")
	fs.Var(&cfg.policy, "policy", "Render policy: level or edge")
	fs.Var(&cfg.mode, "display", "Display mode: preserve or overwrite")
	fs.DurationVar(&cfg.interval, "interval", 0, "Pause between scans (sim defaults to 1ms)")
	fs.StringVar(&cfg.mqttBroker, "mqtt-broker", "", "MQTT broker to mirror the LEDs to, e.g. tcp://localhost:1883")
	fs.StringVar(&cfg.mqttTopic, "mqtt-topic", "keypad/leds", "MQTT topic for the mirrored LED value")
	fs.StringVar(&cfg.metricsAddr, "metrics-addr", "", "Address to serve Prometheus metrics on")
	fs.StringVar(&cfg.feed, "feed", "", "Command whose output lines are typed on the sim keypad")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	cfg.pins.Rows, cfg.pins.Cols, cfg.pins.LEDs = rows, cols, leds

	switch cfg.backend {
	case "rpio", "periph":
	case "sim":
		if cfg.interval == 0 {
			cfg.interval = time.Millisecond
		}
	default:
		return cfg, fmt.Errorf("unknown backend %q", cfg.backend)
	}
	if cfg.feed != "" && cfg.backend != "sim" {
		return cfg, fmt.Errorf("-feed needs the sim backend")
	}
	if len(cfg.pins.LEDs) == 0 {
		return cfg, fmt.Errorf("pins: need 4 or 8 LED pins")
	}
	if err := cfg.pins.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
