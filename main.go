package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"

	"bast-security/keypad-display/display"
	"bast-security/keypad-display/hw"
	"bast-security/keypad-display/keypad"
	"bast-security/keypad-display/metrics"
	"bast-security/keypad-display/mqttled"
	"bast-security/keypad-display/poll"
	"bast-security/keypad-display/sim"
)

func main() {
	log.SetPrefix("keypad-display: ")

	cfg, err := parseConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

// ports are the three GPIO ports the loop drives, plus an optional buzzer.
type ports struct {
	rows   keypad.RowDriver
	cols   keypad.ColumnSensor
	leds   display.Register
	buzzer hw.Line
}

func run(ctx context.Context, cfg config) error {
	switch cfg.backend {
	case "sim":
		return runSim(ctx, cfg)
	case "periph":
		board, err := hw.OpenPeriph(cfg.pins)
		if err != nil {
			return err
		}
		defer board.Close()
		return runLoop(ctx, cfg, boardPorts(board))
	default:
		board, err := hw.OpenRPi(cfg.pins)
		if err != nil {
			return err
		}
		defer board.Close()
		return runLoop(ctx, cfg, boardPorts(board))
	}
}

func boardPorts(b *hw.Board) ports {
	return ports{rows: b.Rows, cols: b.Columns, leds: b.LEDs, buzzer: b.Buzzer}
}

func runSim(ctx context.Context, cfg config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	// The screen owns the terminal from here on.
	log.SetOutput(io.Discard)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	matrix := hw.NewMatrix(keypad.Rows, keypad.Cols)
	term := sim.New(screen, matrix, keypad.DefaultKeymap(), len(cfg.pins.LEDs), sim.DefaultHold)
	go func() {
		term.Run()
		cancel()
	}()

	if cfg.feed != "" {
		if _, err := startFeed(ctx, cfg.feed, term.Type); err != nil {
			return err
		}
	}

	return runLoop(ctx, cfg, ports{rows: matrix, cols: matrix, leds: term})
}

func runLoop(ctx context.Context, cfg config, p ports) error {
	if err := keypad.DefaultKeymap().Validate(); err != nil {
		return err
	}

	leds := p.leds
	if cfg.mqttBroker != "" {
		mirror, disconnect, err := mqttled.Dial(cfg.mqttBroker, cfg.mqttTopic)
		if err != nil {
			return err
		}
		defer disconnect()
		leds = display.Tee(leds, mirror)
	}

	scanner := keypad.NewScanner(p.rows, p.cols, keypad.DefaultKeymap(),
		keypad.WithSettle(cfg.settle),
		keypad.WithConfirm(cfg.confirm))
	presenter := display.NewPresenter(display.New(leds, cfg.mode), cfg.policy)

	opts := []poll.Option{poll.WithInterval(cfg.interval)}
	if cfg.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		opts = append(opts, poll.WithObserver(metrics.New(reg)))
		srv := metrics.Serve(cfg.metricsAddr, reg)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()
	}
	if p.buzzer != nil {
		opts = append(opts, poll.WithObserver(&clicker{pin: p.buzzer, dur: cfg.buzz}))
	}

	log.Printf("scanning with %s policy, %s display, settle %s", cfg.policy, cfg.mode, cfg.settle)
	return poll.New(scanner, presenter, opts...).Run(ctx)
}
