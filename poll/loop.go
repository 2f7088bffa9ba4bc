// Package poll runs the scan/render loop.
package poll

import (
	"context"
	"time"

	"bast-security/keypad-display/display"
	"bast-security/keypad-display/keypad"
)

// Scanner produces one scan result per call, as keypad.Scanner does.
type Scanner interface {
	Scan() keypad.Result
}

// Observer is told about every scan and every render. Observers run on the
// loop and must not block.
type Observer interface {
	Scanned(r keypad.Result)
	Rendered(code keypad.Code, latched uint8)
}

// Loop composes a scanner and a presenter with no buffering in between.
type Loop struct {
	scanner   Scanner
	presenter *display.Presenter
	observers []Observer
	interval  time.Duration
	state     display.State
}

// Option configures a Loop.
type Option func(*Loop)

// WithObserver adds o to the observers, called in the order added.
func WithObserver(o Observer) Option {
	return func(l *Loop) { l.observers = append(l.observers, o) }
}

// WithInterval pauses between iterations. Zero polls back to back.
func WithInterval(d time.Duration) Option {
	return func(l *Loop) { l.interval = d }
}

// New builds a loop that starts from the zero display.State.
func New(s Scanner, p *display.Presenter, opts ...Option) *Loop {
	l := &Loop{scanner: s, presenter: p}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Step runs one scan and hands the result to the presenter.
func (l *Loop) Step() keypad.Result {
	r := l.scanner.Scan()
	for _, o := range l.observers {
		o.Scanned(r)
	}

	var rendered bool
	l.state, rendered = l.presenter.Handle(l.state, r)
	if rendered {
		code, _ := r.Code()
		latched := l.presenter.Latched()
		for _, o := range l.observers {
			o.Rendered(code, latched)
		}
	}
	return r
}

func (l *Loop) State() display.State {
	return l.state
}

// Run steps until ctx is done and returns ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	var tick *time.Ticker
	if l.interval > 0 {
		tick = time.NewTicker(l.interval)
		defer tick.Stop()
	}

	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		l.Step()
	}
}
