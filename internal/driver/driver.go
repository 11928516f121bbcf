package driver

import (
	"context"
	"time"
)

const (
	DefaultTickLength = time.Second
)

// Ticker is anything evaluated once per scheduling pass. The world simulation
// and the automation engine both sit behind this.
type Ticker interface {
	Tick(context.Context) error
}

// Driver fires its tickers at a fixed real-time interval, in order, each
// pass running to completion before the next fires.
type Driver struct {
	tickLength time.Duration
	tickers    []Ticker
}

func New(tickers []Ticker, opts ...Opt) *Driver {
	d := &Driver{
		tickLength: DefaultTickLength,
		tickers:    tickers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *Driver) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			err := d.Tick(ctx)
			if err != nil {
				return err
			}
		}
	}
}

func (d *Driver) Tick(ctx context.Context) error {
	for _, t := range d.tickers {
		err := t.Tick(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}
