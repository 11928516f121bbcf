package driver

import (
	"context"
	"fmt"
	"testing"

	"github.com/pixil98/go-testutil"
)

type countingTicker struct {
	ticks int
	err   error
}

func (c *countingTicker) Tick(context.Context) error {
	c.ticks++
	return c.err
}

func TestDriver_TickRunsAllInOrder(t *testing.T) {
	var order []string
	first := tickFunc(func() error { order = append(order, "first"); return nil })
	second := tickFunc(func() error { order = append(order, "second"); return nil })

	d := New([]Ticker{first, second})

	err := d.Tick(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "calls", len(order), 2)
	testutil.AssertEqual(t, "first", order[0], "first")
	testutil.AssertEqual(t, "second", order[1], "second")
}

func TestDriver_TickStopsOnError(t *testing.T) {
	failing := &countingTicker{err: fmt.Errorf("boom")}
	after := &countingTicker{}

	d := New([]Ticker{failing, after})

	err := d.Tick(context.Background())
	testutil.AssertErrorContains(t, err, "boom")
	testutil.AssertEqual(t, "later ticker skipped", after.ticks, 0)
}

func TestDriver_StartStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := New([]Ticker{&countingTicker{}})

	err := d.Start(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

type tickFunc func() error

func (f tickFunc) Tick(context.Context) error { return f() }
