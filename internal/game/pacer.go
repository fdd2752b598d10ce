package game

import "time"

// Pacer enforces the fixed tick rate. The driver calls Wait at the end of
// every tick; an explicit pacer object keeps the core testable without a
// real clock.
type Pacer interface {
	Wait()
	Stop()
}

// TickerPacer paces ticks with a time.Ticker at a fixed rate.
type TickerPacer struct {
	ticker *time.Ticker
}

// NewTickerPacer creates a pacer firing ticksPerSecond times per second.
func NewTickerPacer(ticksPerSecond int) *TickerPacer {
	return &TickerPacer{
		ticker: time.NewTicker(time.Second / time.Duration(ticksPerSecond)),
	}
}

// Wait blocks until the next tick boundary.
func (p *TickerPacer) Wait() {
	<-p.ticker.C
}

// Stop releases the underlying ticker.
func (p *TickerPacer) Stop() {
	p.ticker.Stop()
}
