package hal

import (
	"context"
	"time"
)

// msTicks publishes a millisecond sequence number. Ticks the reader is too
// slow for are dropped; the sequence keeps counting real time.
type msTicks struct {
	ch chan uint64
}

func newMsTicks(ctx context.Context) *msTicks {
	t := &msTicks{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(time.Millisecond)
		defer ticker.Stop()
		var seq uint64
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			seq++
			select {
			case t.ch <- seq:
			default:
			}
		}
	}()
	return t
}

func (t *msTicks) Ticks() <-chan uint64 { return t.ch }
