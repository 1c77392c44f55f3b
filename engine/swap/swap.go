// Package swap owns the active/inactive roles of a two-buffer display.
package swap

import (
	"errors"
	"fmt"

	"spincube/hal"
)

// ErrNoFrame is returned by Commit when nothing was drawn since the last swap.
var ErrNoFrame = errors.New("swap: no frame drawn")

// Surface is the part of the drawing backend the swapper drives.
type Surface interface {
	ClearBuffer(id hal.BufferID)
	SwapTo(id hal.BufferID) error
}

// Swapper guarantees the shown buffer is always a finished frame: drawing
// only ever targets the inactive buffer, and roles flip only in Commit.
type Swapper struct {
	s      Surface
	active hal.BufferID
	ready  bool
	swaps  uint64
}

// New assumes active is already on screen.
func New(s Surface, active hal.BufferID) *Swapper {
	return &Swapper{s: s, active: active & 1}
}

func (w *Swapper) Active() hal.BufferID   { return w.active }
func (w *Swapper) Inactive() hal.BufferID { return w.active.Other() }

// Swaps counts committed frames.
func (w *Swapper) Swaps() uint64 { return w.swaps }

// DrawIntoInactive clears the inactive buffer and hands it to build. If
// build panics the frame stays unready and is never shown.
func (w *Swapper) DrawIntoInactive(build func(id hal.BufferID)) {
	w.ready = false
	id := w.Inactive()
	w.s.ClearBuffer(id)
	if build != nil {
		build(id)
	}
	w.ready = true
}

// Commit shows the drawn frame and flips roles. On error the roles stay put
// and the frame remains ready for another attempt.
func (w *Swapper) Commit() error {
	if !w.ready {
		return ErrNoFrame
	}
	next := w.Inactive()
	if err := w.s.SwapTo(next); err != nil {
		return fmt.Errorf("swap: show buffer %d: %w", next, err)
	}
	w.active = next
	w.ready = false
	w.swaps++
	return nil
}
