package swap

import (
	"bytes"
	"errors"
	"testing"

	"spincube/hal"
)

type fakeSurface struct {
	bufs     [2][]byte
	shown    hal.BufferID
	failNext bool
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{bufs: [2][]byte{make([]byte, 16), make([]byte, 16)}}
}

func (f *fakeSurface) ClearBuffer(id hal.BufferID) {
	for i := range f.bufs[id] {
		f.bufs[id][i] = 0
	}
}

func (f *fakeSurface) SwapTo(id hal.BufferID) error {
	if f.failNext {
		f.failNext = false
		return errors.New("bus error")
	}
	f.shown = id
	return nil
}

func fill(f *fakeSurface, id hal.BufferID, v byte) {
	for i := range f.bufs[id] {
		f.bufs[id][i] = v
	}
}

func TestActiveUntouchedBetweenCommits(t *testing.T) {
	f := newFakeSurface()
	w := New(f, 0)

	for frame := byte(1); frame < 10; frame++ {
		snap := append([]byte(nil), f.bufs[f.shown]...)
		w.DrawIntoInactive(func(id hal.BufferID) {
			if id == f.shown {
				t.Fatalf("frame %d: drawing into shown buffer", frame)
			}
			fill(f, id, frame)
		})
		if !bytes.Equal(snap, f.bufs[f.shown]) {
			t.Fatalf("frame %d: shown buffer changed before commit", frame)
		}
		if err := w.Commit(); err != nil {
			t.Fatalf("commit: %v", err)
		}
		if f.shown != w.Active() {
			t.Fatalf("shown=%d active=%d", f.shown, w.Active())
		}
		if f.bufs[f.shown][0] != frame {
			t.Fatalf("shown frame %d, want %d", f.bufs[f.shown][0], frame)
		}
	}
	if w.Swaps() != 9 {
		t.Fatalf("swaps=%d", w.Swaps())
	}
}

func TestCommitWithoutDraw(t *testing.T) {
	w := New(newFakeSurface(), 1)
	if err := w.Commit(); !errors.Is(err, ErrNoFrame) {
		t.Fatalf("err=%v", err)
	}
	w.DrawIntoInactive(nil)
	if err := w.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := w.Commit(); !errors.Is(err, ErrNoFrame) {
		t.Fatalf("double commit err=%v", err)
	}
}

func TestFailedSwapKeepsRoles(t *testing.T) {
	f := newFakeSurface()
	w := New(f, 0)
	w.DrawIntoInactive(func(id hal.BufferID) { fill(f, id, 7) })
	f.failNext = true
	if err := w.Commit(); err == nil {
		t.Fatalf("expected error")
	}
	if w.Active() != 0 || f.shown != 0 {
		t.Fatalf("roles changed on failure")
	}
	if err := w.Commit(); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if w.Active() != 1 {
		t.Fatalf("active=%d after retry", w.Active())
	}
}

func TestPanickingBuildNeverShown(t *testing.T) {
	f := newFakeSurface()
	w := New(f, 0)
	func() {
		defer func() { _ = recover() }()
		w.DrawIntoInactive(func(hal.BufferID) { panic("boom") })
	}()
	if err := w.Commit(); !errors.Is(err, ErrNoFrame) {
		t.Fatalf("half frame committed: %v", err)
	}
}
