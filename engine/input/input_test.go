package input

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"spincube/hal"
)

type fakeKeyboard struct {
	mu    sync.Mutex
	state hal.KeyState
	reads int
}

func (k *fakeKeyboard) KeyState() hal.KeyState {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.reads++
	return k.state
}

func (k *fakeKeyboard) set(codes ...hal.KeyCode) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.state = hal.KeyState{}
	for _, c := range codes {
		k.state.Press(c)
	}
	if len(codes) == 0 {
		k.state[0] |= 1
	}
}

func TestHeldKeyFiresOnce(t *testing.T) {
	k := &fakeKeyboard{}
	d := NewDispatcher(k, nil)

	k.set(hal.KeySpace)
	if got := slices.Collect(d.Poll()); !slices.Equal(got, []Command{CmdPause}) {
		t.Fatalf("first poll=%v", got)
	}
	for i := 0; i < 5; i++ {
		if got := slices.Collect(d.Poll()); len(got) != 0 {
			t.Fatalf("held poll %d=%v", i, got)
		}
	}

	k.set()
	if got := slices.Collect(d.Poll()); len(got) != 0 {
		t.Fatalf("release poll=%v", got)
	}
	if d.Latched() {
		t.Fatalf("latch not cleared on release")
	}

	k.set(hal.KeySpace)
	if got := slices.Collect(d.Poll()); !slices.Equal(got, []Command{CmdPause}) {
		t.Fatalf("re-press poll=%v", got)
	}
}

func TestChordYieldsInBindingOrder(t *testing.T) {
	k := &fakeKeyboard{}
	d := NewDispatcher(k, nil)
	k.set(hal.KeyEscape, hal.Key2, hal.KeySpace)
	got := slices.Collect(d.Poll())
	want := []Command{CmdPause, CmdModePoints, CmdExit}
	if !slices.Equal(got, want) {
		t.Fatalf("chord=%v want %v", got, want)
	}
}

func TestSecondKeyWhileHeldIgnored(t *testing.T) {
	k := &fakeKeyboard{}
	d := NewDispatcher(k, nil)
	k.set(hal.Key1)
	slices.Collect(d.Poll())
	k.set(hal.Key1, hal.Key2)
	if got := slices.Collect(d.Poll()); len(got) != 0 {
		t.Fatalf("added key fired: %v", got)
	}
}

func TestEarlyBreakStillLatches(t *testing.T) {
	k := &fakeKeyboard{}
	d := NewDispatcher(k, nil)
	k.set(hal.KeySpace, hal.Key1)
	var got []Command
	for c := range d.Poll() {
		got = append(got, c)
		break
	}
	if len(got) != 1 || got[0] != CmdPause {
		t.Fatalf("got=%v", got)
	}
	if !d.Latched() {
		t.Fatalf("not latched after break")
	}
	if got := slices.Collect(d.Poll()); len(got) != 0 {
		t.Fatalf("refired after break: %v", got)
	}
}

func TestPollSamplesOnce(t *testing.T) {
	k := &fakeKeyboard{}
	d := NewDispatcher(k, nil)
	k.set(hal.Key1, hal.Key2)
	seq := d.Poll()
	k.set()
	got := slices.Collect(seq)
	if !slices.Equal(got, []Command{CmdModeLines, CmdModePoints}) {
		t.Fatalf("got=%v", got)
	}
	if k.reads != 1 {
		t.Fatalf("reads=%d", k.reads)
	}
}

func TestUnboundKeyLatches(t *testing.T) {
	k := &fakeKeyboard{}
	d := NewDispatcher(k, nil)
	k.set(hal.KeyA)
	if got := slices.Collect(d.Poll()); len(got) != 0 {
		t.Fatalf("unbound key fired %v", got)
	}
	k.set(hal.KeyA, hal.KeySpace)
	if got := slices.Collect(d.Poll()); len(got) != 0 {
		t.Fatalf("space fired while A held: %v", got)
	}
}

func TestLatchSwallowsStartKey(t *testing.T) {
	k := &fakeKeyboard{}
	d := NewDispatcher(k, nil)
	k.set(hal.KeySpace)
	d.Latch()
	if got := slices.Collect(d.Poll()); len(got) != 0 {
		t.Fatalf("start key fired: %v", got)
	}
}

func TestWaitForKey(t *testing.T) {
	k := &fakeKeyboard{}
	k.set()
	go func() {
		time.Sleep(5 * time.Millisecond)
		k.set(hal.KeyEnter)
	}()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	ks, err := WaitForKey(ctx, k, time.Millisecond)
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	if !ks.Down(hal.KeyEnter) {
		t.Fatalf("returned state missing enter")
	}
}

func TestWaitForKeyCancel(t *testing.T) {
	k := &fakeKeyboard{}
	k.set()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := WaitForKey(ctx, k, time.Millisecond); !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v", err)
	}
}

func TestCommandString(t *testing.T) {
	if CmdZoomIn.String() != "zoom-in" || Command(200).String() != "unknown" {
		t.Fatalf("names wrong")
	}
}
