package tui

import (
	"time"

	"github.com/vovakirdan/hotdog-arcade/internal/core"
)

// Terminals send no key-up events, only a press followed by auto-repeats.
// A key counts as held for holdInitial after the press, which covers the
// keyboard's repeat delay; every repeat extends the hold by holdRepeat.
const (
	holdInitial = 500 * time.Millisecond
	holdRepeat  = 150 * time.Millisecond
)

// holdTracker derives the held-keys set from press events alone.
type holdTracker struct {
	until map[core.Action]time.Time
}

func newHoldTracker() *holdTracker {
	return &holdTracker{until: make(map[core.Action]time.Time)}
}

// press records a key event for a holdable action.
func (h *holdTracker) press(a core.Action, now time.Time) {
	deadline, held := h.until[a]
	if held && now.Before(deadline) {
		if next := now.Add(holdRepeat); next.After(deadline) {
			h.until[a] = next
		}
		return
	}
	h.until[a] = now.Add(holdInitial)
}

// release drops the action immediately.
func (h *holdTracker) release(a core.Action) {
	delete(h.until, a)
}

// apply marks every action still held at now and forgets expired ones.
func (h *holdTracker) apply(frame *core.InputFrame, now time.Time) {
	for a, deadline := range h.until {
		if now.Before(deadline) {
			frame.Hold(a)
		} else {
			delete(h.until, a)
		}
	}
}

// clear forgets all held keys.
func (h *holdTracker) clear() {
	for a := range h.until {
		delete(h.until, a)
	}
}
