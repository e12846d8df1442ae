// Package tui provides the Bubble Tea integration for the hotdog game.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	Time time.Time
	Loop uint64 // ID of the FrameLoop that scheduled it
}

var loopIDs atomic.Uint64

// FrameLoop re-posts one tick per frame until stopped.
// Ticks carry the loop ID, so a stale tick from a finished game is ignored.
type FrameLoop struct {
	id       uint64
	interval time.Duration
	stopped  atomic.Bool
}

// NewFrameLoop creates a loop running at tickRate frames per second.
func NewFrameLoop(tickRate int) *FrameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FrameLoop{
		id:       loopIDs.Add(1),
		interval: time.Second / time.Duration(tickRate),
	}
}

// Next schedules the next tick. Returns nil once the loop is stopped.
func (l *FrameLoop) Next() tea.Cmd {
	if l.stopped.Load() {
		return nil
	}
	id := l.id
	return tea.Tick(l.interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: id}
	})
}

// Owns reports whether msg was scheduled by this loop and the loop still runs.
func (l *FrameLoop) Owns(msg TickMsg) bool {
	return msg.Loop == l.id && !l.stopped.Load()
}

// Stop ends the loop. Ticks already in flight are dropped by Owns.
func (l *FrameLoop) Stop() {
	l.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (l *FrameLoop) Stopped() bool {
	return l.stopped.Load()
}

// Interval returns the time between ticks.
func (l *FrameLoop) Interval() time.Duration {
	return l.interval
}
