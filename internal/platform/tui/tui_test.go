package tui

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hotdog-arcade/internal/core"
	"github.com/vovakirdan/hotdog-arcade/internal/registry"
	"github.com/vovakirdan/hotdog-arcade/internal/storage"
)

func init() {
	registry.Register("fake", func() registry.Game { return &fakeGame{} })
}

// fakeGame records every frame it is stepped with and reports a scripted outcome.
type fakeGame struct {
	frames  []core.InputFrame
	outcome core.Outcome
	resets  int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.frames = nil
	g.outcome = core.OutcomeNone
}
func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake", core.ColorDefault)
}
func (g *fakeGame) State() core.GameState {
	return core.GameState{Tick: len(g.frames), Outcome: g.outcome}
}
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) last(t *testing.T) core.InputFrame {
	t.Helper()
	if len(g.frames) == 0 {
		t.Fatal("game was never stepped")
	}
	return g.frames[len(g.frames)-1]
}

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(g *fakeGame, opts Options) GameModel {
	m := NewGameModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, opts)
	m.now = func() time.Time { return t0 }
	m.Init()
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func tick(t *testing.T, m GameModel, at time.Time) GameModel {
	t.Helper()
	m, _ = update(t, m, TickMsg{Time: at, Loop: m.loop.id})
	return m
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{runeKey('a'), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{runeKey('d'), core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{runeKey('w'), core.ActionJump, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{runeKey('e'), core.ActionFire, false},
		{runeKey('E'), core.ActionFire, false},
		{runeKey('r'), core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack, false},
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			got, isQuit := km.MapKey(tc.msg)
			if got != tc.want || isQuit != tc.isQuit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), got, isQuit, tc.want, tc.isQuit)
			}
		})
	}
}

func TestHoldTracker(t *testing.T) {
	h := newHoldTracker()
	held := func(now time.Time) bool {
		f := core.NewInputFrame()
		h.apply(&f, now)
		return f.Has(core.ActionLeft)
	}

	h.press(core.ActionLeft, t0)
	if !held(t0.Add(holdInitial - time.Millisecond)) {
		t.Error("key should be held within the initial window")
	}

	// Repeats never shorten the initial window
	h.press(core.ActionLeft, t0.Add(100*time.Millisecond))
	if !held(t0.Add(holdInitial - time.Millisecond)) {
		t.Error("an early repeat must not cut the initial hold")
	}

	// A late repeat extends past the initial window
	h.press(core.ActionLeft, t0.Add(450*time.Millisecond))
	if !held(t0.Add(450*time.Millisecond + holdRepeat - time.Millisecond)) {
		t.Error("repeat should extend the hold")
	}
	if held(t0.Add(450*time.Millisecond + holdRepeat)) {
		t.Error("hold should expire without further repeats")
	}

	h.press(core.ActionLeft, t0)
	h.release(core.ActionLeft)
	if held(t0) {
		t.Error("release should drop the hold immediately")
	}
}

func TestFrameLoop(t *testing.T) {
	a := NewFrameLoop(60)
	b := NewFrameLoop(0)

	if a.Interval() != time.Second/60 || b.Interval() != time.Second/60 {
		t.Error("non-positive tick rates should default to 60")
	}
	if !a.Owns(TickMsg{Loop: a.id}) || a.Owns(TickMsg{Loop: b.id}) {
		t.Error("a loop should only own its own ticks")
	}
	if a.Next() == nil {
		t.Error("a running loop should schedule the next tick")
	}

	a.Stop()
	if !a.Stopped() || a.Next() != nil || a.Owns(TickMsg{Loop: a.id}) {
		t.Error("a stopped loop should neither schedule nor accept ticks")
	}
}

func TestTouchPadHit(t *testing.T) {
	pad := newTouchPad()
	width := 80
	origin := pad.origin(width)
	slot := touchButtonWidth + touchButtonGap

	for i, btn := range pad.buttons {
		a, ok := pad.hit(origin+i*slot+touchButtonWidth/2, width)
		if !ok || a != btn.action {
			t.Errorf("button %d: hit = %v, %v; expected %v", i, a, ok, btn.action)
		}
	}
	if _, ok := pad.hit(origin+touchButtonWidth, width); ok {
		t.Error("the gap between buttons should not hit")
	}
	if _, ok := pad.hit(origin-1, width); ok {
		t.Error("left of the row should not hit")
	}
	if _, ok := pad.hit(origin+len(pad.buttons)*slot, width); ok {
		t.Error("right of the row should not hit")
	}
}

func TestKeyPressBecomesHeldAndTriggered(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})

	m, _ = update(t, m, runeKey('a'))
	m, _ = update(t, m, runeKey('w'))
	m, _ = update(t, m, runeKey('e'))
	m = tick(t, m, t0.Add(10*time.Millisecond))

	f := g.last(t)
	if !f.Has(core.ActionLeft) || !f.Has(core.ActionJump) {
		t.Errorf("expected left and jump held, got %v", f.Held)
	}
	want := []core.Action{core.ActionLeft, core.ActionFire}
	if len(f.Triggers) != len(want) || f.Triggers[0] != want[0] || f.Triggers[1] != want[1] {
		t.Errorf("triggers = %v, expected %v", f.Triggers, want)
	}

	// Triggers are consumed, holds expire
	m = tick(t, m, t0.Add(20*time.Millisecond))
	if f := g.last(t); len(f.Triggers) != 0 || !f.Has(core.ActionLeft) {
		t.Errorf("second tick: triggers %v held %v", f.Triggers, f.Held)
	}
	tick(t, m, t0.Add(holdInitial+time.Millisecond))
	if f := g.last(t); f.Has(core.ActionLeft) {
		t.Error("left should be released once the hold window passes")
	}
}

func TestOppositeDirectionCancelsHold(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})

	m, _ = update(t, m, runeKey('a'))
	m, _ = update(t, m, runeKey('d'))
	tick(t, m, t0)

	f := g.last(t)
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
		t.Errorf("only right should be held, got %v", f.Held)
	}
}

func TestStaleTickIgnored(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})

	m, cmd := update(t, m, TickMsg{Time: t0, Loop: m.loop.id + 1000})
	if cmd != nil || len(g.frames) != 0 {
		t.Error("a tick from another loop must not step the game")
	}
}

func TestQuitStopsLoop(t *testing.T) {
	m := newTestModel(&fakeGame{}, Options{})

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil || !m.IsQuitting() || !m.loop.Stopped() {
		t.Error("quit should stop the loop and end the program")
	}
	if m.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestBack(t *testing.T) {
	m := newTestModel(&fakeGame{}, Options{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if !m.BackToMenu() || m.IsQuitting() || !m.loop.Stopped() {
		t.Error("back in a session should return to the menu")
	}

	standalone := newTestModel(&fakeGame{}, Options{})
	standalone.standalone = true
	standalone, cmd := update(t, standalone, tea.KeyMsg{Type: tea.KeyEscape})
	if cmd == nil || !standalone.IsQuitting() {
		t.Error("back in a single game should quit")
	}
}

func TestTouchButtons(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})
	row := m.screen.Height()
	origin := m.touch.origin(m.screen.Width())

	press := tea.MouseMsg{X: origin + 1, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = update(t, m, press)
	m = tick(t, m, t0.Add(time.Hour)) // Touch holds do not expire

	f := g.last(t)
	if !f.Has(core.ActionLeft) || !f.Triggered(core.ActionLeft) {
		t.Errorf("left button should hold and trigger left, got %v %v", f.Held, f.Triggers)
	}

	m, _ = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease})
	tick(t, m, t0.Add(time.Hour))
	if g.last(t).Has(core.ActionLeft) {
		t.Error("release should lift the button")
	}

	// Clicks inside the playfield are not buttons
	m, _ = update(t, m, tea.MouseMsg{X: origin + 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	tick(t, m, t0)
	if f := g.last(t); f.Has(core.ActionLeft) || len(f.Triggers) != 0 {
		t.Error("clicks above the button row should be ignored")
	}
}

func TestRoundsRecordedOnce(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{}
	m := newTestModel(g, Options{Store: store, Player: "tester"})

	m = tick(t, m, t0)
	g.outcome = core.OutcomeVictory
	for i := 0; i < 5; i++ {
		m = tick(t, m, t0)
	}

	// A restart starts a new round
	g.Reset(core.RuntimeConfig{})
	m = tick(t, m, t0)
	g.outcome = core.OutcomeDefeat
	tick(t, m, t0)

	rounds, err := store.RecentRounds("fake", 10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("expected 2 recorded rounds, got %d", len(rounds))
	}
	if rounds[0].Outcome != core.OutcomeDefeat || rounds[1].Outcome != core.OutcomeVictory {
		t.Errorf("unexpected outcomes: %v, %v", rounds[0].Outcome, rounds[1].Outcome)
	}
	if rounds[1].Player != "tester" || rounds[1].Ticks != 2 {
		t.Errorf("unexpected round: %+v", rounds[1])
	}
}

func TestViewIncludesTouchRow(t *testing.T) {
	m := newTestModel(&fakeGame{}, Options{})
	view := m.View()

	lines := strings.Split(view, "\n")
	if len(lines) != 24 {
		t.Errorf("expected 24 lines (23 playfield + buttons), got %d", len(lines))
	}
	if !strings.Contains(lines[0], "fake") || !strings.Contains(lines[len(lines)-1], "✹") {
		t.Error("view should contain the game and the button row")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorDefault)
	s.DrawText(0, 1, "xyz", core.ColorOrange)

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") || !strings.Contains(out, "xyz") {
		t.Errorf("styled output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}

func TestMenuSelection(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m.items = []MenuItem{{GameID: "one", Title: "One"}, {GameID: "two", Title: "Two"}}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	menu := next.(MenuModel)

	if cmd == nil || menu.Selected() == nil || menu.Selected().GameID != "two" {
		t.Errorf("expected the second item to be selected, got %+v", menu.Selected())
	}

	next, _ = NewMenuModel(core.RuntimeConfig{}).Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsRounds() {
		t.Error("tab should open the rounds screen")
	}
}

func TestSessionFlow(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	defer store.Close()

	s := NewSessionModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, Options{Store: store})

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if s.current != screenRounds {
		t.Fatal("tab should show the rounds screen")
	}
	if !strings.Contains(s.View(), "ROUNDS") {
		t.Error("rounds screen should render")
	}

	step(tea.KeyMsg{Type: tea.KeyEscape})
	if s.current != screenMenu || s.quitting {
		t.Fatal("back should return to the menu without quitting")
	}

	step(runeKey('q'))
	if !s.quitting || s.View() != "" {
		t.Error("q should end the session")
	}
}

func TestSessionPlaysAndReturnsToMenu(t *testing.T) {
	s := NewSessionModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, Options{})
	s.menu.items = []MenuItem{{GameID: "fake", Title: "Fake"}}

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.current != screenGame || cmd == nil {
		t.Fatalf("enter should start the game with a running loop, screen %v", s.current)
	}
	if !strings.HasPrefix(s.View(), "fake") {
		t.Errorf("game view not shown: %q", s.View())
	}

	next, _ = s.Update(runeKey('b'))
	s = next.(SessionModel)
	if s.current != screenMenu || s.quitting {
		t.Fatal("back should return to the menu")
	}
	if !s.game.loop.Stopped() {
		t.Error("leaving the game should stop its frame loop")
	}
}

func TestSSHServerLifecycle(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(cfg, nil, nil)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := srv.ListenAndServe(ctx); err != nil {
		t.Errorf("ListenAndServe() after cancel = %v", err)
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m.items = nil

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	menu := next.(MenuModel)
	if menu.cursor != 0 || menu.Selected() != nil || cmd != nil {
		t.Errorf("empty menu should ignore navigation, cursor %d", menu.cursor)
	}

	m.items = []MenuItem{{GameID: "one", Title: "One"}}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if next.(MenuModel).cursor != 0 {
		t.Error("cursor moved above the first item")
	}
	if !strings.Contains(m.View(), "H O T D O G") || !strings.Contains(m.View(), "One") {
		t.Errorf("menu view missing title or items:\n%s", m.View())
	}
}

// misconfiguredGame fell back to defaults after a broken config file.
type misconfiguredGame struct {
	fakeGame
	err error
}

func (g *misconfiguredGame) ConfigErr() error { return g.err }

func TestInitWarnsAboutConfigFallback(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	g := &misconfiguredGame{err: errors.New("read typo.yaml: no such file")}
	newTestModel(&g.fakeGame, Options{Logger: logger}) // Clean game: no warning
	if buf.Len() != 0 {
		t.Fatalf("unexpected log output for a clean config: %q", buf.String())
	}

	m := NewGameModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, Options{Logger: logger})
	m.Init()

	out := buf.String()
	if !strings.Contains(out, "using default configuration") || !strings.Contains(out, "typo.yaml") {
		t.Errorf("expected a config warning, got %q", out)
	}
}
