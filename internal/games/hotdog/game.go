// Package hotdog implements a single-screen platformer/shooter.
// The hotdog jumps across static platforms and has five shots to bring down
// an enemy circling above; touching the enemy ends the round.
package hotdog

import (
	"github.com/vovakirdan/hotdog-arcade/internal/config"
	"github.com/vovakirdan/hotdog-arcade/internal/core"
	"github.com/vovakirdan/hotdog-arcade/internal/registry"
)

// Registered game IDs, one per configuration variant.
const (
	GameID      = "hotdog"
	HappyGameID = "hotdog-happy"

	happyVariant = "happy"
)

// Game owns the whole session state: entities, ammo and the game-over flag.
// Nothing outside Game mutates it; platforms talk to it through Step.
type Game struct {
	variant string
	cfg     config.HotdogConfig
	cfgErr  error
	loaded  bool
	runtime core.RuntimeConfig

	player    Player
	enemy     Enemy
	platforms []core.RectF
	bullets   []Bullet
	ammo      int
	facing    Facing

	gameOver   bool
	outcome    core.Outcome
	tickCount  int
	shotsFired int
	cues       []core.Cue // Cues raised during the current Step
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a game for the given variant ("" for the base game).
// Configuration is loaded on the first Reset.
func New(variant string) *Game {
	return &Game{variant: variant}
}

// NewWithConfig creates a game that uses cfg as-is instead of loading it.
func NewWithConfig(variant string, cfg config.HotdogConfig) *Game {
	return &Game{variant: variant, cfg: cfg, loaded: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == happyVariant {
		return HappyGameID
	}
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == happyVariant {
		return "Hotdog vs. the Camp (happy jump)"
	}
	return "Hotdog vs. the Camp"
}

// ConfigErr returns the error hit while loading configuration, if any.
// The game falls back to built-in defaults in that case.
func (g *Game) ConfigErr() error {
	return g.cfgErr
}

// loadConfig resolves the config file and applies the variant.
func (g *Game) loadConfig() {
	cfg, err := config.LoadHotdog(configPath)
	if err != nil {
		g.cfgErr = err
		cfg = config.DefaultHotdogConfig()
	}

	variantCfg, err := cfg.Variant(g.variant)
	if err != nil {
		g.cfgErr = err
		variantCfg = cfg
	}

	g.cfg = variantCfg
	g.loaded = true
}

// Reset initializes or restarts the session to its exact starting state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.loaded {
		g.loadConfig()
	}

	g.player = newPlayer(g.cfg.Player)
	g.enemy = newEnemy(g.cfg.Enemy)
	g.platforms = platformRects(g.cfg.Platforms)
	g.bullets = g.bullets[:0]
	g.ammo = g.cfg.Ammo
	g.facing = FacingRight
	g.gameOver = false
	g.outcome = core.OutcomeNone
	g.tickCount = 0
	g.shotsFired = 0
	g.cues = nil
}

// Step advances the game by one tick.
//
// Discrete triggers are applied first, in the order they arrived. The
// simulation then runs only while the session is still playing: player,
// enemy, bullets, and finally contact detection.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.cues = nil

	for _, a := range in.Triggers {
		g.applyTrigger(a)
	}

	if g.gameOver {
		return core.StepResult{State: g.State(), Cues: g.cues}
	}

	g.tickCount++
	g.updatePlayer(in)
	g.updateEnemy()
	g.updateBullets()
	g.checkContact()

	return core.StepResult{State: g.State(), Cues: g.cues}
}

// applyTrigger handles one discrete input event.
func (g *Game) applyTrigger(a core.Action) {
	switch a {
	case core.ActionRestart:
		g.Reset(g.runtime)
	case core.ActionLeft:
		if !g.gameOver {
			g.facing = FacingLeft
		}
	case core.ActionRight:
		if !g.gameOver {
			g.facing = FacingRight
		}
	case core.ActionFire:
		g.fire()
	}
}

// decide records the round outcome the first time it is known.
func (g *Game) decide(o core.Outcome) {
	if g.outcome == core.OutcomeNone {
		g.outcome = o
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Tick:       g.tickCount,
		ShotsFired: g.shotsFired,
		GameOver:   g.gameOver,
		Outcome:    g.outcome,
	}
}

// Register both variants with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New("")
	})
	registry.Register(HappyGameID, func() registry.Game {
		return New(happyVariant)
	})
}
