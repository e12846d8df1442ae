package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Outcome is how a round was decided.
type Outcome string

const (
	OutcomeNone    Outcome = ""
	OutcomeVictory Outcome = "victory"
	OutcomeDefeat  Outcome = "defeat"
)

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Tick       int     // Simulated ticks since the last reset
	ShotsFired int     // Projectiles fired since the last reset
	GameOver   bool    // Whether the session is in its terminal state
	Outcome    Outcome // Set once the round is decided
}

// Cue is a one-shot sound request emitted by a game.
type Cue int

const (
	CueFire Cue = iota + 1
	CueExplosion
)

// String returns the cue name used in logs.
func (c Cue) String() string {
	switch c {
	case CueFire:
		return "fire"
	case CueExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the sound cues raised during the tick.
type StepResult struct {
	State GameState
	Cues  []Cue
}
