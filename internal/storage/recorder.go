package storage

import "github.com/vovakirdan/hotdog-arcade/internal/core"

// Recorder puts each decided round of one game session into the ledger
// exactly once. A restart makes the next decided round eligible again.
type Recorder struct {
	store    *Store // May be nil: rounds are reported but not stored
	gameID   string
	player   string
	recorded bool
}

// NewRecorder creates a recorder for one game and player.
func NewRecorder(store *Store, gameID, player string) *Recorder {
	return &Recorder{store: store, gameID: gameID, player: player}
}

// Observe inspects the state after a tick. It returns the round and true
// the first time the round is decided; the error is the ledger's.
func (r *Recorder) Observe(st core.GameState) (Round, bool, error) {
	if st.Outcome == core.OutcomeNone {
		r.recorded = false
		return Round{}, false, nil
	}
	if r.recorded {
		return Round{}, false, nil
	}
	r.recorded = true

	round := Round{
		GameID:     r.gameID,
		Player:     r.player,
		Outcome:    st.Outcome,
		Ticks:      st.Tick,
		ShotsFired: st.ShotsFired,
	}
	if r.store == nil {
		return round, true, nil
	}

	id, err := r.store.RecordRound(round)
	round.ID = id
	return round, true, err
}
