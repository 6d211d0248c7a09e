// Package agent implements a one-ply look-up-table player: for each
// candidate move it evaluates the resulting position against a
// precomputed table of Light-to-move win probabilities, inverting
// Dark-to-move results through the identity documented on SelectMove.
// Grounded on the original LutAgent.play(), generalized from a hardcoded
// light-only agent into one parameterized by which side it plays.
package agent

import (
	"errors"
	"fmt"

	"github.com/royalur/royalur-go/internal/dice"
	"github.com/royalur/royalur-go/internal/geometry"
	"github.com/royalur/royalur-go/internal/lut/encode"
	"github.com/royalur/royalur-go/internal/lut/format"
	"github.com/royalur/royalur-go/internal/rules"
	"github.com/royalur/royalur-go/internal/rules/engine"
	"github.com/royalur/royalur-go/internal/rules/state"
)

// lutMapIndex is the single map within the LUT file this agent reads
// from — the table format supports several maps per file (one per
// starting piece count, say), but a given agent is built against one.
const lutMapIndex = 0

// winValue and loseValue are the LUT's saturating terminal values: the
// full-confidence ends of the u16 win-probability scale.
const (
	loseValue = 0
	winValue  = 65535
)

// Agent chooses moves by one-ply LUT lookup. It is stateless beyond its
// table and encoder, and safe for concurrent use across independent
// games.
type Agent struct {
	engine  *engine.RuleEngine
	encoder *encode.StateEncoder
	table   *format.Table
}

// New builds an Agent from an already-loaded table and encoder; use
// Load to build one directly from a LUT file on disk.
func New(ruleEngine *engine.RuleEngine, encoder *encode.StateEncoder, table *format.Table) *Agent {
	return &Agent{engine: ruleEngine, encoder: encoder, table: table}
}

// Load reads a LUT file from path and builds an Agent against it.
func Load(path string, ruleEngine *engine.RuleEngine, encoder *encode.StateEncoder) (*Agent, error) {
	table, err := format.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading LUT for agent: %w", err)
	}
	return New(ruleEngine, encoder, table), nil
}

// SelectMove evaluates every move available in s (which must be
// WaitingForMove) and returns the one with the highest value for the
// player to move, breaking ties in favor of the first move seen — this
// matches the original agent exactly, including its bias, which relies
// on strict ">" rather than ">=".
//
// Moves that lead to a win for the mover are scored at the maximum
// value outright, without a table lookup. Moves that lead to a loss (a
// win for the opponent) are scored at the minimum value. Every other
// resulting position is looked up directly if the next turn is Light,
// or looked up after CopyInverted if the next turn is Dark — the
// identity V_dark_to_move(s) = 65535 - V_light_to_move(invert(s)) —
// and the resulting P(next player to move wins) is then translated
// into P(mover wins), inverting again whenever the mover is not the
// player to move next. This is what lets the same Agent drive either
// side: a Dark-playing Agent maximizes P(Dark wins), not P(Light wins).
//
// A branch whose lookup misses the table (format.ErrNotFound) is
// treated as unusable rather than fatal: it is excluded from
// consideration, never chosen over a usable branch. If every branch is
// unusable, SelectMove falls back to the first available move.
func (a *Agent) SelectMove(s state.State) (rules.Move, error) {
	if s.Kind != state.KindWaitingForMove {
		panic(fmt.Sprintf("SelectMove requires a WaitingForMove state, got %s", s.Kind))
	}
	if len(s.AvailableMoves) == 0 {
		panic("SelectMove called with no available moves")
	}

	mover := s.Turn
	highestValue := -1
	var highestMove rules.Move
	found := false

	for _, move := range s.AvailableMoves {
		value, err := a.valueOf(s, move, mover)
		if err != nil {
			if errors.Is(err, format.ErrNotFound) {
				continue
			}
			return rules.Move{}, err
		}
		if value > highestValue {
			highestValue = value
			highestMove = move
			found = true
		}
	}

	if !found {
		return s.AvailableMoves[0], nil
	}
	return highestMove, nil
}

func (a *Agent) valueOf(from state.State, move rules.Move, mover geometry.Player) (int, error) {
	_, next := a.engine.ApplyMove(from, move)

	if next.IsFinished() {
		if next.Winner == mover {
			return winValue, nil
		}
		return loseValue, nil
	}

	lookupState := next
	if next.Turn != geometry.Light {
		lookupState = next.CopyInverted()
	}

	key := a.encoder.EncodeState(lookupState)
	value, err := a.table.Lookup(lutMapIndex, key)
	if err != nil {
		return 0, fmt.Errorf("looking up position after %s: %w", move.Describe(), err)
	}

	// The table always holds Light-to-move win probabilities, so a
	// lookup (after inverting when next.Turn is Dark) always yields
	// P(next.Turn wins), not P(mover wins). Translate to the mover's
	// perspective: if the mover is the one to move next, the value is
	// already theirs; otherwise it's the opponent's, so invert it.
	if mover == next.Turn {
		return int(value), nil
	}
	return winValue - int(value), nil
}

// RollAndSelect is a convenience that rolls roll on a WaitingForRoll
// state, and if that leaves the mover WaitingForMove, selects a move.
// It returns the sequence of states produced, mirroring how a driver
// loop would record history: [rolled, thenWaitingForMoveOrRoll, ...].
func (a *Agent) RollAndSelect(from state.State, roll dice.Roll) (rolled, afterRoll state.State, move *rules.Move, err error) {
	rolled, afterRoll = a.engine.ApplyRoll(from, roll)
	if afterRoll.Kind != state.KindWaitingForMove {
		return rolled, afterRoll, nil, nil
	}
	chosen, selectErr := a.SelectMove(afterRoll)
	if selectErr != nil {
		return rolled, afterRoll, nil, selectErr
	}
	return rolled, afterRoll, &chosen, nil
}
