// Package driver exposes the single public entry point a caller drives
// a game through: roll, find moves, make a move, ask who won. It wraps
// internal/rules/engine's stateless transition functions with the
// mutable game history a real playthrough needs, the way the original
// implementation's Game class wraps RuleSet. Not a CLI — see the urplay
// command in the repository root's main.go for the terminal front end
// built on top of this package.
package driver

import (
	"fmt"
	"math/rand"

	"github.com/royalur/royalur-go/internal/dice"
	"github.com/royalur/royalur-go/internal/geometry"
	"github.com/royalur/royalur-go/internal/rules"
	"github.com/royalur/royalur-go/internal/rules/engine"
	"github.com/royalur/royalur-go/internal/rules/state"
)

// Driver holds one game's mutable history: every state it has passed
// through, the engine driving transitions, and the dice instance rolls
// are drawn from.
type Driver struct {
	engine  *engine.RuleEngine
	dice    dice.Dice
	rng     *rand.Rand
	history []state.State
}

// New starts a fresh game under settings, seeded from rng (pass nil to
// use the default global source).
func New(settings rules.GameSettings, rng *rand.Rand) *Driver {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	e := engine.New(settings)
	d := &Driver{
		engine: e,
		dice:   settings.DiceFactory(),
		rng:    rng,
	}
	d.history = []state.State{e.GenerateInitialState()}
	return d
}

// CurrentState returns the most recent state in the game's history.
func (d *Driver) CurrentState() state.State {
	return d.history[len(d.history)-1]
}

// History returns every state the game has passed through, oldest
// first, including the initial WaitingForRoll state.
func (d *Driver) History() []state.State {
	return d.history
}

func (d *Driver) addState(s state.State) {
	d.history = append(d.history, s)
}

// IsWaitingForRoll reports whether the game needs a roll to proceed.
func (d *Driver) IsWaitingForRoll() bool { return d.CurrentState().Kind == state.KindWaitingForRoll }

// IsWaitingForMove reports whether the game needs a move to proceed.
func (d *Driver) IsWaitingForMove() bool { return d.CurrentState().Kind == state.KindWaitingForMove }

// IsFinished reports whether the game has ended.
func (d *Driver) IsFinished() bool { return d.CurrentState().IsFinished() }

// GetWinner returns the winning player. The second return is false if
// the game has not finished.
func (d *Driver) GetWinner() (geometry.Player, bool) {
	current := d.CurrentState()
	if !current.IsFinished() {
		return 0, false
	}
	return current.Winner, true
}

// RollDice rolls the dice randomly and applies the roll, returning the
// Roll produced. Panics if the game is not WaitingForRoll.
func (d *Driver) RollDice() (dice.Roll, error) {
	return d.rollWith(d.dice.RollRandom(d.rng))
}

// RollDiceValue forces the roll to value (used for replay and tests),
// validating it against the current dice variant first.
func (d *Driver) RollDiceValue(value int) (dice.Roll, error) {
	if err := d.dice.Validate(value); err != nil {
		return dice.Roll{}, fmt.Errorf("invalid roll value: %w", err)
	}
	return d.rollWith(d.dice.RollValue(value))
}

func (d *Driver) rollWith(roll dice.Roll) (dice.Roll, error) {
	current := d.CurrentState()
	if current.Kind != state.KindWaitingForRoll {
		panic(fmt.Sprintf("RollDice requires a WaitingForRoll state, got %s", current.Kind))
	}
	rolled, next := d.engine.ApplyRoll(current, roll)
	d.addState(rolled)
	d.addState(next)
	return roll, nil
}

// FindAvailableMoves returns the moves available from the current
// state. Panics if the game is not WaitingForMove.
func (d *Driver) FindAvailableMoves() []rules.Move {
	current := d.CurrentState()
	if current.Kind != state.KindWaitingForMove {
		panic(fmt.Sprintf("FindAvailableMoves requires a WaitingForMove state, got %s", current.Kind))
	}
	return current.AvailableMoves
}

// MakeMove applies target, which must be a rules.Move, a *rules.Piece,
// or a geometry.Tile. A Move is applied as-is, without checking that it
// belongs to the current available moves. A Piece or Tile is resolved
// against the current available moves, matching the original
// implementation's disambiguation rules: a Piece matches the available
// move whose source piece equals it; a Tile matches the available move
// whose source tile (the reserve sentinel, for an introducing move)
// equals it. Returns an InvalidInput error if no available move
// matches.
func (d *Driver) MakeMove(target any) error {
	current := d.CurrentState()
	if current.Kind != state.KindWaitingForMove {
		panic(fmt.Sprintf("MakeMove requires a WaitingForMove state, got %s", current.Kind))
	}

	var move rules.Move
	switch t := target.(type) {
	case rules.Move:
		move = t
	case *rules.Piece:
		found, err := d.resolvePiece(current, t)
		if err != nil {
			return err
		}
		move = found
	case geometry.Tile:
		found, err := d.resolveTile(current, t)
		if err != nil {
			return err
		}
		move = found
	default:
		return fmt.Errorf("make move target must be a Move, *Piece, or Tile, got %T", target)
	}

	moved, next := d.engine.ApplyMove(current, move)
	d.addState(moved)
	d.addState(next)
	return nil
}

func (d *Driver) resolvePiece(current state.State, piece *rules.Piece) (rules.Move, error) {
	for _, move := range current.AvailableMoves {
		if move.SourcePiece != nil && *move.SourcePiece == *piece {
			return move, nil
		}
	}
	return rules.Move{}, fmt.Errorf("the piece %+v cannot be moved", *piece)
}

func (d *Driver) resolveTile(current state.State, tile geometry.Tile) (rules.Move, error) {
	paths := d.engine.Settings.Paths
	mover := current.Turn
	for _, move := range current.AvailableMoves {
		sourceTile := paths.Start(mover)
		if move.Source != nil {
			sourceTile = *move.Source
		}
		if sourceTile == tile {
			return move, nil
		}
	}
	return rules.Move{}, fmt.Errorf("there is no available move from %s", tile)
}
