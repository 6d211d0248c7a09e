// Package state implements the tagged GameState variants that record a
// game's move-by-move history: a single State struct discriminated by
// its Kind field, in place of the original class-hierarchy isinstance
// discrimination.
package state

import (
	"github.com/royalur/royalur-go/internal/dice"
	"github.com/royalur/royalur-go/internal/geometry"
	"github.com/royalur/royalur-go/internal/rules"
)

// Kind discriminates the GameState variants.
type Kind int

const (
	KindWaitingForRoll Kind = iota
	KindRolled
	KindWaitingForMove
	KindMoved
	KindWin
)

func (k Kind) String() string {
	switch k {
	case KindWaitingForRoll:
		return "WaitingForRoll"
	case KindRolled:
		return "Rolled"
	case KindWaitingForMove:
		return "WaitingForMove"
	case KindMoved:
		return "Moved"
	case KindWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// State is one entry in a game's history. Only the fields relevant to
// Kind are meaningful; the shared header (Board, Light, Dark) is always
// populated.
type State struct {
	Kind Kind

	Board *rules.Board
	Light rules.PlayerState
	Dark  rules.PlayerState

	// Turn is meaningful for WaitingForRoll, Rolled, WaitingForMove,
	// Moved. Winner is meaningful only for Win.
	Turn   geometry.Player
	Winner geometry.Player

	Roll            dice.Roll
	AvailableMoves  []rules.Move
	Move            rules.Move
}

// NewWaitingForRoll constructs the action-free state that precedes a
// dice roll.
func NewWaitingForRoll(board *rules.Board, light, dark rules.PlayerState, turn geometry.Player) State {
	return State{Kind: KindWaitingForRoll, Board: board, Light: light, Dark: dark, Turn: turn}
}

// NewRolled constructs the action state recording a roll just taken,
// together with the moves it made available (possibly none).
func NewRolled(board *rules.Board, light, dark rules.PlayerState, turn geometry.Player, roll dice.Roll, moves []rules.Move) State {
	return State{Kind: KindRolled, Board: board, Light: light, Dark: dark, Turn: turn, Roll: roll, AvailableMoves: moves}
}

// NewWaitingForMove constructs the playable state in which the current
// player must choose one of AvailableMoves. Panics if moves is empty:
// a WaitingForMove state always has at least one legal move by
// construction (the rule engine transitions to WaitingForRoll for the
// other player instead, otherwise).
func NewWaitingForMove(board *rules.Board, light, dark rules.PlayerState, turn geometry.Player, roll dice.Roll, moves []rules.Move) State {
	if len(moves) == 0 {
		panic("WaitingForMove requires a non-empty set of available moves")
	}
	return State{Kind: KindWaitingForMove, Board: board, Light: light, Dark: dark, Turn: turn, Roll: roll, AvailableMoves: moves}
}

// NewMoved constructs the action state recording a move just applied.
func NewMoved(board *rules.Board, light, dark rules.PlayerState, turn geometry.Player, roll dice.Roll, move rules.Move) State {
	return State{Kind: KindMoved, Board: board, Light: light, Dark: dark, Turn: turn, Roll: roll, Move: move}
}

// NewWin constructs the terminal state.
func NewWin(board *rules.Board, light, dark rules.PlayerState, winner geometry.Player) State {
	return State{Kind: KindWin, Board: board, Light: light, Dark: dark, Winner: winner}
}

// IsPlayable reports whether this state requires caller action (a roll
// or a move) rather than being a transient record of one just taken.
func (s State) IsPlayable() bool {
	return s.Kind == KindWaitingForRoll || s.Kind == KindWaitingForMove
}

// IsFinished reports whether the game has ended.
func (s State) IsFinished() bool { return s.Kind == KindWin }

// PlayerState returns the PlayerState for player.
func (s State) PlayerState(player geometry.Player) rules.PlayerState {
	if player == geometry.Light {
		return s.Light
	}
	return s.Dark
}

// CopyInverted produces the mirror-image of this state with the two
// players' roles swapped wholesale: board pieces re-owned, reserves and
// scores swapped, and Turn flipped. Used by the LUT agent to translate
// a Dark-to-move position into the Light-to-move subspace the LUT
// covers. Only meaningful for states with a Turn (not Win).
//
// Every standard board shape is symmetric about its center column, with
// Light's exclusive lane and Dark's exclusive lane mirrored across it
// (column 0 <-> column width-1; the shared center column maps to
// itself). Re-owning a piece without also mirroring its column would
// leave former-Dark pieces sitting in Dark's lane but now labeled
// Light, violating the "Light occupies column 0, Dark occupies column
// width-1" invariant the board encoder's side-lane bitmaps depend on
// (mirrors SimpleGameStateEncoding.encode_side_lane, which trusts that
// invariant rather than checking ownership).
func (s State) CopyInverted() State {
	invertedBoard := rules.NewBoard(s.Board.Shape())
	mirrorIX := s.Board.Width() - 1
	for iy := 0; iy < s.Board.Height(); iy++ {
		for ix := 0; ix < s.Board.Width(); ix++ {
			if !s.Board.Shape().ContainsIndices(ix, iy) {
				continue
			}
			piece := s.Board.GetByIndices(ix, iy)
			if piece == nil {
				continue
			}
			inverted := rules.NewPiece(piece.Owner.Other(), piece.PathIndex)
			invertedBoard.SetByIndices(mirrorIX-ix, iy, &inverted)
		}
	}

	invertedLight := rules.PlayerState{Player: geometry.Light, Reserve: s.Dark.Reserve, Score: s.Dark.Score}
	invertedDark := rules.PlayerState{Player: geometry.Dark, Reserve: s.Light.Reserve, Score: s.Light.Score}

	out := s
	out.Board = invertedBoard
	out.Light = invertedLight
	out.Dark = invertedDark
	out.Turn = s.Turn.Other()
	return out
}
