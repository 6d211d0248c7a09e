// Package engine implements the deterministic rule engine: legal-move
// generation, roll application, move application, extra-turn policy,
// and win detection, all driven purely by the data in internal/rules
// and internal/rules/state.
package engine

import (
	"fmt"

	"github.com/royalur/royalur-go/internal/dice"
	"github.com/royalur/royalur-go/internal/geometry"
	"github.com/royalur/royalur-go/internal/rules"
	"github.com/royalur/royalur-go/internal/rules/state"
)

// RuleEngine drives a single game's state transitions under a fixed
// GameSettings. It holds no mutable state of its own beyond the
// immutable settings: every transition takes its input state explicitly
// and returns new state values, never mutating them in place.
type RuleEngine struct {
	Settings rules.GameSettings
}

// New builds a RuleEngine for settings.
func New(settings rules.GameSettings) *RuleEngine {
	return &RuleEngine{Settings: settings}
}

// GenerateInitialState returns the WaitingForRoll state every game
// begins from: empty board, both reserves at StartingPieceCount, Light
// to move.
func (e *RuleEngine) GenerateInitialState() state.State {
	board := rules.NewBoard(e.Settings.BoardShape)
	light := rules.NewPlayerState(geometry.Light, e.Settings.StartingPieceCount)
	dark := rules.NewPlayerState(geometry.Dark, e.Settings.StartingPieceCount)
	return state.NewWaitingForRoll(board, light, dark, geometry.Light)
}

// FindAvailableMoves enumerates every legal move for player on board
// with the given player state and roll value. Matches the algorithm in
// spec section 4.1: a scoring move if the roll reaches exactly the end
// of the path, then one move per path position reachable by the roll
// (including introducing from reserve at the virtual position -1).
func (e *RuleEngine) FindAvailableMoves(board *rules.Board, ps rules.PlayerState, roll int) []rules.Move {
	if roll <= 0 {
		panic("FindAvailableMoves requires a positive roll")
	}
	path := e.Settings.Paths.Get(ps.Player)
	pathLen := len(path)

	var moves []rules.Move

	// Scoring move.
	if roll <= pathLen {
		i := pathLen - roll
		tile := path[i]
		if piece := board.Get(tile); piece != nil && piece.Owner == ps.Player && piece.PathIndex == i {
			moves = append(moves, rules.Move{
				Player:      ps.Player,
				Source:      &tile,
				SourcePiece: piece,
			})
		}
	}

	for i := -1; i < pathLen-roll; i++ {
		var sourceTile *geometry.Tile
		var sourcePiece *rules.Piece

		if i == -1 {
			if ps.Reserve <= 0 {
				continue
			}
			// Introducing from reserve: no source tile.
		} else {
			tile := path[i]
			piece := board.Get(tile)
			if piece == nil || piece.Owner != ps.Player || piece.PathIndex != i {
				continue
			}
			sourceTile = &tile
			sourcePiece = piece
		}

		j := i + roll
		destTile := path[j]
		var captured *rules.Piece
		if existing := board.Get(destTile); existing != nil {
			if existing.Owner == ps.Player {
				continue
			}
			if e.Settings.SafeRosettes && e.Settings.BoardShape.IsRosette(destTile) {
				continue
			}
			captured = existing
		}

		destPiece := rules.NewPiece(ps.Player, j)
		moves = append(moves, rules.Move{
			Player:        ps.Player,
			Source:        sourceTile,
			SourcePiece:   sourcePiece,
			Dest:          &destTile,
			DestPiece:     &destPiece,
			CapturedPiece: captured,
		})
	}

	return moves
}

// ApplyRoll applies a roll to a WaitingForRoll state, returning the
// Rolled record and the next state. If the roll is zero or no moves are
// available, the next state hands the turn to the other player;
// otherwise it is a WaitingForMove for the same player.
func (e *RuleEngine) ApplyRoll(from state.State, roll dice.Roll) (state.State, state.State) {
	if from.Kind != state.KindWaitingForRoll {
		panic(fmt.Sprintf("ApplyRoll requires a WaitingForRoll state, got %s", from.Kind))
	}
	if roll.Value < 0 {
		panic("roll value cannot be negative")
	}

	ps := from.PlayerState(from.Turn)
	var moves []rules.Move
	if roll.Value > 0 {
		moves = e.FindAvailableMoves(from.Board, ps, roll.Value)
	}

	rolled := state.NewRolled(from.Board, from.Light, from.Dark, from.Turn, roll, moves)

	if roll.Value == 0 || len(moves) == 0 {
		next := state.NewWaitingForRoll(from.Board, from.Light, from.Dark, from.Turn.Other())
		return rolled, next
	}

	next := state.NewWaitingForMove(from.Board, from.Light, from.Dark, from.Turn, roll, moves)
	return rolled, next
}

// ApplyMove applies move to a WaitingForMove state without validating
// that move is one of the state's AvailableMoves (the caller, e.g. the
// driver's disambiguation logic, is responsible for that). Returns the
// Moved record and the next state: Win if the move scores the turn
// player's last piece, otherwise WaitingForRoll for whichever player the
// extra-turn policy selects.
func (e *RuleEngine) ApplyMove(from state.State, move rules.Move) (state.State, state.State) {
	if from.Kind != state.KindWaitingForMove {
		panic(fmt.Sprintf("ApplyMove requires a WaitingForMove state, got %s", from.Kind))
	}

	board := from.Board.Copy()
	light, dark := from.Light, from.Dark
	turnPlayer := from.Turn

	if move.Source != nil {
		board.Set(*move.Source, nil)
	}

	if move.Dest != nil {
		board.Set(*move.Dest, move.DestPiece)
	}

	ps := &light
	if turnPlayer == geometry.Dark {
		ps = &dark
	}
	if move.IsIntroducing() {
		ps.Reserve--
	}
	if move.IsScoring() {
		ps.Score++
	}
	if move.CapturedPiece != nil {
		opponent := &dark
		if move.CapturedPiece.Owner == geometry.Light {
			opponent = &light
		}
		opponent.Reserve++
	}

	moved := state.NewMoved(board, light, dark, turnPlayer, from.Roll, move)

	turnPs := light
	if turnPlayer == geometry.Dark {
		turnPs = dark
	}
	if move.IsScoring() && turnPs.Reserve == 0 && board.CountPieces(turnPlayer) == 0 {
		return moved, state.NewWin(board, light, dark, turnPlayer)
	}

	extraTurn := (e.Settings.RosettesGrantExtraRolls && move.Dest != nil && e.Settings.BoardShape.IsRosette(*move.Dest)) ||
		(e.Settings.CapturesGrantExtraRolls && move.IsCapture())

	nextTurn := turnPlayer.Other()
	if extraTurn {
		nextTurn = turnPlayer
	}
	return moved, state.NewWaitingForRoll(board, light, dark, nextTurn)
}
