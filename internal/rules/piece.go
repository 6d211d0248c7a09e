// Package rules holds the board, player, and settings data model shared
// by the rule engine, the encoder, and the enumerator: everything that
// sits below the GameState machine in internal/rules/state.
package rules

import "github.com/royalur/royalur-go/internal/geometry"

// Piece is a single piece on the board: its owner and the index of the
// tile it occupies within that owner's on-board path. The invariant that
// PathIndex always matches the tile actually holding the piece is
// maintained by the rule engine, never checked here.
type Piece struct {
	Owner     geometry.Player
	PathIndex int
}

// NewPiece builds a piece, panicking on a negative path index — always a
// programmer error, since callers only ever construct pieces from
// known-good path positions.
func NewPiece(owner geometry.Player, pathIndex int) Piece {
	if pathIndex < 0 {
		panic("piece path index cannot be negative")
	}
	return Piece{Owner: owner, PathIndex: pathIndex}
}

// Char renders the piece's owner as a single character, 'L' or 'D'; an
// absent piece renders as '.'. Matches PlayerType.to_char/Piece.to_char
// in the original implementation.
func Char(p *Piece) byte {
	if p == nil {
		return '.'
	}
	if p.Owner == geometry.Light {
		return 'L'
	}
	return 'D'
}
