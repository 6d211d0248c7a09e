package rules

import (
	"fmt"

	"github.com/royalur/royalur-go/internal/geometry"
)

// Move describes a single legal action: moving a piece from Source (or
// from reserve, if Source is nil) to Dest (or off the board, scoring,
// if Dest is nil), optionally capturing CapturedPiece.
//
// Invariants: Source and SourcePiece are both present or both absent;
// Dest and DestPiece are both present or both absent; if Dest is absent
// then CapturedPiece must also be absent (scoring moves never capture).
type Move struct {
	Player geometry.Player

	Source      *geometry.Tile
	SourcePiece *Piece

	Dest      *geometry.Tile
	DestPiece *Piece

	CapturedPiece *Piece
}

// IsIntroducing reports whether this move introduces a new piece from
// reserve rather than advancing one already on the board.
func (m Move) IsIntroducing() bool { return m.Source == nil }

// IsScoring reports whether this move scores a piece (moves it off the
// far end of the path) rather than landing on another board tile.
func (m Move) IsScoring() bool { return m.Dest == nil }

// IsCapture reports whether this move captures an opponent's piece.
func (m Move) IsCapture() bool { return m.CapturedPiece != nil }

// Describe renders the English-language template used by the in-memory
// text rendering contract. "Introduce and score" never occurs (paths
// have positive length), so it is not a case this function needs to
// produce.
func (m Move) Describe() string {
	switch {
	case m.IsIntroducing() && m.IsScoring():
		panic("introduce-and-score is not a legal move")
	case m.IsScoring():
		return fmt.Sprintf("Score a piece from %s", *m.Source)
	case m.IsIntroducing():
		if m.IsCapture() {
			return fmt.Sprintf("Introduce a piece to capture %s", *m.Dest)
		}
		return fmt.Sprintf("Introduce a piece to %s", *m.Dest)
	default:
		if m.IsCapture() {
			return fmt.Sprintf("Move %s to capture %s", *m.Source, *m.Dest)
		}
		return fmt.Sprintf("Move %s to %s", *m.Source, *m.Dest)
	}
}
