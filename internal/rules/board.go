package rules

import (
	"fmt"

	"github.com/royalur/royalur-go/internal/geometry"
)

// Board is a dense width*height array of optional pieces, addressed
// either by Tile or by 0-based (ix, iy) indices. It carries its own
// BoardShape so that membership checks never need an external
// reference.
type Board struct {
	shape  geometry.BoardShape
	pieces []*Piece
}

// NewBoard builds an empty board of the given shape.
func NewBoard(shape geometry.BoardShape) *Board {
	return &Board{
		shape:  shape,
		pieces: make([]*Piece, shape.Width()*shape.Height()),
	}
}

// Copy returns a deep snapshot of the board: a new pieces slice holding
// copies of the same Piece values (Piece is a plain value type, so a
// slice copy suffices to avoid aliasing between game-history states).
func (b *Board) Copy() *Board {
	cp := &Board{shape: b.shape, pieces: make([]*Piece, len(b.pieces))}
	for i, p := range b.pieces {
		if p != nil {
			copied := *p
			cp.pieces[i] = &copied
		}
	}
	return cp
}

func (b *Board) Shape() geometry.BoardShape { return b.shape }
func (b *Board) Width() int                 { return b.shape.Width() }
func (b *Board) Height() int                { return b.shape.Height() }

func (b *Board) indexOf(ix, iy int) int {
	if ix < 0 || iy < 0 || ix >= b.shape.Width() || iy >= b.shape.Height() {
		panic(fmt.Sprintf("no tile at indices (%d, %d)", ix, iy))
	}
	return iy*b.shape.Width() + ix
}

// Contains reports whether tile falls on this board.
func (b *Board) Contains(t geometry.Tile) bool { return b.shape.Contains(t) }

// Get returns the piece on tile, or nil if empty. Panics if tile is off
// the board.
func (b *Board) Get(t geometry.Tile) *Piece {
	if !b.shape.Contains(t) {
		panic(fmt.Sprintf("no tile at %s", t))
	}
	return b.pieces[b.indexOf(t.IX(), t.IY())]
}

// GetByIndices is Get addressed with 0-based indices.
func (b *Board) GetByIndices(ix, iy int) *Piece {
	if !b.shape.ContainsIndices(ix, iy) {
		panic(fmt.Sprintf("no tile at indices (%d, %d)", ix, iy))
	}
	return b.pieces[b.indexOf(ix, iy)]
}

// Set places piece on tile (nil clears it) and returns whatever was
// there before.
func (b *Board) Set(t geometry.Tile, piece *Piece) *Piece {
	if !b.shape.Contains(t) {
		panic(fmt.Sprintf("no tile at %s", t))
	}
	idx := b.indexOf(t.IX(), t.IY())
	previous := b.pieces[idx]
	b.pieces[idx] = piece
	return previous
}

// SetByIndices is Set addressed with 0-based indices.
func (b *Board) SetByIndices(ix, iy int, piece *Piece) *Piece {
	idx := b.indexOf(ix, iy)
	previous := b.pieces[idx]
	b.pieces[idx] = piece
	return previous
}

// Clear removes every piece from the board, used by the enumerator to
// reuse a single board instance across the whole state space walk.
func (b *Board) Clear() {
	for i := range b.pieces {
		b.pieces[i] = nil
	}
}

// CountPieces returns the number of on-board pieces owned by player.
func (b *Board) CountPieces(player geometry.Player) int {
	count := 0
	for _, p := range b.pieces {
		if p != nil && p.Owner == player {
			count++
		}
	}
	return count
}

// String renders the board as Width columns of Height characters,
// separated by a single space, top row first — matching the in-memory
// text rendering contract ('L'/'D'/'.' for on-board cells, ' ' for gaps
// outside the shape).
func (b *Board) String() string {
	out := make([]byte, 0, b.Width()*(b.Height()+1))
	for ix := 0; ix < b.Width(); ix++ {
		if ix > 0 {
			out = append(out, ' ')
		}
		for iy := 0; iy < b.Height(); iy++ {
			if !b.shape.ContainsIndices(ix, iy) {
				out = append(out, ' ')
				continue
			}
			out = append(out, Char(b.GetByIndices(ix, iy)))
		}
	}
	return string(out)
}
