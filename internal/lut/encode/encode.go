// Package encode implements the board + reserve encoder: a perfect hash
// from every legal Light-to-move position to a 31-bit integer key,
// built around a DFS-enumerated compression table for the board's
// shared center lane.
package encode

import (
	"fmt"

	"github.com/royalur/royalur-go/internal/geometry"
	"github.com/royalur/royalur-go/internal/rules"
	"github.com/royalur/royalur-go/internal/rules/state"
)

const (
	centerLaneCells   = 8
	rawCenterDomain   = 1 << 16 // 2 bits per cell, 8 cells
	centerLaneBits    = 13
	sentinel          = -1

	rightLaneShift = 0
	centerShift    = 6
	leftLaneShift  = 19
	darkReserveShift  = 25
	lightReserveShift = 28
)

// occupant codes used to build the raw 16-bit center-lane word, one
// 2-bit radix-3 digit per cell.
const (
	occupantEmpty = 0
	occupantDark  = 1
	occupantLight = 2
)

// StateEncoder produces and consumes the 31-bit keys described in
// spec section 4.2. It is built once per starting-piece-count and
// shared immutably across every lookup — construction runs the DFS that
// builds the forward and reverse center-lane compression tables.
type StateEncoder struct {
	startingPieceCount int

	// compress[raw16] -> compressed index, or sentinel if raw16 is not
	// a legal center-lane occupancy for this starting piece count.
	compress []int32
	// expand[compressed index] -> raw16, the inverse of compress.
	expand []uint16

	maxCompressed int
}

// NewStateEncoder builds a StateEncoder for startingPieceCount, running
// the center-lane DFS and asserting the resulting compressed domain
// fits in centerLaneBits bits. With the canonical 7 starting pieces it
// takes exactly that many; smaller piece counts need fewer.
func NewStateEncoder(startingPieceCount int) *StateEncoder {
	e := &StateEncoder{
		startingPieceCount: startingPieceCount,
		compress:           make([]int32, rawCenterDomain),
	}
	for i := range e.compress {
		e.compress[i] = sentinel
	}

	var states []uint16
	e.enumerateCenterLane(&states, 0, 0, startingPieceCount, startingPieceCount)

	e.expand = make([]uint16, len(states))
	for index, raw := range states {
		e.compress[raw] = int32(index)
		e.expand[index] = raw
	}
	e.maxCompressed = len(states)

	bits := 1
	for e.maxCompressed > (1 << bits) {
		bits++
	}
	if bits > centerLaneBits {
		panic(fmt.Sprintf("expected the center lane to fit in %d bits, got %d", centerLaneBits, bits))
	}

	return e
}

// enumerateCenterLane performs the DFS described in spec section 4.2:
// at each of the 8 cells, try {empty, dark, light} in that order,
// decrementing the corresponding counter and skipping a branch once its
// counter would go negative. Every fully assigned 8-cell pattern is
// recorded in DFS order, and that order is the encoding bijection.
func (e *StateEncoder) enumerateCenterLane(states *[]uint16, raw uint16, index, lightRemaining, darkRemaining int) {
	if index == centerLaneCells {
		*states = append(*states, raw)
		return
	}

	for _, occupant := range []int{occupantEmpty, occupantDark, occupantLight} {
		newLight, newDark := lightRemaining, darkRemaining
		switch occupant {
		case occupantDark:
			newDark--
			if newDark < 0 {
				continue
			}
		case occupantLight:
			newLight--
			if newLight < 0 {
				continue
			}
		}
		newRaw := raw | uint16(occupant)<<(2*index)
		e.enumerateCenterLane(states, newRaw, index+1, newLight, newDark)
	}
}

// Physical grid columns on the Standard board: light's outer lane sits
// in column 0, the shared lane in column 1, dark's outer lane in
// column 2 (all 0-based). This encoding addresses the board directly by
// grid position rather than by path index. It records column 0 only for
// Light pieces and column 2 only for Dark pieces, so it represents
// positions exactly for path variants such as Bell, where each outer
// column is used by one player only; a Dark piece in column 0 or a Light
// piece in column 2 (reachable under the Masters, Murray and Skiriuk
// paths) is not recorded in the key.
const (
	lightColumn  = 0
	centerColumn = 1
	darkColumn   = 2
)

// sideLaneRows are the 6 on-path rows (0-based) of the outer columns;
// rows 4 and 5 are never on either player's path in the Standard board
// shape and are skipped.
var sideLaneRows = [6]int{0, 1, 2, 3, 6, 7}

func occupantOf(board *rules.Board, ix, iy int) int {
	piece := board.GetByIndices(ix, iy)
	if piece == nil {
		return occupantEmpty
	}
	if piece.Owner == geometry.Dark {
		return occupantDark
	}
	return occupantLight
}

// EncodeBoard encodes just the board portion of the key (bits 0..24):
// right lane, center lane, left lane. Panics with an InvariantViolation
// if the board's center-lane occupancy is not reachable under this
// encoder's starting piece count.
func (e *StateEncoder) EncodeBoard(board *rules.Board) uint32 {
	var rightLane uint32
	for bit, iy := range sideLaneRows {
		if piece := board.GetByIndices(darkColumn, iy); piece != nil && piece.Owner == geometry.Dark {
			rightLane |= 1 << uint(bit)
		}
	}

	var leftLane uint32
	for bit, iy := range sideLaneRows {
		if piece := board.GetByIndices(lightColumn, iy); piece != nil && piece.Owner == geometry.Light {
			leftLane |= 1 << uint(bit)
		}
	}

	var rawCenter uint16
	for iy := 0; iy < centerLaneCells; iy++ {
		rawCenter |= uint16(occupantOf(board, centerColumn, iy)) << uint(2*iy)
	}

	compressed := e.compress[rawCenter]
	if compressed == sentinel {
		panic("illegal board state: center lane occupancy is not reachable")
	}

	return rightLane<<rightLaneShift | uint32(compressed)<<centerShift | leftLane<<leftLaneShift
}

// EncodeState encodes a full Light-to-move position: the board plus
// both side reserves. Panics if s is not a Light-to-move state — this
// encoding only covers that subspace; Dark-to-move positions must be
// inverted by the caller first (see internal/lut/agent).
func (e *StateEncoder) EncodeState(s state.State) uint32 {
	if s.Turn != geometry.Light {
		panic("only Light-to-move states are supported by this encoding")
	}
	key := e.EncodeBoard(s.Board)
	key |= uint32(s.Dark.Reserve) << darkReserveShift
	key |= uint32(s.Light.Reserve) << lightReserveShift
	return key
}

// EncodeReserves combines a board key with explicit reserve counts,
// bypassing the state.State wrapper EncodeState requires. Used by the
// enumerator, which walks raw board configurations that were never
// assembled into a full State.
func (e *StateEncoder) EncodeReserves(board *rules.Board, darkReserve, lightReserve int) uint32 {
	key := e.EncodeBoard(board)
	key |= uint32(darkReserve) << darkReserveShift
	key |= uint32(lightReserve) << lightReserveShift
	return key
}

// DecodeBoard is the inverse of EncodeBoard, reconstructing a board's
// piece placement from a 25-bit board key. paths is consulted only to
// assign each reconstructed piece the correct PathIndex for its owner,
// since the board grid position alone does not determine how far along
// the path a piece is for path variants with non-trivial routing. Used
// for debugging and by this package's round-trip test, not on the
// agent's hot path.
func (e *StateEncoder) DecodeBoard(key uint32, shape geometry.BoardShape, paths geometry.PathPair) *rules.Board {
	board := rules.NewBoard(shape)

	rightLane := (key >> rightLaneShift) & 0x3F
	compressed := (key >> centerShift) & ((1 << centerLaneBits) - 1)
	leftLane := (key >> leftLaneShift) & 0x3F

	lightPath := paths.Get(geometry.Light)
	darkPath := paths.Get(geometry.Dark)

	for bit, iy := range sideLaneRows {
		if rightLane&(1<<uint(bit)) != 0 {
			tile := geometry.TileFromIndices(darkColumn, iy)
			piece := rules.NewPiece(geometry.Dark, indexOf(darkPath, tile))
			board.Set(tile, &piece)
		}
		if leftLane&(1<<uint(bit)) != 0 {
			tile := geometry.TileFromIndices(lightColumn, iy)
			piece := rules.NewPiece(geometry.Light, indexOf(lightPath, tile))
			board.Set(tile, &piece)
		}
	}

	rawCenter := e.expand[compressed]
	for iy := 0; iy < centerLaneCells; iy++ {
		occupant := int((rawCenter >> uint(2*iy)) & 0x3)
		tile := geometry.TileFromIndices(centerColumn, iy)
		switch occupant {
		case occupantDark:
			piece := rules.NewPiece(geometry.Dark, indexOf(darkPath, tile))
			board.Set(tile, &piece)
		case occupantLight:
			piece := rules.NewPiece(geometry.Light, indexOf(lightPath, tile))
			board.Set(tile, &piece)
		}
	}

	return board
}

func indexOf(path []geometry.Tile, tile geometry.Tile) int {
	for i, t := range path {
		if t == tile {
			return i
		}
	}
	panic(fmt.Sprintf("tile %s is not on the given path", tile))
}

// MaxCompressed returns the number of legal center-lane patterns found
// by the DFS (the size of the compressed domain).
func (e *StateEncoder) MaxCompressed() int { return e.maxCompressed }
