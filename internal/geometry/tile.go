// Package geometry implements the board-independent coordinate system
// shared by every Royal Game of Ur variant: tiles, the light/dark path
// pairs that thread through them, and the board shapes that bound them.
package geometry

import (
	"fmt"
	"strconv"
)

// Tile is a 1-based board coordinate. x is restricted to [1, 26] so that
// it can be printed as a single letter; y has no upper bound since
// different board shapes have different heights.
type Tile struct {
	x, y int
}

// NewTile constructs a tile, panicking on out-of-range coordinates the
// same way the encoder panics on illegal board states: both are
// programmer errors, never surfaced to a caller as a returned error.
func NewTile(x, y int) Tile {
	if x < 1 || x > 26 {
		panic(fmt.Sprintf("tile x must fall within [1, 26], got %d", x))
	}
	if y < 0 {
		panic(fmt.Sprintf("tile y must not be negative, got %d", y))
	}
	return Tile{x: x, y: y}
}

// TileFromIndices builds a tile from 0-based indices.
func TileFromIndices(ix, iy int) Tile {
	return NewTile(ix+1, iy+1)
}

func (t Tile) X() int  { return t.x }
func (t Tile) Y() int  { return t.y }
func (t Tile) IX() int { return t.x - 1 }
func (t Tile) IY() int { return t.y - 1 }

// String renders the tile in the "A4" form used throughout the rules
// engine's text output and error messages.
func (t Tile) String() string {
	return fmt.Sprintf("%c%d", 'A'+t.x-1, t.y)
}

// TileFromString decodes the "A4" form produced by String.
func TileFromString(s string) (Tile, error) {
	if len(s) < 2 {
		return Tile{}, fmt.Errorf("invalid tile %q: expected at least two characters", s)
	}
	x := int(s[0]) - ('A' - 1)
	y, err := strconv.Atoi(s[1:])
	if err != nil {
		return Tile{}, fmt.Errorf("invalid tile %q: %w", s, err)
	}
	if x < 1 || x > 26 || y < 0 {
		return Tile{}, fmt.Errorf("invalid tile %q: coordinates out of range", s)
	}
	return Tile{x: x, y: y}, nil
}

// StepTowards takes a unit-length step toward other, preferring the axis
// with the larger absolute delta (so diagonal waypoints still produce an
// orthogonal step sequence).
func (t Tile) StepTowards(other Tile) Tile {
	dx := other.x - t.x
	dy := other.y - t.y

	if abs(dx)+abs(dy) <= 1 {
		return other
	}
	if abs(dx) < abs(dy) {
		if dy > 0 {
			return Tile{x: t.x, y: t.y + 1}
		}
		return Tile{x: t.x, y: t.y - 1}
	}
	if dx > 0 {
		return Tile{x: t.x + 1, y: t.y}
	}
	return Tile{x: t.x - 1, y: t.y}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// CreatePath expands a sparse list of waypoints into a full step-by-step
// path, walking StepTowards between consecutive waypoints. Used to build
// the on-board portion of each variant's PathPair from a handful of
// corner coordinates instead of spelling out every tile.
func CreatePath(waypoints ...Tile) []Tile {
	if len(waypoints) == 0 {
		panic("no waypoints provided")
	}

	path := []Tile{waypoints[0]}
	for i := 1; i < len(waypoints); i++ {
		current := waypoints[i-1]
		next := waypoints[i]
		for current != next {
			current = current.StepTowards(next)
			path = append(path, current)
		}
	}
	return path
}
