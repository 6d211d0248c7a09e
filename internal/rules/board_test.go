package rules

import (
	"testing"

	"github.com/royalur/royalur-go/internal/geometry"
)

func TestBoardSetGetRoundTrip(t *testing.T) {
	board := NewBoard(geometry.StandardShape)
	tile := geometry.NewTile(1, 1)
	piece := NewPiece(geometry.Light, 0)

	if got := board.Get(tile); got != nil {
		t.Fatalf("fresh board should be empty, got %+v", got)
	}

	previous := board.Set(tile, &piece)
	if previous != nil {
		t.Errorf("Set on an empty tile should return nil, got %+v", previous)
	}
	if got := board.Get(tile); got == nil || *got != piece {
		t.Errorf("Get after Set = %+v, want %+v", got, piece)
	}
}

func TestBoardCopyIsIndependent(t *testing.T) {
	board := NewBoard(geometry.StandardShape)
	tile := geometry.NewTile(1, 1)
	piece := NewPiece(geometry.Light, 0)
	board.Set(tile, &piece)

	cp := board.Copy()
	cp.Set(tile, nil)

	if board.Get(tile) == nil {
		t.Error("mutating the copy should not affect the original")
	}
	if cp.Get(tile) != nil {
		t.Error("the copy should reflect its own mutation")
	}
}

func TestBoardCountPieces(t *testing.T) {
	board := NewBoard(geometry.StandardShape)
	lightPiece := NewPiece(geometry.Light, 0)
	darkPiece := NewPiece(geometry.Dark, 0)
	board.Set(geometry.NewTile(1, 1), &lightPiece)
	board.Set(geometry.NewTile(3, 1), &darkPiece)
	board.Set(geometry.NewTile(2, 1), &darkPiece)

	if n := board.CountPieces(geometry.Light); n != 1 {
		t.Errorf("light piece count = %d, want 1", n)
	}
	if n := board.CountPieces(geometry.Dark); n != 2 {
		t.Errorf("dark piece count = %d, want 2", n)
	}
}

func TestBoardClear(t *testing.T) {
	board := NewBoard(geometry.StandardShape)
	piece := NewPiece(geometry.Light, 0)
	board.Set(geometry.NewTile(1, 1), &piece)
	board.Clear()
	if board.CountPieces(geometry.Light) != 0 {
		t.Error("Clear should remove every piece")
	}
}

func TestBoardGetOffBoardPanics(t *testing.T) {
	board := NewBoard(geometry.StandardShape)
	defer func() {
		if recover() == nil {
			t.Error("Get on an off-shape tile should have panicked")
		}
	}()
	board.Get(geometry.NewTile(1, 5))
}

func TestBoardStringDimensions(t *testing.T) {
	board := NewBoard(geometry.StandardShape)
	s := board.String()
	// Width columns joined by a single space, each column Height chars.
	wantLen := board.Width()*board.Height() + (board.Width() - 1)
	if len(s) != wantLen {
		t.Errorf("board string length = %d, want %d", len(s), wantLen)
	}
}
