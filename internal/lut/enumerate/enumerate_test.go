package enumerate

import (
	"errors"
	"testing"

	"github.com/royalur/royalur-go/internal/geometry"
	"github.com/royalur/royalur-go/internal/lut/encode"
)

// A starting piece count of 1 keeps the state space small enough to
// enumerate exhaustively in a test.
const testPieceCount = 1

func TestRunProducesDistinctKeys(t *testing.T) {
	enc := encode.NewStateEncoder(testPieceCount)
	e := New(testPieceCount, geometry.StandardShape, geometry.BellPaths)

	seen := make(map[uint32]bool)
	total, err := e.Run(enc, 64, func(chunk Chunk) error {
		for _, key := range chunk {
			if seen[key] {
				t.Errorf("key %d was produced more than once", key)
			}
			seen[key] = true
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if total == 0 {
		t.Fatal("expected at least one enumerated state")
	}
	if len(seen) == 0 {
		t.Fatal("expected at least one distinct key")
	}
}

func TestRunPropagatesSinkError(t *testing.T) {
	enc := encode.NewStateEncoder(testPieceCount)
	e := New(testPieceCount, geometry.StandardShape, geometry.BellPaths)

	sentinel := errors.New("sink failed")
	_, err := e.Run(enc, 1, func(chunk Chunk) error {
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("Run returned %v, want the sink's error", err)
	}
}

func TestWithZeroStartingPiecesOnlyEmptyBoard(t *testing.T) {
	enc := encode.NewStateEncoder(0)
	e := New(0, geometry.StandardShape, geometry.BellPaths)

	var keys []uint32
	_, err := e.Run(enc, 64, func(chunk Chunk) error {
		keys = append(keys, chunk...)
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(keys) != 1 {
		t.Fatalf("with 0 starting pieces there is exactly one reachable state, got %d", len(keys))
	}
	if keys[0] != 0 {
		t.Errorf("the single reachable state should be the empty board with empty reserves, got key %d", keys[0])
	}
}

func TestBuildCellsCoversTwentyTiles(t *testing.T) {
	cells := buildCells(geometry.BellPaths)
	if len(cells) != 20 {
		t.Fatalf("expected 20 addressable cells, got %d", len(cells))
	}
}
