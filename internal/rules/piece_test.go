package rules

import (
	"testing"

	"github.com/royalur/royalur-go/internal/geometry"
)

func TestPieceChar(t *testing.T) {
	light := NewPiece(geometry.Light, 0)
	dark := NewPiece(geometry.Dark, 0)

	if c := Char(&light); c != 'L' {
		t.Errorf("Char(light) = %q, want 'L'", c)
	}
	if c := Char(&dark); c != 'D' {
		t.Errorf("Char(dark) = %q, want 'D'", c)
	}
	if c := Char(nil); c != '.' {
		t.Errorf("Char(nil) = %q, want '.'", c)
	}
}

func TestNewPiecePanicsOnNegativeIndex(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewPiece with a negative path index should have panicked")
		}
	}()
	NewPiece(geometry.Light, -1)
}
