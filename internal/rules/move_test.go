package rules

import (
	"testing"

	"github.com/royalur/royalur-go/internal/geometry"
)

func TestMoveDescribeScoring(t *testing.T) {
	src := geometry.NewTile(1, 6)
	m := Move{Player: geometry.Light, Source: &src}
	if !m.IsScoring() {
		t.Fatal("a move with a nil Dest should be scoring")
	}
	want := "Score a piece from A6"
	if got := m.Describe(); got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
}

func TestMoveDescribeIntroducing(t *testing.T) {
	dst := geometry.NewTile(1, 1)
	m := Move{Player: geometry.Light, Dest: &dst}
	if !m.IsIntroducing() {
		t.Fatal("a move with a nil Source should be introducing")
	}
	if got := m.Describe(); got != "Introduce a piece to A1" {
		t.Errorf("Describe() = %q, want %q", got, "Introduce a piece to A1")
	}
}

func TestMoveDescribeIntroducingCapture(t *testing.T) {
	dst := geometry.NewTile(1, 1)
	captured := NewPiece(geometry.Dark, 0)
	m := Move{Player: geometry.Light, Dest: &dst, CapturedPiece: &captured}
	if !m.IsCapture() {
		t.Fatal("a move with a non-nil CapturedPiece should be a capture")
	}
	if got := m.Describe(); got != "Introduce a piece to capture A1" {
		t.Errorf("Describe() = %q, want %q", got, "Introduce a piece to capture A1")
	}
}

func TestMoveDescribeBoardMove(t *testing.T) {
	src := geometry.NewTile(1, 1)
	dst := geometry.NewTile(1, 2)
	m := Move{Player: geometry.Light, Source: &src, Dest: &dst}
	if got := m.Describe(); got != "Move A1 to A2" {
		t.Errorf("Describe() = %q, want %q", got, "Move A1 to A2")
	}
}

func TestMoveDescribeBoardMoveCapture(t *testing.T) {
	src := geometry.NewTile(1, 1)
	dst := geometry.NewTile(1, 2)
	captured := NewPiece(geometry.Dark, 0)
	m := Move{Player: geometry.Light, Source: &src, Dest: &dst, CapturedPiece: &captured}
	if got := m.Describe(); got != "Move A1 to capture A2" {
		t.Errorf("Describe() = %q, want %q", got, "Move A1 to capture A2")
	}
}

func TestMoveDescribeIntroduceAndScorePanics(t *testing.T) {
	m := Move{Player: geometry.Light}
	defer func() {
		if recover() == nil {
			t.Error("an introduce-and-score move should have panicked")
		}
	}()
	m.Describe()
}
