package rules

import "github.com/royalur/royalur-go/internal/geometry"

// PlayerState is one side's reserve count and score. The invariant
// Reserve + on-board pieces + Score == starting piece count is
// maintained by the rule engine; PlayerState itself is a plain value
// with no behaviour beyond construction.
type PlayerState struct {
	Player  geometry.Player
	Reserve int
	Score   int
}

// NewPlayerState builds the starting reserve for a player under the
// given starting piece count: full reserve, zero score.
func NewPlayerState(player geometry.Player, startingPieceCount int) PlayerState {
	return PlayerState{Player: player, Reserve: startingPieceCount, Score: 0}
}
