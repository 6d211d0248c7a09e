package rules

import (
	"github.com/royalur/royalur-go/internal/dice"
	"github.com/royalur/royalur-go/internal/geometry"
)

// DiceFactory produces a fresh Dice instance; settings hold a factory
// rather than a shared Dice value so that stateful dice variants (none
// exist yet, but the contract reserves the option) get independent
// state per game.
type DiceFactory func() dice.Dice

// GameSettings is the immutable bundle of rules a game is played under.
// Every field is set at construction and never mutated.
type GameSettings struct {
	BoardShape               geometry.BoardShape
	Paths                    geometry.PathPair
	DiceFactory              DiceFactory
	StartingPieceCount       int
	SafeRosettes              bool
	RosettesGrantExtraRolls  bool
	CapturesGrantExtraRolls  bool
}

// NewGameSettings validates and builds a GameSettings value, panicking
// if StartingPieceCount is less than 1 (the original implementation's
// own constructor-time check).
func NewGameSettings(
	boardShape geometry.BoardShape,
	paths geometry.PathPair,
	diceFactory DiceFactory,
	startingPieceCount int,
	safeRosettes, rosettesGrantExtraRolls, capturesGrantExtraRolls bool,
) GameSettings {
	if startingPieceCount < 1 {
		panic("starting piece count must be at least 1")
	}
	return GameSettings{
		BoardShape:              boardShape,
		Paths:                   paths,
		DiceFactory:             diceFactory,
		StartingPieceCount:      startingPieceCount,
		SafeRosettes:            safeRosettes,
		RosettesGrantExtraRolls: rosettesGrantExtraRolls,
		CapturesGrantExtraRolls: capturesGrantExtraRolls,
	}
}

// FinkelSettings reproduces the ruleset used in the Tom Scott vs. Irving
// Finkel video: Standard board, Bell paths, four-binary dice, 7 starting
// pieces, safe rosettes, rosettes grant extra rolls, captures do not.
func FinkelSettings() GameSettings {
	return NewGameSettings(
		geometry.StandardShape,
		geometry.BellPaths,
		func() dice.Dice { return dice.NewFourBinary() },
		7, true, true, false,
	)
}

// MastersSettings reproduces James Masters' proposed ruleset: Standard
// board, Masters paths, four-binary dice, 7 starting pieces, rosettes
// are NOT safe, rosettes grant extra rolls, captures do not.
func MastersSettings() GameSettings {
	return NewGameSettings(
		geometry.StandardShape,
		geometry.MastersPaths,
		func() dice.Dice { return dice.NewFourBinary() },
		7, false, true, false,
	)
}

// AsebSettings reproduces the settings conventionally used for Aseb:
// Aseb board, Aseb paths, three-binary zero-as-max dice, 5 starting
// pieces (the normative fix for the ambiguity between Aseb's original
// sources — see DESIGN.md), safe rosettes, rosettes grant extra rolls,
// captures do not.
func AsebSettings() GameSettings {
	return NewGameSettings(
		geometry.AsebShape,
		geometry.AsebPaths,
		func() dice.Dice { return dice.NewThreeBinaryZeroAsMax() },
		5, true, true, false,
	)
}
