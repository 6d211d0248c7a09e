// Command urplay is a terminal demo driver: it loads a look-up-table
// file built by cmd/urlutgen and plays Light (LUT-driven, one-ply)
// against Dark (uniform-random), printing each state's board rendering
// and the final winner. It replaces the teacher's Ebitengine GUI entry
// point — an HTTP/UI surface is out of scope here, but a runnable
// end-to-end demo of the Driver API is not.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/royalur/royalur-go/internal/driver"
	"github.com/royalur/royalur-go/internal/geometry"
	"github.com/royalur/royalur-go/internal/lut/agent"
	"github.com/royalur/royalur-go/internal/lut/encode"
	"github.com/royalur/royalur-go/internal/rules"
	"github.com/royalur/royalur-go/internal/rules/engine"
)

var (
	lutPath = flag.String("lut", "out.rgu", "LUT file to drive the Light player with")
	variant = flag.String("variant", "finkel", "ruleset variant: finkel, masters, or aseb")
	seed    = flag.Int64("seed", 1, "seed for the random Dark player and dice rolls")
)

func main() {
	flag.Parse()

	settings := settingsForVariant(*variant)
	rng := rand.New(rand.NewSource(*seed))

	enc := encode.NewStateEncoder(settings.StartingPieceCount)
	lutAgent, err := agent.Load(*lutPath, engine.New(settings), enc)
	if err != nil {
		log.Fatalf("loading LUT from %s: %v", *lutPath, err)
	}

	game := driver.New(settings, rng)
	log.Printf("starting a %s game, Light driven by %s, Dark playing uniformly at random", *variant, *lutPath)

	for !game.IsFinished() {
		fmt.Println(game.CurrentState().Board.String())

		if game.IsWaitingForRoll() {
			roll, err := game.RollDice()
			if err != nil {
				log.Fatalf("rolling dice: %v", err)
			}
			log.Printf("rolled %d", roll.Value)
			continue
		}

		if game.IsWaitingForMove() {
			moves := game.FindAvailableMoves()
			turn := game.CurrentState().Turn

			var chosen rules.Move
			if turn == geometry.Light {
				chosen, err = lutAgent.SelectMove(game.CurrentState())
				if err != nil {
					log.Fatalf("LUT agent move selection: %v", err)
				}
			} else {
				chosen = moves[rng.Intn(len(moves))]
			}

			log.Printf("%s: %s", turn, chosen.Describe())
			if err := game.MakeMove(chosen); err != nil {
				log.Fatalf("applying move: %v", err)
			}
		}
	}

	fmt.Println(game.CurrentState().Board.String())
	winner, _ := game.GetWinner()
	log.Printf("%s wins", winner)
}

func settingsForVariant(name string) rules.GameSettings {
	switch name {
	case "finkel":
		return rules.FinkelSettings()
	case "masters":
		return rules.MastersSettings()
	case "aseb":
		return rules.AsebSettings()
	default:
		log.Fatalf("unknown variant %q: expected finkel, masters, or aseb", name)
		panic("unreachable")
	}
}
