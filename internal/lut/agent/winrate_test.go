package agent

import (
	"math"
	"math/rand"
	"testing"

	"github.com/royalur/royalur-go/internal/dice"
	"github.com/royalur/royalur-go/internal/driver"
	"github.com/royalur/royalur-go/internal/geometry"
	"github.com/royalur/royalur-go/internal/lut/encode"
	"github.com/royalur/royalur-go/internal/rules"
	"github.com/royalur/royalur-go/internal/rules/engine"
	"github.com/royalur/royalur-go/internal/rules/state"
)

// outcome is one edge out of a canonical (always Light-to-move) state in
// the reachable-state graph built by solveForWinRate: either a terminal
// result, or a further canonical state together with whether the turn
// stayed with the same side (an extra turn) or passed (requiring the
// 1-V identity to translate the opponent's win probability back).
type outcome struct {
	terminal bool
	win      bool
	sameSide bool
	nextKey  uint32
}

// solveForWinRate exactly solves the given (small) starting-piece-count
// game by value iteration over its full reachable state space, canonicalized
// into the Light-to-move subspace the real LUT format addresses, the same
// way Agent.valueOf does for a single move. This mirrors what
// cmd/urlutgen's enumerator + an external solver would do at full scale;
// a starting piece count of 2 keeps the reachable space small enough to
// solve inline in a test, the same tractability trade internal/lut/enumerate's
// own tests make (see enumerate_test.go's testPieceCount = 1).
func solveForWinRate(t *testing.T, settings rules.GameSettings, e *engine.RuleEngine, enc *encode.StateEncoder) map[uint32]float64 {
	t.Helper()

	d := settings.DiceFactory()
	maxRoll := d.MaxRoll()
	probs := d.Probabilities()

	initial := e.GenerateInitialState()
	initialKey := enc.EncodeState(initial)

	visited := map[uint32]state.State{initialKey: initial}
	queue := []state.State{initial}
	transitions := make(map[uint32][][]outcome)

	canonicalize := func(s state.State) (uint32, state.State) {
		canon := s
		if s.Turn != geometry.Light {
			canon = s.CopyInverted()
		}
		return enc.EncodeState(canon), canon
	}

	enqueue := func(key uint32, s state.State) {
		if _, ok := visited[key]; ok {
			return
		}
		visited[key] = s
		queue = append(queue, s)
	}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		ckey := enc.EncodeState(c)
		if _, done := transitions[ckey]; done {
			continue
		}

		rollOutcomes := make([][]outcome, maxRoll+1)
		for r := 0; r <= maxRoll; r++ {
			var moves []rules.Move
			if r > 0 {
				moves = e.FindAvailableMoves(c.Board, c.Light, r)
			}

			if r == 0 || len(moves) == 0 {
				passed := state.NewWaitingForRoll(c.Board, c.Light, c.Dark, geometry.Dark)
				key, canon := canonicalize(passed)
				enqueue(key, canon)
				rollOutcomes[r] = []outcome{{sameSide: false, nextKey: key}}
				continue
			}

			waiting := state.NewWaitingForMove(c.Board, c.Light, c.Dark, geometry.Light, dice.Roll{Value: r}, moves)
			outcomes := make([]outcome, 0, len(moves))
			for _, m := range moves {
				_, next := e.ApplyMove(waiting, m)
				if next.IsFinished() {
					outcomes = append(outcomes, outcome{terminal: true, win: next.Winner == geometry.Light})
					continue
				}
				if next.Turn == geometry.Light {
					key := enc.EncodeState(next)
					enqueue(key, next)
					outcomes = append(outcomes, outcome{sameSide: true, nextKey: key})
					continue
				}
				key, canon := canonicalize(next)
				enqueue(key, canon)
				outcomes = append(outcomes, outcome{sameSide: false, nextKey: key})
			}
			rollOutcomes[r] = outcomes
		}
		transitions[ckey] = rollOutcomes
	}

	keys := make([]uint32, 0, len(visited))
	for k := range visited {
		keys = append(keys, k)
	}

	values := make(map[uint32]float64, len(keys))
	for _, k := range keys {
		values[k] = 0.5
	}

	const sweeps = 3000
	for i := 0; i < sweeps; i++ {
		for _, k := range keys {
			var total float64
			for r, outcomes := range transitions[k] {
				best := -1.0
				for _, o := range outcomes {
					var v float64
					switch {
					case o.terminal && o.win:
						v = 1
					case o.terminal:
						v = 0
					case o.sameSide:
						v = values[o.nextKey]
					default:
						v = 1 - values[o.nextKey]
					}
					if v > best {
						best = v
					}
				}
				total += probs[r] * best
			}
			values[k] = total
		}
	}

	return values
}

// TestLightAgentWinRate exactly solves a reduced-piece-count Finkel-rules
// game (2 starting pieces per side, see solveForWinRate) and drives 100
// seeded games of a LUT agent playing the solved values as Light against
// a uniform-random Dark, through the same driver.Driver + Agent plumbing
// a real playthrough uses. A table built from exact win probabilities
// should beat random play overwhelmingly; this only asserts the > 75
// threshold to match what a full-scale Finkel table is expected to
// achieve against a random opponent.
func TestLightAgentWinRate(t *testing.T) {
	settings := testSettings()
	e := engine.New(settings)
	enc := encode.NewStateEncoder(settings.StartingPieceCount)

	values := solveForWinRate(t, settings, e, enc)

	keys := make([]uint32, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	vals := make([]uint16, len(keys))
	for i, k := range keys {
		p := values[k]
		if p < 0 {
			p = 0
		}
		if p > 1 {
			p = 1
		}
		vals[i] = uint16(math.Round(p * 65535))
	}
	table := buildTable(t, keys, vals)
	a := New(e, enc, table)

	const numGames = 100
	const maxPlies = 100000

	lightWins := 0
	for seed := 1; seed <= numGames; seed++ {
		rng := rand.New(rand.NewSource(int64(seed)))
		g := driver.New(settings, rng)

		for ply := 0; !g.IsFinished(); ply++ {
			if ply > maxPlies {
				t.Fatalf("game %d did not finish within %d plies", seed, maxPlies)
			}
			if g.IsWaitingForRoll() {
				if _, err := g.RollDice(); err != nil {
					t.Fatalf("RollDice: %v", err)
				}
				continue
			}

			current := g.CurrentState()
			moves := g.FindAvailableMoves()
			var chosen rules.Move
			if current.Turn == geometry.Light {
				var err error
				chosen, err = a.SelectMove(current)
				if err != nil {
					t.Fatalf("SelectMove: %v", err)
				}
			} else {
				chosen = moves[rng.Intn(len(moves))]
			}
			if err := g.MakeMove(chosen); err != nil {
				t.Fatalf("MakeMove: %v", err)
			}
		}

		winner, ok := g.GetWinner()
		if !ok {
			t.Fatalf("game %d finished without a winner", seed)
		}
		if winner == geometry.Light {
			lightWins++
		}
	}

	if lightWins <= 75 {
		t.Errorf("LUT-driven Light won %d/%d games against uniform-random Dark, want > 75", lightWins, numGames)
	}
}
