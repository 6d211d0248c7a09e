// Package enumerate walks the full space of legal board configurations
// for a given starting piece count and feeds each one to the encoder,
// producing every key a look-up table must cover. The producer/consumer
// split mirrors internal/engine/engine.go's search dispatch: one
// goroutine walks the state space (the producer) and sends boards over
// a bounded channel; the goroutine that called Run receives them,
// encodes them, and buffers output in chunks (the consumer).
package enumerate

import (
	"fmt"
	"log"
	"sync"

	"github.com/royalur/royalur-go/internal/geometry"
	"github.com/royalur/royalur-go/internal/lut/encode"
	"github.com/royalur/royalur-go/internal/rules"
)

// DefaultChunkSize matches the ~10^6 records per output chunk the
// enumerator's buffering is sized for.
const DefaultChunkSize = 1_000_000

// cellKind classifies one of the 20 addressable board cells (6 per side
// lane, 8 in the shared center lane) by which occupants are legal there.
type cellKind int

const (
	cellLightOnly cellKind = iota
	cellDarkOnly
	cellShared
)

type cell struct {
	ix, iy         int
	kind           cellKind
	lightPathIndex int
	darkPathIndex  int
}

// sideLaneRows mirrors internal/lut/encode's: the 6 on-path rows of the
// outer columns, skipping the two rows never on either player's path.
var sideLaneRows = [6]int{0, 1, 2, 3, 6, 7}

const (
	lightColumn  = 0
	centerColumn = 1
	darkColumn   = 2
)

func buildCells(paths geometry.PathPair) []cell {
	lightPath := paths.Get(geometry.Light)
	darkPath := paths.Get(geometry.Dark)

	var cells []cell
	for _, iy := range sideLaneRows {
		tile := geometry.TileFromIndices(lightColumn, iy)
		cells = append(cells, cell{ix: lightColumn, iy: iy, kind: cellLightOnly, lightPathIndex: indexOf(lightPath, tile)})
	}
	for iy := 0; iy < 8; iy++ {
		tile := geometry.TileFromIndices(centerColumn, iy)
		cells = append(cells, cell{
			ix: centerColumn, iy: iy, kind: cellShared,
			lightPathIndex: indexOf(lightPath, tile),
			darkPathIndex:  indexOf(darkPath, tile),
		})
	}
	for _, iy := range sideLaneRows {
		tile := geometry.TileFromIndices(darkColumn, iy)
		cells = append(cells, cell{ix: darkColumn, iy: iy, kind: cellDarkOnly, darkPathIndex: indexOf(darkPath, tile)})
	}
	return cells
}

func indexOf(path []geometry.Tile, tile geometry.Tile) int {
	for i, t := range path {
		if t == tile {
			return i
		}
	}
	panic(fmt.Sprintf("tile %s is not on the given path", tile))
}

// Record is one emitted board configuration, still tagged with the
// reserve pair that produced it so the consumer can encode it without
// re-deriving reserves from the board.
type Record struct {
	Board        *rules.Board
	LightReserve int
	DarkReserve  int
}

// Enumerator walks every legal board configuration reachable under a
// fixed starting piece count, board shape, and path pair.
type Enumerator struct {
	startingPieceCount int
	shape              geometry.BoardShape
	paths              geometry.PathPair
	cells              []cell
}

// New builds an Enumerator. Construction is cheap; the cell table is
// small and computed once up front.
func New(startingPieceCount int, shape geometry.BoardShape, paths geometry.PathPair) *Enumerator {
	return &Enumerator{
		startingPieceCount: startingPieceCount,
		shape:              shape,
		paths:              paths,
		cells:              buildCells(paths),
	}
}

// produce walks every (lightReserve, darkReserve) pair and, for each,
// every legal board configuration consistent with it, sending a Record
// per configuration to out. Closes out when done.
func (e *Enumerator) produce(out chan<- Record) {
	defer close(out)

	board := rules.NewBoard(e.shape)
	for lightReserve := 0; lightReserve <= e.startingPieceCount; lightReserve++ {
		for darkReserve := 0; darkReserve <= e.startingPieceCount; darkReserve++ {
			budgetLight := e.startingPieceCount - lightReserve
			budgetDark := e.startingPieceCount - darkReserve
			board.Clear()
			e.walk(board, 0, budgetLight, budgetDark, lightReserve, darkReserve, out)
		}
	}
}

func (e *Enumerator) walk(board *rules.Board, index, budgetLight, budgetDark, lightReserve, darkReserve int, out chan<- Record) {
	if index == len(e.cells) {
		// Whatever part of a side's budget was not placed on the board is
		// that side's score, so every placement is a legal configuration.
		out <- Record{Board: board.Copy(), LightReserve: lightReserve, DarkReserve: darkReserve}
		return
	}

	c := e.cells[index]
	tile := geometry.TileFromIndices(c.ix, c.iy)

	// Always try leaving the cell empty.
	board.Set(tile, nil)
	e.walk(board, index+1, budgetLight, budgetDark, lightReserve, darkReserve, out)

	switch c.kind {
	case cellLightOnly:
		if budgetLight > 0 {
			piece := rules.NewPiece(geometry.Light, c.lightPathIndex)
			board.Set(tile, &piece)
			e.walk(board, index+1, budgetLight-1, budgetDark, lightReserve, darkReserve, out)
			board.Set(tile, nil)
		}
	case cellDarkOnly:
		if budgetDark > 0 {
			piece := rules.NewPiece(geometry.Dark, c.darkPathIndex)
			board.Set(tile, &piece)
			e.walk(board, index+1, budgetLight, budgetDark-1, lightReserve, darkReserve, out)
			board.Set(tile, nil)
		}
	case cellShared:
		if budgetDark > 0 {
			piece := rules.NewPiece(geometry.Dark, c.darkPathIndex)
			board.Set(tile, &piece)
			e.walk(board, index+1, budgetLight, budgetDark-1, lightReserve, darkReserve, out)
			board.Set(tile, nil)
		}
		if budgetLight > 0 {
			piece := rules.NewPiece(geometry.Light, c.lightPathIndex)
			board.Set(tile, &piece)
			e.walk(board, index+1, budgetLight-1, budgetDark, lightReserve, darkReserve, out)
			board.Set(tile, nil)
		}
	}
}

// Chunk is a batch of encoded keys, handed to Sink in emission order.
type Chunk []uint32

// Sink receives successive Chunks of up to chunkSize keys. The final
// chunk of a run may be shorter.
type Sink func(Chunk) error

// Run drives the producer/consumer pair to completion: the producer
// goroutine walks the state space via produce, while Run itself acts as
// the consumer, encoding each Record with enc and flushing
// chunkSize-sized batches to sink. Run returns once the producer has
// closed the channel and every record has been received, with the total
// number of keys produced, or the first error raised by sink. Keys are
// handed to sink in walk order, which is not ascending key order.
func (e *Enumerator) Run(enc *encode.StateEncoder, chunkSize int, sink Sink) (int, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	records := make(chan Record, 4096)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		e.produce(records)
	}()

	// The producer closes records (the bounded queue's sentinel) when the
	// walk completes; wg exists only so a future multi-producer split
	// (e.g. one goroutine per reserve pair) can join the same way
	// internal/engine/engine.go joins its search workers.
	go func() {
		wg.Wait()
	}()

	var (
		total int
		err   error
		chunk = make(Chunk, 0, chunkSize)
	)

	for rec := range records {
		if err != nil {
			continue // drain the channel so the producer goroutine doesn't leak
		}
		chunk = append(chunk, enc.EncodeReserves(rec.Board, rec.DarkReserve, rec.LightReserve))
		total++
		if len(chunk) == chunkSize {
			if sinkErr := sink(chunk); sinkErr != nil {
				err = sinkErr
				continue
			}
			chunk = make(Chunk, 0, chunkSize)
			log.Printf("enumerated %d states", total)
		}
	}

	if err == nil && len(chunk) > 0 {
		err = sink(chunk)
	}
	if err == nil {
		log.Printf("enumerated %d states", total)
	}
	return total, err
}
