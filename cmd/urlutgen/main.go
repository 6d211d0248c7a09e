// Command urlutgen is a headless batch tool that enumerates every legal
// board configuration for a ruleset and writes the resulting keys out as
// a .rgu look-up-table file. It does not solve the game: the values slab
// is written as a placeholder (see dedupeAndSort below), ready for an
// external solver pass to overwrite with real minimax/retrograde values.
// Flag parsing and the log.Fatal-on-fatal-error shape follow
// cmd/chessplay-uci/main.go; the producer/consumer enumeration itself is
// internal/lut/enumerate, grounded on generate_states.py.
package main

import (
	"flag"
	"log"
	"sort"

	"github.com/royalur/royalur-go/internal/lut/encode"
	"github.com/royalur/royalur-go/internal/lut/enumerate"
	"github.com/royalur/royalur-go/internal/lut/format"
	"github.com/royalur/royalur-go/internal/rules"
)

var (
	variant = flag.String("variant", "finkel", "ruleset variant: finkel, masters, or aseb")
	pieces  = flag.Int("pieces", 0, "override the variant's starting piece count (0 = use the variant default)")
	out     = flag.String("out", "out.rgu", "output .rgu file path")
	author  = flag.String("author", "", "author field recorded in the output file's JSON header")
)

func main() {
	flag.Parse()

	settings := settingsForVariant(*variant)
	startingPieceCount := settings.StartingPieceCount
	if *pieces > 0 {
		startingPieceCount = *pieces
	}

	log.Printf("enumerating %s (%d starting pieces per side)", *variant, startingPieceCount)

	enc := encode.NewStateEncoder(startingPieceCount)
	log.Printf("center lane compresses to %d reachable occupancies", enc.MaxCompressed())

	enumerator := enumerate.New(startingPieceCount, settings.BoardShape, settings.Paths)

	var allKeys []uint32
	total, err := enumerator.Run(enc, enumerate.DefaultChunkSize, func(chunk enumerate.Chunk) error {
		allKeys = append(allKeys, chunk...)
		return nil
	})
	if err != nil {
		log.Fatalf("enumeration failed: %v", err)
	}
	log.Printf("enumerated %d total states", total)

	keys, values := dedupeAndSort(allKeys)
	log.Printf("%d unique keys after deduplication", len(keys))

	header := map[string]any{
		"variant":              *variant,
		"starting_piece_count": startingPieceCount,
		"author":               *author,
		"solved":               false,
	}
	err = format.WriteFile(*out, header, []format.MapData{
		{Keys: keys, Values: values},
	})
	if err != nil {
		log.Fatalf("writing %s: %v", *out, err)
	}
	log.Printf("wrote %s", *out)
}

// dedupeAndSort collapses the enumerator's raw key stream (which may
// contain duplicates, since different reserve/board combinations can
// collide at the key level only if the encoder has a bug, but defending
// against that cheaply here costs nothing) into the sorted, deduplicated
// key/value pair the file format's binary search requires, stamping
// every entry with the "unsolved" sentinel value.
func dedupeAndSort(raw []uint32) ([]uint32, []uint16) {
	sorted := append([]uint32(nil), raw...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	keys := make([]uint32, 0, len(sorted))
	for i, k := range sorted {
		if i == 0 || k != sorted[i-1] {
			keys = append(keys, k)
		}
	}

	const unsolvedSentinel = 0xFFFF
	values := make([]uint16, len(keys))
	for i := range values {
		values[i] = unsolvedSentinel
	}
	return keys, values
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
