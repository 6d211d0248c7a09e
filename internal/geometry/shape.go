package geometry

// BoardShape is a named, immutable set of on-board tiles plus the subset
// of those tiles that are rosettes. The minimum x and y coordinate of
// every board shape must be 1 (tiles are addressed with 1-based, not
// 0-based, coordinates).
type BoardShape struct {
	name     string
	tiles    map[Tile]bool
	rosettes map[Tile]bool
	width    int
	height   int
}

// NewBoardShape builds a board shape, panicking if the tile set is empty
// or a rosette falls outside it, or if the shape is not translated to
// have a minimum coordinate of 1 in each axis — all three are
// construction-time invariant violations, not caller-facing errors.
func NewBoardShape(name string, tiles, rosettes []Tile) BoardShape {
	if len(tiles) == 0 {
		panic("a board shape requires at least one tile")
	}

	tileSet := make(map[Tile]bool, len(tiles))
	minX, minY := tiles[0].x, tiles[0].y
	maxX, maxY := tiles[0].x, tiles[0].y
	for _, t := range tiles {
		tileSet[t] = true
		if t.x < minX {
			minX = t.x
		}
		if t.y < minY {
			minY = t.y
		}
		if t.x > maxX {
			maxX = t.x
		}
		if t.y > maxY {
			maxY = t.y
		}
	}
	if minX != 1 || minY != 1 {
		panic("board shape must be translated to have minimum coordinate 1 in each axis")
	}

	rosetteSet := make(map[Tile]bool, len(rosettes))
	for _, r := range rosettes {
		if !tileSet[r] {
			panic("rosette tile does not exist on the board")
		}
		rosetteSet[r] = true
	}

	return BoardShape{
		name:     name,
		tiles:    tileSet,
		rosettes: rosetteSet,
		width:    maxX,
		height:   maxY,
	}
}

func (b BoardShape) Name() string { return b.name }
func (b BoardShape) Width() int   { return b.width }
func (b BoardShape) Height() int  { return b.height }
func (b BoardShape) Area() int    { return len(b.tiles) }

// Contains reports whether tile falls within this board shape.
func (b BoardShape) Contains(t Tile) bool { return b.tiles[t] }

// ContainsIndices reports the same as Contains, addressed by 0-based
// indices and bounds-checked against width/height first.
func (b BoardShape) ContainsIndices(ix, iy int) bool {
	if ix < 0 || iy < 0 || ix >= b.width || iy >= b.height {
		return false
	}
	return b.Contains(TileFromIndices(ix, iy))
}

// IsRosette reports whether tile is a rosette tile in this shape.
func (b BoardShape) IsRosette(t Tile) bool { return b.rosettes[t] }

// standard on-board tile sets, derived from the on-board (sentinel-
// stripped) portion of the corresponding PathPair, matching the
// original implementation's StandardBoardShape/AsebBoardShape
// construction from BellPathPair/AsebPathPair.
func unionTiles(a, b []Tile) []Tile {
	seen := make(map[Tile]bool, len(a)+len(b))
	var out []Tile
	for _, t := range append(append([]Tile{}, a...), b...) {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

var (
	StandardShape = NewBoardShape(
		"Standard",
		unionTiles(BellPaths.Get(Light), BellPaths.Get(Dark)),
		[]Tile{
			NewTile(1, 1), NewTile(3, 1), NewTile(2, 4), NewTile(1, 7), NewTile(3, 7),
		},
	)

	AsebShape = NewBoardShape(
		"Aseb",
		unionTiles(AsebPaths.Get(Light), AsebPaths.Get(Dark)),
		[]Tile{
			NewTile(1, 1), NewTile(3, 1), NewTile(2, 4), NewTile(2, 8), NewTile(2, 12),
		},
	)
)
