package geometry

// Player identifies a side. It is defined here (rather than in the rules
// package) because paths are keyed by player before any board exists.
type Player int

const (
	Light Player = iota
	Dark
)

func (p Player) String() string {
	if p == Light {
		return "Light"
	}
	return "Dark"
}

// Other returns the opposing player.
func (p Player) Other() Player {
	if p == Light {
		return Dark
	}
	return Light
}

// PathPair is the named pair of on-board tile sequences a variant's
// pieces travel along, plus the off-board start (reserve) and end
// (scored) sentinels at each end.
type PathPair struct {
	name            string
	lightWithEnds   []Tile
	darkWithEnds    []Tile
	light           []Tile
	dark            []Tile
}

// NewPathPair builds a PathPair from the full sequences including the
// off-board start/end sentinels at index 0 and len-1.
func NewPathPair(name string, lightWithEnds, darkWithEnds []Tile) PathPair {
	return PathPair{
		name:          name,
		lightWithEnds: lightWithEnds,
		darkWithEnds:  darkWithEnds,
		light:         lightWithEnds[1 : len(lightWithEnds)-1],
		dark:          darkWithEnds[1 : len(darkWithEnds)-1],
	}
}

func (p PathPair) Name() string { return p.name }

// Get returns the on-board path for player, excluding the start/end
// sentinels.
func (p PathPair) Get(player Player) []Tile {
	if player == Light {
		return p.light
	}
	return p.dark
}

// GetWithEnds returns the path including the start/end sentinels.
func (p PathPair) GetWithEnds(player Player) []Tile {
	if player == Light {
		return p.lightWithEnds
	}
	return p.darkWithEnds
}

// Start returns the off-board reserve sentinel for player.
func (p PathPair) Start(player Player) Tile {
	return p.GetWithEnds(player)[0]
}

// End returns the off-board scored sentinel for player.
func (p PathPair) End(player Player) Tile {
	withEnds := p.GetWithEnds(player)
	return withEnds[len(withEnds)-1]
}

// IsEquivalent reports whether two path pairs cover the same tiles in
// the same order for the light player, ignoring the name and the dark
// path (mirrors the original implementation's equivalence check, which
// only compares the light path).
func (p PathPair) IsEquivalent(other PathPair) bool {
	if len(p.light) != len(other.light) {
		return false
	}
	for i := range p.light {
		if p.light[i] != other.light[i] {
			return false
		}
	}
	return true
}

// Standard path variants. Each is built from a small set of corner
// waypoints via CreatePath, mirroring the original implementation's
// BellPathPair/MastersPathPair/etc. constants.
// Each variant's CreatePath waypoints start and end one step off the
// board; those first/last tiles become the reserve/scored sentinels
// that NewPathPair strips into Start/End.
var (
	BellPaths = NewPathPair(
		"Bell",
		CreatePath(
			NewTile(1, 5), NewTile(1, 1), NewTile(2, 1), NewTile(2, 8),
			NewTile(1, 8), NewTile(1, 6),
		),
		CreatePath(
			NewTile(3, 5), NewTile(3, 1), NewTile(2, 1), NewTile(2, 8),
			NewTile(3, 8), NewTile(3, 6),
		),
	)

	MastersPaths = NewPathPair(
		"Masters",
		CreatePath(
			NewTile(1, 5), NewTile(1, 1), NewTile(2, 1), NewTile(2, 7),
			NewTile(3, 7), NewTile(3, 8), NewTile(1, 8), NewTile(1, 6),
		),
		CreatePath(
			NewTile(3, 5), NewTile(3, 1), NewTile(2, 1), NewTile(2, 7),
			NewTile(1, 7), NewTile(1, 8), NewTile(3, 8), NewTile(3, 6),
		),
	)

	MurrayPaths = NewPathPair(
		"Murray",
		CreatePath(
			NewTile(1, 5), NewTile(1, 1), NewTile(2, 1), NewTile(2, 7),
			NewTile(3, 7), NewTile(3, 8), NewTile(1, 8), NewTile(1, 7),
			NewTile(2, 7), NewTile(2, 1), NewTile(3, 1), NewTile(3, 5),
		),
		CreatePath(
			NewTile(3, 5), NewTile(3, 1), NewTile(2, 1), NewTile(2, 7),
			NewTile(1, 7), NewTile(1, 8), NewTile(3, 8), NewTile(3, 7),
			NewTile(2, 7), NewTile(2, 1), NewTile(1, 1), NewTile(1, 5),
		),
	)

	SkiriukPaths = NewPathPair(
		"Skiriuk",
		CreatePath(
			NewTile(1, 5), NewTile(1, 1), NewTile(2, 1), NewTile(2, 7),
			NewTile(3, 7), NewTile(3, 8), NewTile(1, 8), NewTile(1, 7),
			NewTile(2, 7), NewTile(2, 0),
		),
		CreatePath(
			NewTile(3, 5), NewTile(3, 1), NewTile(2, 1), NewTile(2, 7),
			NewTile(1, 7), NewTile(1, 8), NewTile(3, 8), NewTile(3, 7),
			NewTile(2, 7), NewTile(2, 0),
		),
	)

	AsebPaths = NewPathPair(
		"Aseb",
		CreatePath(
			NewTile(1, 5), NewTile(1, 1), NewTile(2, 1), NewTile(2, 12),
			NewTile(1, 12),
		),
		CreatePath(
			NewTile(3, 5), NewTile(3, 1), NewTile(2, 1), NewTile(2, 12),
			NewTile(3, 12),
		),
	)
)
