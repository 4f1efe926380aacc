package terrain

// Grid owns the chunk collection and is the entry point for all terrain
// operations. Accessed from a single authoring/update context at a time;
// there is no internal locking.
type Grid struct {
	cfg    Config
	chunks []*Chunk // row-major, y*ChunkGrid.X + x

	observers []func()
	season    string
}

// New builds a grid for cfg with default tiles in every chunk.
func New(cfg Config) (*Grid, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	g := &Grid{cfg: cfg}
	g.Reinitialize()
	return g, nil
}

func (g *Grid) Config() Config { return g.cfg }

// SetConfig swaps the grid configuration and resizes the chunk collection to
// match. On validation failure the previous configuration stays in effect.
func (g *Grid) SetConfig(cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	g.cfg = cfg
	g.Reinitialize()
	return nil
}

// Reinitialize resizes the chunk collection to the configured count. Growth
// allocates fresh default chunks, shrink truncates from the end. Surviving
// chunks keep their tiles unless the per-chunk geometry changed, and get
// their coordinate reassigned to match the current layout.
func (g *Grid) Reinitialize() {
	want := g.cfg.ChunkGrid.X * g.cfg.ChunkGrid.Y
	chunks := make([]*Chunk, want)
	for i := 0; i < want; i++ {
		coord := ChunkCoord{X: i % g.cfg.ChunkGrid.X, Y: i / g.cfg.ChunkGrid.X}
		if i < len(g.chunks) {
			old := g.chunks[i]
			if old.Size == g.cfg.ChunkTiles && old.TileSize == g.cfg.TileSize {
				old.Coord = coord
				chunks[i] = old
				continue
			}
		}
		chunks[i] = newChunk(coord, g.cfg.ChunkTiles, g.cfg.TileSize)
	}
	g.chunks = chunks
}

// ChunkAt returns the chunk at a chunk-grid coordinate, or nil when out of
// range.
func (g *Grid) ChunkAt(x, y int) *Chunk {
	if x < 0 || x >= g.cfg.ChunkGrid.X || y < 0 || y >= g.cfg.ChunkGrid.Y {
		return nil
	}
	return g.chunks[y*g.cfg.ChunkGrid.X+x]
}

// TileAt returns the tile at a chunk + local coordinate, or nil when either
// level is out of range.
func (g *Grid) TileAt(chunkX, chunkY, localX, localY int) *Tile {
	c := g.ChunkAt(chunkX, chunkY)
	if c == nil {
		return nil
	}
	return c.At(localX, localY)
}

// tileAtGlobal routes a global tile coordinate to its owner chunk.
func (g *Grid) tileAtGlobal(t TileCoord) (*Chunk, *Tile) {
	cc, local, err := g.cfg.GlobalToChunkLocal(t)
	if err != nil {
		return nil, nil
	}
	c := g.ChunkAt(cc.X, cc.Y)
	if c == nil {
		return nil, nil
	}
	return c, c.At(local.X, local.Y)
}

// ForEachTile visits every tile in the grid in chunk order, then row-major
// within each chunk.
func (g *Grid) ForEachTile(fn func(chunk ChunkCoord, local TileCoord, t *Tile)) {
	for _, c := range g.chunks {
		for y := 0; y < c.Size.Y; y++ {
			for x := 0; x < c.Size.X; x++ {
				fn(c.Coord, TileCoord{X: x, Y: y}, &c.Tiles[c.index(x, y)])
			}
		}
	}
}

// OnChange registers a callback fired once after every successful mutating
// batch (brush, selection, influence pass).
func (g *Grid) OnChange(fn func()) {
	g.observers = append(g.observers, fn)
}

func (g *Grid) notifyChanged() {
	for _, fn := range g.observers {
		fn()
	}
}

// CurrentSeason is host-fed calendar state; crop season tags compare against
// it in growth logic, the grid itself only stores it.
func (g *Grid) CurrentSeason() string { return g.season }

func (g *Grid) SetCurrentSeason(season string) { g.season = season }

func (g *Grid) clampFertility(v float64) float64 {
	if v < g.cfg.FertilityMin {
		return g.cfg.FertilityMin
	}
	if v > g.cfg.FertilityMax {
		return g.cfg.FertilityMax
	}
	return v
}
