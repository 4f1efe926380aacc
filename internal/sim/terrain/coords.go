package terrain

import (
	"fmt"
	"math"
)

// GridSize is a width/height pair, in chunks or in tiles depending on context.
type GridSize struct {
	X int
	Y int
}

// ChunkCoord addresses a chunk within the chunk grid.
type ChunkCoord struct {
	X int
	Y int
}

// TileCoord addresses a tile, either globally (spanning chunks) or locally
// within one chunk. Which one is meant is part of each function's contract.
type TileCoord struct {
	X int
	Y int
}

// WorldPos is a position on the ground plane (XZ), in world units.
type WorldPos struct {
	X float64
	Z float64
}

// Config fixes the grid geometry. All coordinate conversions derive from it.
type Config struct {
	ChunkGrid  GridSize // grid dimensions in chunks
	ChunkTiles GridSize // tiles per chunk, each axis
	TileSize   float64  // world units per tile
	Origin     WorldPos // world position of the grid's min corner

	FertilityMin float64
	FertilityMax float64
}

func (c Config) validate() error {
	if c.ChunkGrid.X <= 0 || c.ChunkGrid.Y <= 0 {
		return fmt.Errorf("%w: chunk grid %dx%d", ErrConfiguration, c.ChunkGrid.X, c.ChunkGrid.Y)
	}
	if c.ChunkTiles.X <= 0 || c.ChunkTiles.Y <= 0 {
		return fmt.Errorf("%w: chunk tiles %dx%d", ErrConfiguration, c.ChunkTiles.X, c.ChunkTiles.Y)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: tile size %v", ErrConfiguration, c.TileSize)
	}
	if c.FertilityMax <= c.FertilityMin {
		return fmt.Errorf("%w: fertility bounds [%v, %v]", ErrConfiguration, c.FertilityMin, c.FertilityMax)
	}
	return nil
}

// ChunkWorldSize is the extent of one chunk in world units, per axis.
func (c Config) ChunkWorldSize() (float64, float64) {
	return float64(c.ChunkTiles.X) * c.TileSize, float64(c.ChunkTiles.Y) * c.TileSize
}

// WorldToChunk maps a world position to the chunk containing it. The result
// is not clamped; callers clamp when they need a valid in-grid chunk.
func (c Config) WorldToChunk(p WorldPos) ChunkCoord {
	sx, sy := c.ChunkWorldSize()
	return ChunkCoord{
		X: int(math.Floor((p.X - c.Origin.X) / sx)),
		Y: int(math.Floor((p.Z - c.Origin.Z) / sy)),
	}
}

// ChunkToWorldOrigin returns the world position of a chunk's min corner.
func (c Config) ChunkToWorldOrigin(cc ChunkCoord) WorldPos {
	sx, sy := c.ChunkWorldSize()
	return WorldPos{
		X: c.Origin.X + float64(cc.X)*sx,
		Z: c.Origin.Z + float64(cc.Y)*sy,
	}
}

// WorldToGlobalTile maps a world position to the global tile containing it.
func (c Config) WorldToGlobalTile(p WorldPos) TileCoord {
	return TileCoord{
		X: int(math.Floor((p.X - c.Origin.X) / c.TileSize)),
		Y: int(math.Floor((p.Z - c.Origin.Z) / c.TileSize)),
	}
}

// GlobalTileToWorld returns the world position of a global tile's center.
func (c Config) GlobalTileToWorld(t TileCoord) WorldPos {
	return WorldPos{
		X: c.Origin.X + float64(t.X)*c.TileSize + c.TileSize/2,
		Z: c.Origin.Z + float64(t.Y)*c.TileSize + c.TileSize/2,
	}
}

// GlobalToChunkLocal splits a global tile coordinate into its owning chunk
// and the tile's position within that chunk. Fails with ErrOutOfRange when
// the owning chunk lies outside the grid; callers must check before mutating.
func (c Config) GlobalToChunkLocal(t TileCoord) (ChunkCoord, TileCoord, error) {
	cc := ChunkCoord{
		X: floorDiv(t.X, c.ChunkTiles.X),
		Y: floorDiv(t.Y, c.ChunkTiles.Y),
	}
	if cc.X < 0 || cc.X >= c.ChunkGrid.X || cc.Y < 0 || cc.Y >= c.ChunkGrid.Y {
		return cc, TileCoord{}, fmt.Errorf("%w: global tile (%d,%d) in chunk (%d,%d)", ErrOutOfRange, t.X, t.Y, cc.X, cc.Y)
	}
	local := TileCoord{
		X: mod(t.X, c.ChunkTiles.X),
		Y: mod(t.Y, c.ChunkTiles.Y),
	}
	return cc, local, nil
}

func floorDiv(a, b int) int {
	// b > 0
	q := a / b
	r := a % b
	if r < 0 {
		q--
	}
	return q
}

func mod(a, b int) int {
	// b > 0
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
