package terrain

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
)

// Chunk owns a fixed-size rectangle of tiles, stored row-major (y*w + x).
type Chunk struct {
	Coord    ChunkCoord
	Size     GridSize
	TileSize float64
	Tiles    []Tile

	dirty bool
	hash  [32]byte
}

func newChunk(coord ChunkCoord, size GridSize, tileSize float64) *Chunk {
	c := &Chunk{
		Coord:    coord,
		Size:     size,
		TileSize: tileSize,
		Tiles:    make([]Tile, size.X*size.Y),
	}
	for i := range c.Tiles {
		c.Tiles[i] = defaultTile()
	}
	c.dirty = true
	return c
}

func (c *Chunk) index(x, y int) int {
	// x fastest, then y
	return y*c.Size.X + x
}

func (c *Chunk) inBounds(x, y int) bool {
	return x >= 0 && x < c.Size.X && y >= 0 && y < c.Size.Y
}

// At returns the tile at a chunk-local coordinate, or nil when out of bounds.
// The pointer aliases chunk storage; callers that mutate through it must
// call MarkDirty.
func (c *Chunk) At(x, y int) *Tile {
	if !c.inBounds(x, y) {
		return nil
	}
	return &c.Tiles[c.index(x, y)]
}

// Set replaces the tile at a chunk-local coordinate. Out-of-bounds is a no-op
// and reports false.
func (c *Chunk) Set(x, y int, t Tile) bool {
	if !c.inBounds(x, y) {
		return false
	}
	c.Tiles[c.index(x, y)] = t
	c.dirty = true
	return true
}

// MarkDirty records that tile payloads changed since the last Digest.
func (c *Chunk) MarkDirty() {
	c.dirty = true
}

// Digest hashes the tile payloads deterministically. Recomputed lazily, only
// after mutation.
func (c *Chunk) Digest() [32]byte {
	if c.dirty || c.hash == ([32]byte{}) {
		h := sha256.New()
		var tmp [8]byte
		for i := range c.Tiles {
			t := &c.Tiles[i]
			binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(t.Fertility))
			h.Write(tmp[:])
			binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(t.GrowthProgress))
			h.Write(tmp[:])
			binary.LittleEndian.PutUint64(tmp[:], uint64(int64(t.GrowthStage)))
			h.Write(tmp[:])
			binary.LittleEndian.PutUint64(tmp[:], uint64(len(t.Crop)))
			h.Write(tmp[:])
			h.Write([]byte(t.Crop))
			h.Write([]byte(t.State))
			h.Write([]byte{0})
		}
		copy(c.hash[:], h.Sum(nil))
		c.dirty = false
	}
	return c.hash
}
