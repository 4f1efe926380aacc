package terrain

import (
	"math"
	"sort"

	"tilecraft/internal/sim/catalogs"
)

// GroundRect is an axis-aligned rectangle on the ground plane, in world units.
type GroundRect struct {
	Min WorldPos
	Max WorldPos
}

func (r GroundRect) normalized() GroundRect {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Z > r.Max.Z {
		r.Min.Z, r.Max.Z = r.Max.Z, r.Min.Z
	}
	return r
}

func (r GroundRect) contains(p WorldPos) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Z >= r.Min.Z && p.Z <= r.Max.Z
}

// TaggedObject is a world object reported by the host's tag resolver: a
// reference position plus its ground-plane bounding rectangle.
type TaggedObject struct {
	ID       string
	Position WorldPos
	Bounds   GroundRect
}

// TagResolver returns the live objects currently carrying a tag. Supplied by
// the host; queried synchronously during an influence pass.
type TagResolver func(tag string) []TaggedObject

// ApplyInfluences runs one influence pass: definitions are processed in
// ascending priority order (stable for equal priorities), every footprint
// tile of every matching object radiates its effect, and per-tile deltas are
// summed across all sources before a single clamped apply. Accumulating
// first keeps overlapping sources order-independent; clamping mid-stream
// would bias the result by processing order.
//
// Returns the number of tiles whose fertility was adjusted.
func (g *Grid) ApplyInfluences(defs []catalogs.InfluenceDef, resolve TagResolver) int {
	sorted := make([]catalogs.InfluenceDef, len(defs))
	copy(sorted, defs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})

	acc := map[TileCoord]float64{}
	for _, def := range sorted {
		for _, tag := range def.AffectingTags {
			for _, obj := range resolve(tag) {
				for _, src := range g.footprintTiles(obj) {
					g.accumulate(acc, src, def)
				}
			}
		}
	}

	applied := 0
	for coord, delta := range acc {
		c, t := g.tileAtGlobal(coord)
		if t == nil {
			continue
		}
		t.Fertility = g.clampFertility(t.Fertility + delta)
		c.MarkDirty()
		applied++
	}
	g.notifyChanged()
	return applied
}

// accumulate adds one source tile's radial effect into the running per-tile
// totals. Full strength out to the direct radius, then a linear fade to zero
// across the blend band. Half-tile tolerance rounds boundary tiles in.
func (g *Grid) accumulate(acc map[TileCoord]float64, src TileCoord, def catalogs.InfluenceDef) {
	total := def.TotalRadius()
	outer := float64(total) + 0.5
	direct := float64(def.DirectSpreadRadius) + 0.5
	change := def.SignedChange()

	for y := src.Y - total; y <= src.Y+total; y++ {
		for x := src.X - total; x <= src.X+total; x++ {
			dx := float64(x - src.X)
			dy := float64(y - src.Y)
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist > outer {
				continue
			}
			value := change
			if dist > direct {
				blend := clamp01((dist - float64(def.DirectSpreadRadius)) / float64(def.BlendRadius))
				value = lerp(change, 0, blend)
			}
			acc[TileCoord{X: x, Y: y}] += value
		}
	}
}
