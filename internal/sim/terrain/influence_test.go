package terrain

import (
	"testing"

	"tilecraft/internal/sim/catalogs"
)

// pointObject builds a degenerate object whose footprint resolves to the
// single tile containing its reference position.
func pointObject(id string, x, z float64) TaggedObject {
	return TaggedObject{
		ID:       id,
		Position: WorldPos{X: x, Z: z},
		Bounds:   GroundRect{Min: WorldPos{X: x, Z: z}, Max: WorldPos{X: x, Z: z}},
	}
}

func resolverFor(objects map[string][]TaggedObject) TagResolver {
	return func(tag string) []TaggedObject { return objects[tag] }
}

func TestInfluenceAccumulatesAcrossSources(t *testing.T) {
	g := testGrid(t)

	defs := []catalogs.InfluenceDef{{
		AffectingTags:      []string{"compost"},
		FertilityChange:    10,
		DirectSpreadRadius: 1,
		Direction:          catalogs.DirectionPositive,
	}}
	resolve := resolverFor(map[string][]TaggedObject{
		"compost": {
			pointObject("heap_a", 5.5, 5.5),
			pointObject("heap_b", 6.5, 5.5),
		},
	})

	applied := g.ApplyInfluences(defs, resolve)
	if applied == 0 {
		t.Fatal("no tiles applied")
	}
	// Tile (5,5) sits within direct radius of both sources: 10 + 10, summed
	// before the clamp, not clamped per source.
	if got := g.TileAt(0, 0, 5, 5).Fertility; got != 20 {
		t.Fatalf("tile (5,5) fertility = %v, want 20", got)
	}
	if got := g.TileAt(0, 0, 6, 5).Fertility; got != 20 {
		t.Fatalf("tile (6,5) fertility = %v, want 20", got)
	}
}

func TestInfluenceBlendFadesLinearly(t *testing.T) {
	g := testGrid(t)

	defs := []catalogs.InfluenceDef{{
		AffectingTags:      []string{"well"},
		FertilityChange:    10,
		DirectSpreadRadius: 1,
		BlendRadius:        2,
		Direction:          catalogs.DirectionPositive,
	}}
	resolve := resolverFor(map[string][]TaggedObject{
		"well": {pointObject("well", 5.5, 5.5)},
	})

	g.ApplyInfluences(defs, resolve)

	cases := []struct {
		x, y int
		want float64
	}{
		{5, 5, 10}, // source tile, full effect
		{6, 5, 10}, // distance 1, inside direct radius
		{7, 5, 5},  // distance 2, halfway across the blend band
		{8, 5, 0},  // distance 3, fully faded
		{9, 5, 0},  // beyond total radius
	}
	for _, c := range cases {
		if got := g.TileAt(0, 0, c.x, c.y).Fertility; got != c.want {
			t.Errorf("tile (%d,%d) fertility = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestInfluencePriorityOrderIndependent(t *testing.T) {
	boost := catalogs.InfluenceDef{
		AffectingTags:      []string{"spring"},
		FertilityChange:    50,
		DirectSpreadRadius: 1,
		Direction:          catalogs.DirectionPositive,
		Priority:           1,
	}
	drain := catalogs.InfluenceDef{
		AffectingTags:      []string{"rubble"},
		FertilityChange:    30,
		DirectSpreadRadius: 1,
		Direction:          catalogs.DirectionNegative,
		Priority:           10,
	}
	resolve := resolverFor(map[string][]TaggedObject{
		"spring": {pointObject("spring", 5.5, 5.5)},
		"rubble": {pointObject("rubble", 5.5, 5.5)},
	})

	// Priority controls processing order only; the applied delta is the
	// algebraic sum either way.
	for _, defs := range [][]catalogs.InfluenceDef{
		{boost, drain},
		{drain, boost},
	} {
		g := testGrid(t)
		g.ApplyInfluences(defs, resolve)
		if got := g.TileAt(0, 0, 5, 5).Fertility; got != 20 {
			t.Fatalf("defs %v: tile fertility = %v, want 20", defs, got)
		}
	}
}

func TestInfluenceNegativeClampsAtFloor(t *testing.T) {
	g := testGrid(t)

	defs := []catalogs.InfluenceDef{{
		AffectingTags:      []string{"rubble"},
		FertilityChange:    40,
		DirectSpreadRadius: 1,
		Direction:          catalogs.DirectionNegative,
	}}
	g.ApplyInfluences(defs, resolverFor(map[string][]TaggedObject{
		"rubble": {pointObject("rubble", 5.5, 5.5)},
	}))

	if got := g.TileAt(0, 0, 5, 5).Fertility; got != 0 {
		t.Fatalf("fertility = %v, want clamped 0", got)
	}
}

func TestInfluenceFootprintRect(t *testing.T) {
	g := testGrid(t)

	defs := []catalogs.InfluenceDef{{
		AffectingTags:   []string{"barn"},
		FertilityChange: 10,
		Direction:       catalogs.DirectionPositive,
	}}
	barn := TaggedObject{
		ID:       "barn",
		Position: WorldPos{X: 3.5, Z: 2.5},
		Bounds: GroundRect{
			Min: WorldPos{X: 2.0, Z: 2.0},
			Max: WorldPos{X: 5.0, Z: 3.0},
		},
	}

	applied := g.ApplyInfluences(defs, resolverFor(map[string][]TaggedObject{"barn": {barn}}))
	// Tile centers (2.5,2.5), (3.5,2.5), (4.5,2.5) fall inside the rect;
	// zero radius keeps the effect on the footprint itself.
	if applied != 3 {
		t.Fatalf("applied = %d, want 3", applied)
	}
	for x := 2; x <= 4; x++ {
		if got := g.TileAt(0, 0, x, 2).Fertility; got != 10 {
			t.Errorf("tile (%d,2) fertility = %v, want 10", x, got)
		}
	}
	if got := g.TileAt(0, 0, 5, 2).Fertility; got != 0 {
		t.Errorf("tile (5,2) outside footprint touched: %v", got)
	}
}

func TestFootprintFallbackToReferenceTile(t *testing.T) {
	g := testGrid(t)

	// A rectangle too small to capture any tile center: the reference
	// position's tile stands in as the single source.
	obj := TaggedObject{
		ID:       "scarecrow",
		Position: WorldPos{X: 5.2, Z: 5.8},
		Bounds: GroundRect{
			Min: WorldPos{X: 5.1, Z: 5.7},
			Max: WorldPos{X: 5.3, Z: 5.9},
		},
	}
	tiles := g.footprintTiles(obj)
	if len(tiles) != 1 || tiles[0] != (TileCoord{X: 5, Y: 5}) {
		t.Fatalf("footprint = %v, want [(5,5)]", tiles)
	}
}

func TestInfluenceSkipsOutOfGridTiles(t *testing.T) {
	g := testGrid(t)

	defs := []catalogs.InfluenceDef{{
		AffectingTags:      []string{"spring"},
		FertilityChange:    10,
		DirectSpreadRadius: 2,
		Direction:          catalogs.DirectionPositive,
	}}
	// Source on the grid's min corner: part of the radius hangs outside.
	applied := g.ApplyInfluences(defs, resolverFor(map[string][]TaggedObject{
		"spring": {pointObject("spring", 0.5, 0.5)},
	}))

	if applied == 0 {
		t.Fatal("no tiles applied")
	}
	if got := g.TileAt(0, 0, 0, 0).Fertility; got != 10 {
		t.Fatalf("corner tile fertility = %v, want 10", got)
	}
}
