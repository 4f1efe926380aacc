package terrain

import (
	"errors"
	"testing"
)

func TestBoxSelectNormalizesCorners(t *testing.T) {
	g := testGrid(t)

	affected, err := g.ApplyBoxSelect(TileCoord{X: 6, Y: 6}, TileCoord{X: 4, Y: 4}, fert(20))
	if err != nil {
		t.Fatalf("box select: %v", err)
	}
	if affected != 9 {
		t.Fatalf("affected = %d, want 9", affected)
	}
}

func TestBoxSelectSpansChunks(t *testing.T) {
	g := testGrid(t)

	affected, err := g.ApplyBoxSelect(TileCoord{X: 14, Y: 14}, TileCoord{X: 17, Y: 17}, fert(20))
	if err != nil {
		t.Fatalf("box select: %v", err)
	}
	if affected != 16 {
		t.Fatalf("affected = %d, want 16", affected)
	}
	// One corner per involved chunk.
	for _, c := range []struct{ cx, cy, lx, ly int }{
		{0, 0, 15, 15},
		{1, 0, 1, 15},
		{0, 1, 15, 1},
		{1, 1, 1, 1},
	} {
		if got := g.TileAt(c.cx, c.cy, c.lx, c.ly).Fertility; got != 20 {
			t.Errorf("chunk (%d,%d) tile (%d,%d) fertility = %v", c.cx, c.cy, c.lx, c.ly, got)
		}
	}
}

func TestBoxSelectSkipsOutOfGrid(t *testing.T) {
	g := testGrid(t)

	// Range pokes past the grid's max corner; the valid subset still applies.
	affected, err := g.ApplyBoxSelect(TileCoord{X: 62, Y: 62}, TileCoord{X: 70, Y: 70}, fert(20))
	if err != nil {
		t.Fatalf("box select: %v", err)
	}
	if affected != 4 {
		t.Fatalf("affected = %d, want 4", affected)
	}
}

func TestLassoSelectQuad(t *testing.T) {
	g := testGrid(t)

	points := []TileCoord{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	affected, err := g.ApplyLassoSelect(points, fert(20))
	if err != nil {
		t.Fatalf("lasso: %v", err)
	}
	// Interior (1,1) plus the eight boundary points, which count as inside.
	if affected != 9 {
		t.Fatalf("affected = %d, want 9", affected)
	}
	if got := g.TileAt(0, 0, 1, 1).Fertility; got != 20 {
		t.Errorf("tile (1,1) fertility = %v, want 20", got)
	}
	if got := g.TileAt(0, 0, 10, 10).Fertility; got != 0 {
		t.Errorf("tile (10,10) fertility = %v, want 0", got)
	}
	if got := g.TileAt(0, 0, 3, 1).Fertility; got != 0 {
		t.Errorf("tile (3,1) outside polygon touched: %v", got)
	}
}

func TestLassoSelectTriangle(t *testing.T) {
	g := testGrid(t)

	points := []TileCoord{{X: 2, Y: 1}, {X: 8, Y: 1}, {X: 5, Y: 7}}
	affected, err := g.ApplyLassoSelect(points, fert(20))
	if err != nil {
		t.Fatalf("lasso: %v", err)
	}
	if affected == 0 {
		t.Fatal("no tiles affected")
	}
	if got := g.TileAt(0, 0, 5, 3).Fertility; got != 20 {
		t.Errorf("interior tile (5,3) fertility = %v", got)
	}
	if got := g.TileAt(0, 0, 2, 6).Fertility; got != 0 {
		t.Errorf("exterior tile (2,6) touched: %v", got)
	}
	// Apex vertex lies on the polygon, so it is inside.
	if got := g.TileAt(0, 0, 5, 7).Fertility; got != 20 {
		t.Errorf("apex tile (5,7) fertility = %v", got)
	}
}

func TestLassoSelectTooFewPoints(t *testing.T) {
	g := testGrid(t)

	for _, pts := range [][]TileCoord{nil, {{X: 1, Y: 1}}, {{X: 1, Y: 1}, {X: 4, Y: 4}}} {
		affected, err := g.ApplyLassoSelect(pts, fert(20))
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("lasso(%d points): err = %v, want ErrValidation", len(pts), err)
		}
		if affected != 0 {
			t.Fatalf("lasso(%d points): affected = %d, want 0", len(pts), affected)
		}
	}
	// Nothing was mutated anywhere.
	g.ForEachTile(func(_ ChunkCoord, _ TileCoord, tile *Tile) {
		if tile.Fertility != 0 {
			t.Fatal("validation failure mutated the grid")
		}
	})
}

func TestPointInPolygonOnEdge(t *testing.T) {
	poly := []TileCoord{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}

	for _, p := range []TileCoord{{X: 2, Y: 0}, {X: 4, Y: 2}, {X: 0, Y: 0}, {X: 2, Y: 2}} {
		if !pointInPolygon(p, poly) {
			t.Errorf("%v should be inside", p)
		}
	}
	for _, p := range []TileCoord{{X: 5, Y: 2}, {X: -1, Y: 0}, {X: 2, Y: 5}} {
		if pointInPolygon(p, poly) {
			t.Errorf("%v should be outside", p)
		}
	}
}
