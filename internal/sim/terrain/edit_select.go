package terrain

import "fmt"

// ApplyBoxSelect mutates every global tile in the inclusive rectangle between
// start and end (any corner order). Tiles owned by chunks outside the grid
// are silently skipped. Returns the number of tiles mutated.
func (g *Grid) ApplyBoxSelect(start, end TileCoord, m Mutation) (int, error) {
	if err := m.validate(); err != nil {
		return 0, err
	}
	minX, maxX := start.X, end.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := start.Y, end.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}

	affected := 0
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			c, t := g.tileAtGlobal(TileCoord{X: x, Y: y})
			if t == nil {
				continue
			}
			g.applyToTile(t, m)
			c.MarkDirty()
			affected++
		}
	}
	g.notifyChanged()
	return affected, nil
}

// ApplyLassoSelect mutates every global tile inside the polygon described by
// the ordered points. Fewer than three points is a validation failure with no
// mutation. Tiles exactly on a polygon edge count as inside. Returns the
// number of tiles mutated.
func (g *Grid) ApplyLassoSelect(points []TileCoord, m Mutation) (int, error) {
	if err := m.validate(); err != nil {
		return 0, err
	}
	if len(points) < 3 {
		return 0, fmt.Errorf("%w: lasso needs at least 3 points, got %d", ErrValidation, len(points))
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	// One tile of slack so edge tiles are still tested.
	minX, minY, maxX, maxY = minX-1, minY-1, maxX+1, maxY+1

	affected := 0
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := TileCoord{X: x, Y: y}
			if !pointInPolygon(p, points) {
				continue
			}
			c, t := g.tileAtGlobal(p)
			if t == nil {
				continue
			}
			g.applyToTile(t, m)
			c.MarkDirty()
			affected++
		}
	}
	g.notifyChanged()
	return affected, nil
}

// pointInPolygon ray-casts horizontally from p and counts edge crossings to
// its right; an odd count means inside. Points collinear with and within a
// segment's span are treated as inside.
func pointInPolygon(p TileCoord, poly []TileCoord) bool {
	n := len(poly)
	for i := 0; i < n; i++ {
		if onSegment(poly[i], poly[(i+1)%n], p) {
			return true
		}
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[j]
		if (a.Y <= p.Y && b.Y > p.Y) || (b.Y <= p.Y && a.Y > p.Y) {
			crossX := float64(a.X) + float64(p.Y-a.Y)/float64(b.Y-a.Y)*float64(b.X-a.X)
			if crossX > float64(p.X) {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// onSegment reports whether p lies on the segment ab: collinear and within
// the segment's bounding box.
func onSegment(a, b, p TileCoord) bool {
	cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	if cross != 0 {
		return false
	}
	if p.X < min(a.X, b.X) || p.X > max(a.X, b.X) {
		return false
	}
	if p.Y < min(a.Y, b.Y) || p.Y > max(a.Y, b.Y) {
		return false
	}
	return true
}
