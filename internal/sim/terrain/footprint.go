package terrain

// footprintTiles resolves the set of global tiles an object's ground-plane
// rectangle overlaps: every tile in the corner-to-corner index range whose
// center falls inside the rectangle. A degenerate rectangle that captures no
// tile center falls back to the single tile containing the object's
// reference position.
func (g *Grid) footprintTiles(obj TaggedObject) []TileCoord {
	rect := obj.Bounds.normalized()
	lo := g.cfg.WorldToGlobalTile(rect.Min)
	hi := g.cfg.WorldToGlobalTile(rect.Max)

	var tiles []TileCoord
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			t := TileCoord{X: x, Y: y}
			if rect.contains(g.cfg.GlobalTileToWorld(t)) {
				tiles = append(tiles, t)
			}
		}
	}
	if len(tiles) == 0 {
		tiles = []TileCoord{g.cfg.WorldToGlobalTile(obj.Position)}
	}
	return tiles
}
