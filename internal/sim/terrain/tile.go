package terrain

// TileState tracks where a tile is in the preparation/growth cycle.
type TileState string

const (
	TileUnprepared      TileState = "unprepared"
	TilePrepared        TileState = "prepared"
	TileSown            TileState = "sown"
	TileGrowing         TileState = "growing"
	TileReadyForHarvest TileState = "ready_for_harvest"
	TileHarvested       TileState = "harvested"
)

// Tile is the smallest addressable grid cell. Tiles are never destroyed
// individually; edits reset them in place.
type Tile struct {
	Fertility      float64
	Crop           string // crop catalog id, "" = none
	GrowthStage    int
	GrowthProgress float64 // 0..1 within the current stage
	State          TileState
}

func defaultTile() Tile {
	return Tile{State: TileUnprepared}
}

// Clear resets the tile to bare ground. Fertility is left as is.
func (t *Tile) Clear() {
	t.Crop = ""
	t.GrowthStage = 0
	t.GrowthProgress = 0
	t.State = TileUnprepared
}
