package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds the terrain parameters loaded from tuning.yaml. Values the
// file omits fall back to the defaults applied in Load; structural checks
// (positive sizes, ordered fertility bounds) happen when the grid is built.
type Tuning struct {
	ChunkGrid  []int `yaml:"chunk_grid"`  // [w, h] in chunks
	ChunkTiles []int `yaml:"chunk_tiles"` // [w, h] tiles per chunk

	TileSize float64   `yaml:"tile_size"` // world units per tile
	Origin   []float64 `yaml:"origin"`    // [x, z] world position of grid min corner

	FertilityMin float64 `yaml:"fertility_min"`
	FertilityMax float64 `yaml:"fertility_max"`

	DefaultSeason string `yaml:"default_season"`
}

func Default() Tuning {
	return Tuning{
		ChunkGrid:     []int{4, 4},
		ChunkTiles:    []int{16, 16},
		TileSize:      1.0,
		Origin:        []float64{0, 0},
		FertilityMin:  0,
		FertilityMax:  100,
		DefaultSeason: "spring",
	}
}

func Load(path string) (Tuning, error) {
	t := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if len(t.ChunkGrid) != 2 {
		return t, fmt.Errorf("tuning.yaml: chunk_grid must be [w, h]")
	}
	if len(t.ChunkTiles) != 2 {
		return t, fmt.Errorf("tuning.yaml: chunk_tiles must be [w, h]")
	}
	if len(t.Origin) != 2 {
		return t, fmt.Errorf("tuning.yaml: origin must be [x, z]")
	}
	return t, nil
}
