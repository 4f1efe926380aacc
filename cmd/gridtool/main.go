package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"tilecraft/internal/sim/catalogs"
	"tilecraft/internal/sim/terrain"
	"tilecraft/internal/sim/tuning"
)

// batchScript is the JSON document gridtool executes against a fresh grid:
// an optional season plus an ordered list of edit/influence operations.
type batchScript struct {
	Season string    `json:"season,omitempty"`
	Ops    []batchOp `json:"ops"`
}

type batchOp struct {
	Op string `json:"op"` // square_brush | circle_brush | box_select | lasso_select | influences

	Chunk  [2]int `json:"chunk,omitempty"`
	Center [2]int `json:"center,omitempty"`
	Size   int    `json:"size,omitempty"`
	Radius int    `json:"radius,omitempty"`

	Start  [2]int   `json:"start,omitempty"`
	End    [2]int   `json:"end,omitempty"`
	Points [][2]int `json:"points,omitempty"`

	Mode      string  `json:"mode,omitempty"` // fertility | crop
	Fertility float64 `json:"fertility,omitempty"`
	Crop      string  `json:"crop,omitempty"` // crop id, "" clears in crop mode

	Objects []scriptObject `json:"objects,omitempty"`
}

type scriptObject struct {
	ID       string        `json:"id"`
	Tags     []string      `json:"tags"`
	Position [2]float64    `json:"position"`
	Bounds   [2][2]float64 `json:"bounds"` // [[minX,minZ],[maxX,maxZ]]
}

func main() {
	var (
		configDir  = flag.String("configs", "./configs", "config directory")
		schemaDir  = flag.String("schemas", "./schemas", "schema directory")
		tuningPath = flag.String("tuning", "", "path to tuning.yaml (default: <configs>/tuning.yaml)")
		scriptPath = flag.String("script", "", "path to a batch script to execute (optional)")
		digests    = flag.Bool("digests", false, "print per-chunk digests after the batch")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[gridtool] ", log.LstdFlags|log.Lmicroseconds)

	tp := *tuningPath
	if tp == "" {
		tp = filepath.Join(*configDir, "tuning.yaml")
	}
	tn, err := tuning.Load(tp)
	if err != nil {
		logger.Fatalf("load tuning: %v", err)
	}

	cats, err := catalogs.Load(*configDir, *schemaDir)
	if err != nil {
		logger.Fatalf("load catalogs: %v", err)
	}
	logger.Printf("catalogs: %d crops (digest %.8s), %d influences (digest %.8s)",
		len(cats.Crops.ByID), cats.Crops.Digest, len(cats.Influences.Defs), cats.Influences.Digest)

	grid, err := terrain.New(terrain.Config{
		ChunkGrid:    terrain.GridSize{X: tn.ChunkGrid[0], Y: tn.ChunkGrid[1]},
		ChunkTiles:   terrain.GridSize{X: tn.ChunkTiles[0], Y: tn.ChunkTiles[1]},
		TileSize:     tn.TileSize,
		Origin:       terrain.WorldPos{X: tn.Origin[0], Z: tn.Origin[1]},
		FertilityMin: tn.FertilityMin,
		FertilityMax: tn.FertilityMax,
	})
	if err != nil {
		logger.Fatalf("build grid: %v", err)
	}
	grid.SetCurrentSeason(tn.DefaultSeason)

	batches := 0
	grid.OnChange(func() { batches++ })

	if *scriptPath != "" {
		if err := runScript(logger, grid, cats, *scriptPath); err != nil {
			logger.Fatalf("script: %v", err)
		}
	}

	cfg := grid.Config()
	logger.Printf("grid: %dx%d chunks, %dx%d tiles/chunk, tile size %v, season %s, %d batches",
		cfg.ChunkGrid.X, cfg.ChunkGrid.Y, cfg.ChunkTiles.X, cfg.ChunkTiles.Y, cfg.TileSize, grid.CurrentSeason(), batches)

	if *digests {
		for y := 0; y < cfg.ChunkGrid.Y; y++ {
			for x := 0; x < cfg.ChunkGrid.X; x++ {
				d := grid.ChunkAt(x, y).Digest()
				logger.Printf("chunk (%d,%d): %s", x, y, hex.EncodeToString(d[:8]))
			}
		}
	}
}

func runScript(logger *log.Logger, grid *terrain.Grid, cats *catalogs.Catalogs, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var script batchScript
	if err := json.Unmarshal(raw, &script); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if script.Season != "" {
		grid.SetCurrentSeason(script.Season)
	}

	for i, op := range script.Ops {
		affected, err := runOp(grid, cats, op)
		if err != nil {
			return fmt.Errorf("op %d (%s): %w", i, op.Op, err)
		}
		logger.Printf("op %d (%s): %d tiles affected", i, op.Op, affected)
	}
	return nil
}

func runOp(grid *terrain.Grid, cats *catalogs.Catalogs, op batchOp) (int, error) {
	switch op.Op {
	case "square_brush":
		m, err := mutationFor(cats, op)
		if err != nil {
			return 0, err
		}
		return grid.ApplySquareBrush(chunkCoord(op.Chunk), tileCoord(op.Center), op.Size, m)
	case "circle_brush":
		m, err := mutationFor(cats, op)
		if err != nil {
			return 0, err
		}
		return grid.ApplyCircleBrush(chunkCoord(op.Chunk), tileCoord(op.Center), op.Radius, m)
	case "box_select":
		m, err := mutationFor(cats, op)
		if err != nil {
			return 0, err
		}
		return grid.ApplyBoxSelect(tileCoord(op.Start), tileCoord(op.End), m)
	case "lasso_select":
		m, err := mutationFor(cats, op)
		if err != nil {
			return 0, err
		}
		points := make([]terrain.TileCoord, len(op.Points))
		for i, p := range op.Points {
			points[i] = tileCoord(p)
		}
		return grid.ApplyLassoSelect(points, m)
	case "influences":
		byTag := map[string][]terrain.TaggedObject{}
		for _, so := range op.Objects {
			obj := terrain.TaggedObject{
				ID:       so.ID,
				Position: terrain.WorldPos{X: so.Position[0], Z: so.Position[1]},
				Bounds: terrain.GroundRect{
					Min: terrain.WorldPos{X: so.Bounds[0][0], Z: so.Bounds[0][1]},
					Max: terrain.WorldPos{X: so.Bounds[1][0], Z: so.Bounds[1][1]},
				},
			}
			for _, tag := range so.Tags {
				byTag[tag] = append(byTag[tag], obj)
			}
		}
		applied := grid.ApplyInfluences(cats.Influences.Defs, func(tag string) []terrain.TaggedObject {
			return byTag[tag]
		})
		return applied, nil
	default:
		return 0, fmt.Errorf("unknown op %q", op.Op)
	}
}

func mutationFor(cats *catalogs.Catalogs, op batchOp) (terrain.Mutation, error) {
	switch op.Mode {
	case "fertility":
		return terrain.Mutation{Mode: terrain.BrushFertility, Fertility: op.Fertility}, nil
	case "crop":
		if op.Crop == "" {
			return terrain.Mutation{Mode: terrain.BrushCrop}, nil
		}
		def, ok := cats.Crops.ByID[op.Crop]
		if !ok {
			return terrain.Mutation{}, fmt.Errorf("unknown crop %q", op.Crop)
		}
		return terrain.Mutation{Mode: terrain.BrushCrop, Crop: &def}, nil
	default:
		return terrain.Mutation{}, fmt.Errorf("unknown mode %q", op.Mode)
	}
}

func chunkCoord(p [2]int) terrain.ChunkCoord { return terrain.ChunkCoord{X: p[0], Y: p[1]} }

func tileCoord(p [2]int) terrain.TileCoord { return terrain.TileCoord{X: p[0], Y: p[1]} }
