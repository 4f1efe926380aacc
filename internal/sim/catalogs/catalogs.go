package catalogs

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Catalogs bundles the authored definition sets the terrain core consumes.
// Each catalog carries a digest of the raw document so hosts can detect
// definition drift without re-reading files.
type Catalogs struct {
	Crops      CropCatalog
	Influences InfluenceCatalog
}

type CropCatalog struct {
	ByID   map[string]CropDef
	Order  []string // sorted ids, stable enumeration order
	Digest string
}

type CropDef struct {
	ID              string  `json:"id"`
	DisplayName     string  `json:"display_name"`
	FertilityImpact float64 `json:"fertility_impact"`
	GrowthStages    int     `json:"growth_stages"`
	Season          string  `json:"season,omitempty"` // "" = any season
}

type InfluenceCatalog struct {
	Defs   []InfluenceDef
	Digest string
}

type Direction string

const (
	DirectionPositive Direction = "positive"
	DirectionNegative Direction = "negative"
)

// InfluenceDef describes one radial fertility effect keyed by object tags.
type InfluenceDef struct {
	AffectingTags      []string  `json:"affecting_tags"`
	FertilityChange    float64   `json:"fertility_change"`
	DirectSpreadRadius int       `json:"direct_spread_radius"`
	BlendRadius        int       `json:"blend_radius"`
	Direction          Direction `json:"direction"`
	Priority           int       `json:"priority"`
}

// TotalRadius is the outer edge of the effect in tiles: full strength out to
// DirectSpreadRadius, then a linear fade across BlendRadius.
func (d InfluenceDef) TotalRadius() int {
	return d.DirectSpreadRadius + d.BlendRadius
}

// SignedChange folds Direction into the magnitude.
func (d InfluenceDef) SignedChange() float64 {
	if d.Direction == DirectionNegative {
		return -d.FertilityChange
	}
	return d.FertilityChange
}

// Load reads crops.json and influences.json from configDir and validates each
// against its schema in schemaDir before decoding.
func Load(configDir, schemaDir string) (*Catalogs, error) {
	var c Catalogs

	if err := loadCrops(filepath.Join(configDir, "crops.json"), filepath.Join(schemaDir, "crops.schema.json"), &c.Crops); err != nil {
		return nil, err
	}
	if err := loadInfluences(filepath.Join(configDir, "influences.json"), filepath.Join(schemaDir, "influences.schema.json"), &c.Influences); err != nil {
		return nil, err
	}

	return &c, nil
}

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func validateAgainst(schemaPath string, raw []byte) error {
	schema, err := jsonschema.Compile(schemaPath)
	if err != nil {
		return fmt.Errorf("compile %s: %w", filepath.Base(schemaPath), err)
	}
	var doc any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return err
	}
	return schema.Validate(doc)
}

func loadCrops(path, schemaPath string, out *CropCatalog) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := validateAgainst(schemaPath, raw); err != nil {
		return fmt.Errorf("crops.json: %w", err)
	}
	out.Digest = sha256Hex(raw)

	var defs []CropDef
	if err := json.Unmarshal(raw, &defs); err != nil {
		return fmt.Errorf("crops.json: %w", err)
	}
	out.ByID = map[string]CropDef{}
	for _, d := range defs {
		if d.ID == "" {
			return fmt.Errorf("crops.json: empty id")
		}
		if _, dup := out.ByID[d.ID]; dup {
			return fmt.Errorf("crops.json: duplicate id %q", d.ID)
		}
		if d.GrowthStages <= 0 {
			return fmt.Errorf("crops.json: %s: growth_stages must be positive", d.ID)
		}
		out.ByID[d.ID] = d
	}

	ids := make([]string, 0, len(out.ByID))
	for id := range out.ByID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out.Order = ids
	return nil
}

func loadInfluences(path, schemaPath string, out *InfluenceCatalog) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := validateAgainst(schemaPath, raw); err != nil {
		return fmt.Errorf("influences.json: %w", err)
	}
	out.Digest = sha256Hex(raw)

	var defs []InfluenceDef
	if err := json.Unmarshal(raw, &defs); err != nil {
		return fmt.Errorf("influences.json: %w", err)
	}
	for i, d := range defs {
		if len(d.AffectingTags) == 0 {
			return fmt.Errorf("influences.json: entry %d: no affecting_tags", i)
		}
		if d.DirectSpreadRadius < 0 || d.BlendRadius < 0 {
			return fmt.Errorf("influences.json: entry %d: negative radius", i)
		}
		if d.Direction != DirectionPositive && d.Direction != DirectionNegative {
			return fmt.Errorf("influences.json: entry %d: bad direction %q", i, d.Direction)
		}
	}
	out.Defs = defs
	return nil
}
