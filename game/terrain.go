package game

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/memmaker/voxelparty/engine/util"
	"github.com/memmaker/voxelparty/engine/voxel"
	"github.com/pkg/errors"
)

const (
	TerrainFlat    = "flat"
	TerrainPillars = "pillars"
)

type TerrainConfig struct {
	Generator string  `yaml:"generator"`
	Seed      int64   `yaml:"seed"`
	Scale     float64 `yaml:"scale"`
	// Threshold is the normalized noise value in [0, 1) a column must
	// exceed to get a pillar.
	Threshold      float64 `yaml:"threshold"`
	MaxHeight      int32   `yaml:"max_height"`
	SpawnClearance int32   `yaml:"spawn_clearance"`
}

func (c TerrainConfig) Validate() error {
	switch c.Generator {
	case TerrainFlat:
		return nil
	case TerrainPillars:
	default:
		return errors.Errorf("unknown terrain generator %q", c.Generator)
	}
	if c.Scale <= 0 {
		return errors.New("terrain scale must be positive")
	}
	if c.Threshold < 0 || c.Threshold >= 1 {
		return errors.Errorf("terrain threshold %.2f must be in [0, 1)", c.Threshold)
	}
	if c.MaxHeight < 1 {
		return errors.New("terrain max_height must be at least 1")
	}
	return nil
}

// GenerateTerrain raises Wall pillars from the floor where the noise field
// peaks, leaving a square of SpawnClearance columns around spawn open. It
// returns the number of voxels placed.
func GenerateTerrain(grid *voxel.Grid, cfg TerrainConfig, spawn voxel.Int3) int {
	if cfg.Generator != TerrainPillars {
		return 0
	}
	noise := perlin.NewPerlin(2, 2, 3, cfg.Seed)
	maxHeight := cfg.MaxHeight
	if maxHeight > grid.Height()-1 {
		maxHeight = grid.Height() - 1
	}

	placed := 0
	for x := int32(0); x < grid.Width(); x++ {
		for z := int32(0); z < grid.Depth(); z++ {
			if voxel.Abs(x-spawn.X) <= cfg.SpawnClearance && voxel.Abs(z-spawn.Z) <= cfg.SpawnClearance {
				continue
			}
			value := (noise.Noise2D(float64(x)*cfg.Scale, float64(z)*cfg.Scale) + 1) / 2
			if value <= cfg.Threshold {
				continue
			}
			height := 1 + int32((value-cfg.Threshold)/(1-cfg.Threshold)*float64(maxHeight))
			if height > maxHeight {
				height = maxHeight
			}
			for y := int32(1); y <= height; y++ {
				grid.Set(x, y, z, voxel.Wall)
				placed++
			}
		}
	}
	util.LogVoxelInfo(fmt.Sprintf("[Terrain] Raised %d wall voxels (seed %d)", placed, cfg.Seed))
	return placed
}
