package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxelparty/engine/util"
	"github.com/memmaker/voxelparty/engine/voxel"
)

type CollisionKind int

const (
	// MissingGround means a cell under the player's feet is not Ground.
	MissingGround CollisionKind = iota
	WallHit
)

func (k CollisionKind) String() string {
	switch k {
	case MissingGround:
		return "missing ground"
	case WallHit:
		return "wall"
	}
	return fmt.Sprintf("CollisionKind(%d)", int(k))
}

type Collision struct {
	Cell voxel.Int3
	Type voxel.Type
	Kind CollisionKind
}

func (c Collision) String() string {
	return fmt.Sprintf("%s at %s (%s)", c.Kind, c.Cell.ToString(), c.Type)
}

type cellRange struct {
	minX, maxX int32
	minY, maxY int32
	minZ, maxZ int32
}

func coveredCells(position, size mgl32.Vec3, voxelSize float32) cellRange {
	half := size.Mul(0.5)
	return cellRange{
		minX: util.FloorToInt((position.X() - half.X()) / voxelSize),
		maxX: util.CeilToInt((position.X() + half.X()) / voxelSize),
		minY: util.FloorToInt((position.Y() - half.Y()) / voxelSize),
		maxY: util.CeilToInt((position.Y() + half.Y()) / voxelSize),
		minZ: util.FloorToInt((position.Z() - half.Z()) / voxelSize),
		maxZ: util.CeilToInt((position.Z() + half.Z()) / voxelSize),
	}
}

// CheckCollision tests a player box centred at position against the grid.
// The player needs Ground under every covered column and must not overlap a
// Wall; Ground cells never block sideways.
func CheckCollision(grid *voxel.Grid, position, size mgl32.Vec3) (Collision, bool) {
	voxelSize := grid.VoxelSize()
	cells := coveredCells(position, size, voxelSize)

	bottomY := util.FloorToInt((position.Y() - size.Y()/2) / voxelSize)
	for x := cells.minX; x <= cells.maxX; x++ {
		for z := cells.minZ; z <= cells.maxZ; z++ {
			t := grid.Get(x, bottomY, z)
			if t != voxel.Ground {
				return Collision{Cell: voxel.Int3{X: x, Y: bottomY, Z: z}, Type: t, Kind: MissingGround}, true
			}
		}
	}

	for x := cells.minX; x <= cells.maxX; x++ {
		for y := cells.minY; y <= cells.maxY; y++ {
			for z := cells.minZ; z <= cells.maxZ; z++ {
				if grid.Get(x, y, z) != voxel.Wall {
					continue
				}
				cell := voxel.Int3{X: x, Y: y, Z: z}
				if PlayerOverlapsCell(position, size, cell, voxelSize) {
					return Collision{Cell: cell, Type: voxel.Wall, Kind: WallHit}, true
				}
			}
		}
	}
	return Collision{}, false
}

// PlayerOverlapsCell reports whether a player box overlaps the cube the
// renderer draws for cell, which is centred on cell*voxelSize.
func PlayerOverlapsCell(position, size mgl32.Vec3, cell voxel.Int3, voxelSize float32) bool {
	playerBox := util.NewAABB(position, size)
	cellBox := util.NewAABB(cell.ToWorld(voxelSize), mgl32.Vec3{voxelSize, voxelSize, voxelSize})
	return playerBox.Overlaps(cellBox)
}
