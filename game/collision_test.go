package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxelparty/engine/voxel"
	"github.com/stretchr/testify/assert"
)

func TestStandingOnGroundDoesNotCollide(t *testing.T) {
	grid := seededGrid()
	p := standingPlayer()
	_, hit := CheckCollision(grid, p.Position, p.Size)
	assert.False(t, hit)
}

func TestMissingGroundUnderFootprintCollides(t *testing.T) {
	grid := seededGrid()
	p := standingPlayer()
	grid.Set(12, 0, 12, voxel.Empty)

	collision, hit := CheckCollision(grid, p.Position, p.Size)
	assert.True(t, hit)
	assert.Equal(t, MissingGround, collision.Kind)
	assert.Equal(t, voxel.Int3{X: 12, Y: 0, Z: 12}, collision.Cell)
	assert.Equal(t, voxel.Empty, collision.Type)
}

func TestWallBelowFeetCountsAsMissingGround(t *testing.T) {
	grid := seededGrid()
	p := standingPlayer()
	grid.Set(11, 0, 11, voxel.Wall)

	collision, hit := CheckCollision(grid, p.Position, p.Size)
	assert.True(t, hit)
	assert.Equal(t, MissingGround, collision.Kind)
	assert.Equal(t, voxel.Wall, collision.Type)
}

func TestWallOverlapCollides(t *testing.T) {
	grid := seededGrid()
	grid.Set(13, 1, 12, voxel.Wall)

	_, hit := CheckCollision(grid, mgl32.Vec3{12, 1, 12}, mgl32.Vec3{0.5, 1, 0.5})
	assert.False(t, hit, "dx 1.0 is beyond the 0.75 reach")

	collision, hit := CheckCollision(grid, mgl32.Vec3{12.4, 1, 12}, mgl32.Vec3{0.5, 1, 0.5})
	assert.True(t, hit)
	assert.Equal(t, WallHit, collision.Kind)
	assert.Equal(t, voxel.Int3{X: 13, Y: 1, Z: 12}, collision.Cell)
}

func TestGroundAboveFloorDoesNotBlockSideways(t *testing.T) {
	grid := seededGrid()
	grid.Set(12, 1, 12, voxel.Ground)
	_, hit := CheckCollision(grid, mgl32.Vec3{12, 1, 12}, mgl32.Vec3{0.5, 1, 0.5})
	assert.False(t, hit)
}

func TestLeavingTheGridCollides(t *testing.T) {
	grid := seededGrid()
	collision, hit := CheckCollision(grid, mgl32.Vec3{-1, 1, 12}, mgl32.Vec3{0.5, 1, 0.5})
	assert.True(t, hit)
	assert.Equal(t, MissingGround, collision.Kind)
}

func TestPlayerOverlapsCellIsStrict(t *testing.T) {
	size := mgl32.Vec3{0.5, 1, 0.5}
	assert.True(t, PlayerOverlapsCell(mgl32.Vec3{12, 1, 12}, size, voxel.Int3{X: 12, Y: 1, Z: 12}, 1))
	// touching the floor cell is not overlapping it
	assert.False(t, PlayerOverlapsCell(mgl32.Vec3{12, 1, 12}, size, voxel.Int3{X: 12, Y: 0, Z: 12}, 1))
	assert.False(t, PlayerOverlapsCell(mgl32.Vec3{12, 1, 12}, size, voxel.Int3{X: 14, Y: 1, Z: 12}, 1))
}
