package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxelparty/engine/util"
	"github.com/memmaker/voxelparty/engine/voxel"
)

type PickResult struct {
	Cell     voxel.Int3
	Normal   mgl32.Vec3
	Distance float32
	// Ground is set when nothing stored was hit and the y=0 plane answered.
	Ground bool
}

func (p PickResult) String() string {
	return fmt.Sprintf("%s normal=(%.0f, %.0f, %.0f) dist=%.2f", p.Cell.ToString(), p.Normal.X(), p.Normal.Y(), p.Normal.Z(), p.Distance)
}

var upNormal = mgl32.Vec3{0, 1, 0}

// Pick returns the closest stored voxel the ray enters. Each voxel is tested
// as the box [cell*vs, (cell+1)*vs]; on equal distances the first in grid
// iteration order wins. With no voxel hit the ray is intersected with the
// y=0 plane instead.
func Pick(grid *voxel.Grid, ray util.Ray) (PickResult, bool) {
	voxelSize := grid.VoxelSize()
	extents := mgl32.Vec3{voxelSize, voxelSize, voxelSize}

	var closest PickResult
	found := false
	grid.ForEach(func(pos voxel.Int3, t voxel.Type) {
		box := util.NewAABBFromMin(pos.ToWorld(voxelSize), extents)
		distance, normal, hit := box.IntersectRay(ray)
		if !hit {
			return
		}
		if !found || distance < closest.Distance {
			closest = PickResult{Cell: pos, Normal: normal, Distance: distance}
			found = true
		}
	})
	if found {
		return closest, true
	}
	return pickGroundPlane(grid, ray)
}

func pickGroundPlane(grid *voxel.Grid, ray util.Ray) (PickResult, bool) {
	t, ok := ray.IntersectHorizontalPlane(0)
	if !ok {
		return PickResult{}, false
	}
	voxelSize := grid.VoxelSize()
	hitPoint := ray.At(t)
	x := util.FloorToInt(hitPoint.X() / voxelSize)
	z := util.FloorToInt(hitPoint.Z() / voxelSize)
	if x < 0 || x >= grid.Width() || z < 0 || z >= grid.Depth() {
		return PickResult{}, false
	}
	return PickResult{Cell: voxel.Int3{X: x, Y: 0, Z: z}, Normal: upNormal, Distance: t, Ground: true}, true
}
