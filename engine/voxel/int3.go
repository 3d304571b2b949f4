package voxel

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type Int3 struct {
	X, Y, Z int32
}

func (i Int3) Add(other Int3) Int3 {
	return Int3{i.X + other.X, i.Y + other.Y, i.Z + other.Z}
}

func (i Int3) ToVec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(i.X), float32(i.Y), float32(i.Z)}
}

// ToWorld scales the cell coordinate by the voxel size. This is the reference
// point collision and occupancy tests measure against.
func (i Int3) ToWorld(voxelSize float32) mgl32.Vec3 {
	return i.ToVec3().Mul(voxelSize)
}

func (i Int3) ToString() string {
	return fmt.Sprintf("(%d, %d, %d)", i.X, i.Y, i.Z)
}

func Abs(i int32) int32 {
	if i < 0 {
		return -i
	}
	return i
}
