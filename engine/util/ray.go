package util

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

func NewRay(origin, direction mgl32.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayBetween builds a ray from a picking segment, the way cameras hand
// out (start, end) pairs.
func NewRayBetween(start, end mgl32.Vec3) Ray {
	return Ray{Origin: start, Direction: end.Sub(start).Normalize()}
}

func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectHorizontalPlane returns the ray parameter where the ray crosses the
// plane y = height. Rays parallel to the plane never hit it; hits behind the
// origin (t <= 0) are rejected.
func (r Ray) IntersectHorizontalPlane(height float32) (float32, bool) {
	if r.Direction.Y() == 0 {
		return 0, false
	}
	t := LineToPlaneIntersection(r.Origin, r.Direction, mgl32.Vec3{0, height, 0}, mgl32.Vec3{0, 1, 0})
	if t <= 0 {
		return 0, false
	}
	return t, true
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray[(%0.2f, %0.2f, %0.2f) -> (%0.2f, %0.2f, %0.2f)]", r.Origin.X(), r.Origin.Y(), r.Origin.Z(), r.Direction.X(), r.Direction.Y(), r.Direction.Z())
}
