package util

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type AABB struct {
	center  mgl32.Vec3
	extents mgl32.Vec3 // size in respective axis, they extend from the center to the max and min
}

func NewAABB(center, extents mgl32.Vec3) AABB {
	return AABB{
		center:  center,
		extents: extents,
	}
}

func NewAABBFromMin(min, extents mgl32.Vec3) AABB {
	return AABB{
		center:  min.Add(extents.Mul(0.5)),
		extents: extents,
	}
}

func NewAABBFromMinMax(min, max mgl32.Vec3) AABB {
	return NewAABBFromMin(min, max.Sub(min))
}

func (a AABB) Min() mgl32.Vec3 {
	return a.center.Sub(a.extents.Mul(0.5))
}

func (a AABB) Max() mgl32.Vec3 {
	return a.center.Add(a.extents.Mul(0.5))
}

func (a AABB) Center() mgl32.Vec3 {
	return a.center
}

func (a AABB) Extents() mgl32.Vec3 {
	return a.extents
}

func (a AABB) Contains(vec3 mgl32.Vec3) bool {
	minVal := a.Min()
	maxVal := a.Max()
	return vec3.X() >= minVal.X() && vec3.X() <= maxVal.X() &&
		vec3.Y() >= minVal.Y() && vec3.Y() <= maxVal.Y() &&
		vec3.Z() >= minVal.Z() && vec3.Z() <= maxVal.Z()
}

// Overlaps compares center distances against the summed half extents on every
// axis. Boxes that only touch do not overlap.
func (a AABB) Overlaps(other AABB) bool {
	d := a.center.Sub(other.center)
	reach := a.extents.Add(other.extents).Mul(0.5)
	return Abs(d.X()) < reach.X() &&
		Abs(d.Y()) < reach.Y() &&
		Abs(d.Z()) < reach.Z()
}

// IntersectRay is a slab test. It returns the distance along the (not
// necessarily normalized) ray direction in units of that direction, and the
// outward normal of the face the ray enters through. A ray starting inside the
// box reports distance 0 and the normal of the face it leaves through.
func (a AABB) IntersectRay(ray Ray) (float32, mgl32.Vec3, bool) {
	if IsZeroVec3(ray.Direction) {
		return 0, mgl32.Vec3{}, false
	}
	minVal := a.Min()
	maxVal := a.Max()
	tNear := float32(math.Inf(-1))
	tFar := float32(math.Inf(1))
	var nearNormal, farNormal mgl32.Vec3

	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin[axis]
		dir := ray.Direction[axis]
		if dir == 0 {
			if origin < minVal[axis] || origin > maxVal[axis] {
				return 0, mgl32.Vec3{}, false
			}
			continue
		}
		t1 := (minVal[axis] - origin) / dir
		t2 := (maxVal[axis] - origin) / dir
		entry := mgl32.Vec3{}
		entry[axis] = -1
		if t1 > t2 {
			t1, t2 = t2, t1
			entry[axis] = 1
		}
		if t1 > tNear {
			tNear = t1
			nearNormal = entry
		}
		if t2 < tFar {
			tFar = t2
			farNormal = entry.Mul(-1)
		}
		if tNear > tFar || tFar < 0 {
			return 0, mgl32.Vec3{}, false
		}
	}
	if tNear < 0 {
		return 0, farNormal, true
	}
	return tNear, nearNormal, true
}

func (a AABB) String() string {
	minVal, maxVal := a.Min(), a.Max()
	return fmt.Sprintf("AABB[(%0.2f, %0.2f, %0.2f) - (%0.2f, %0.2f, %0.2f)]", minVal.X(), minVal.Y(), minVal.Z(), maxVal.X(), maxVal.Y(), maxVal.Z())
}

func LineToPlaneIntersection(p, u, v, n mgl32.Vec3) float32 {
	NdotU := n.Dot(u)
	if NdotU == 0 {
		return math.MaxFloat32
	}
	return n.Dot(v.Sub(p)) / NdotU
}
