package util

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestIntersectHorizontalPlane(t *testing.T) {
	ray := NewRay(mgl32.Vec3{12.5, 10, 12.5}, mgl32.Vec3{0, -1, 0})
	tHit, ok := ray.IntersectHorizontalPlane(0)
	assert.True(t, ok)
	assert.InDelta(t, 10, tHit, 1e-6)
	assert.Equal(t, mgl32.Vec3{12.5, 0, 12.5}, ray.At(tHit))
}

func TestIntersectHorizontalPlaneGuards(t *testing.T) {
	parallel := NewRay(mgl32.Vec3{1, 10, 1}, mgl32.Vec3{1, 0, 0})
	_, ok := parallel.IntersectHorizontalPlane(0)
	assert.False(t, ok, "parallel rays never reach the plane")

	away := NewRay(mgl32.Vec3{1, 10, 1}, mgl32.Vec3{0, 1, 0})
	_, ok = away.IntersectHorizontalPlane(0)
	assert.False(t, ok, "plane behind the origin")

	onPlane := NewRay(mgl32.Vec3{1, 0, 1}, mgl32.Vec3{0, -1, 0})
	_, ok = onPlane.IntersectHorizontalPlane(0)
	assert.False(t, ok, "t must be strictly positive")
}

func TestNewRayBetweenNormalizes(t *testing.T) {
	ray := NewRayBetween(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 10})
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, ray.Direction)
}

func TestDominantAxisStep(t *testing.T) {
	cases := map[mgl32.Vec3][3]int32{
		{1, 0, 0}:     {1, 0, 0},
		{-1, 0, 0}:    {-1, 0, 0},
		{0, 1, 0}:     {0, 1, 0},
		{0, -1, 0}:    {0, -1, 0},
		{0, 0, 1}:     {0, 0, 1},
		{0, 0, -1}:    {0, 0, -1},
		{0.2, 0.3, 0}: {0, 0, -1},
	}
	for normal, want := range cases {
		x, y, z := DominantAxisStep(normal)
		assert.Equal(t, want, [3]int32{x, y, z}, "%v", normal)
	}
}

func TestLerp3(t *testing.T) {
	got := Lerp3(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{10, -10, 4}, 0.5)
	assert.Equal(t, mgl32.Vec3{5, -5, 2}, got)
}
