package util

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

func Abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

func FloorToInt(x float32) int32 {
	return int32(math.Floor(float64(x)))
}

func CeilToInt(x float32) int32 {
	return int32(math.Ceil(float64(x)))
}

func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

func ToRadian(angle float32) float32 {
	return mgl32.DegToRad(angle)
}

func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func Mix(a, b, factor float32) float32 {
	return a*(1-factor) + factor*b
}

func Clamp(value, min, max float32) float32 {
	return mgl32.Clamp(value, min, max)
}

// Lerp3 blends componentwise; factor is not clamped.
func Lerp3(one, two mgl32.Vec3, factor float32) mgl32.Vec3 {
	return mgl32.Vec3{Mix(one.X(), two.X(), factor), Mix(one.Y(), two.Y(), factor), Mix(one.Z(), two.Z(), factor)}
}

func IsZeroVec3(v mgl32.Vec3) bool {
	return v.X() == 0 && v.Y() == 0 && v.Z() == 0
}

func IsZeroVec2(v mgl32.Vec2) bool {
	return v.X() == 0 && v.Y() == 0
}

// PlanarToWorld maps a 2-D stick/key vector onto the horizontal xz-plane.
func PlanarToWorld(v mgl32.Vec2) mgl32.Vec3 {
	return mgl32.Vec3{v.X(), 0, v.Y()}
}

// DominantAxisStep turns a face normal into a unit cell offset. The first axis
// whose component exceeds 0.5 in magnitude wins, checked x, y, z; a normal with
// no dominant component steps towards -z.
func DominantAxisStep(normal mgl32.Vec3) (int32, int32, int32) {
	switch {
	case normal.X() > 0.5:
		return 1, 0, 0
	case normal.X() < -0.5:
		return -1, 0, 0
	case normal.Y() > 0.5:
		return 0, 1, 0
	case normal.Y() < -0.5:
		return 0, -1, 0
	case normal.Z() > 0.5:
		return 0, 0, 1
	}
	return 0, 0, -1
}
