package util

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCamera() *FollowCamera {
	return NewFollowCamera(FollowCameraSettings{
		Position:     mgl32.Vec3{25, 25, 25},
		Target:       mgl32.Vec3{12.5, 0, 12.5},
		Offset:       15,
		Height:       25,
		AngleDegrees: 45,
		Smoothing:    0.2,
		FOV:          60,
		Near:         0.1,
		Far:          200,
		PanSpeed:     10,
		WindowWidth:  800,
		WindowHeight: 600,
	})
}

func TestFollowConverges(t *testing.T) {
	cam := testCamera()
	target := mgl32.Vec3{12, 1, 12}
	goal := cam.GoalFor(target)
	assert.InDelta(t, 12+15*0.70710677, goal.X(), 1e-4)
	assert.Equal(t, float32(25), goal.Y())

	for i := 0; i < 600; i++ {
		cam.Follow(target, 1.0/60.0)
	}
	assert.InDelta(t, goal.X(), cam.GetPosition().X(), 1e-3)
	assert.InDelta(t, goal.Z(), cam.GetPosition().Z(), 1e-3)
	assert.Equal(t, target, cam.GetTarget())
}

func TestFollowClampsLargeSteps(t *testing.T) {
	cam := testCamera()
	target := mgl32.Vec3{3, 1, 3}
	cam.Follow(target, 10)
	assert.Equal(t, cam.GoalFor(target), cam.GetPosition())
}

func TestPanMovesPositionAndTarget(t *testing.T) {
	cam := testCamera()
	cam.Pan(mgl32.Vec2{1, 0}, 0.5)
	assert.Equal(t, mgl32.Vec3{30, 25, 25}, cam.GetPosition())
	assert.Equal(t, mgl32.Vec3{17.5, 0, 12.5}, cam.GetTarget())
}

func TestCenterRayLooksAtTarget(t *testing.T) {
	cam := testCamera()
	ray, ok := cam.GetCenterRay()
	require.True(t, ok)
	want := cam.GetTarget().Sub(cam.GetPosition()).Normalize()
	assert.InDelta(t, want.X(), ray.Direction.X(), 1e-2)
	assert.InDelta(t, want.Y(), ray.Direction.Y(), 1e-2)
	assert.InDelta(t, want.Z(), ray.Direction.Z(), 1e-2)
}
