package util

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Camera interface {
	GetViewMatrix() mgl32.Mat4
	GetProjectionMatrix() mgl32.Mat4
	GetPosition() mgl32.Vec3
}

// GetRayFromCameraPlane unprojects a window position (origin top left) onto the
// near and far planes and returns the ray between them.
func GetRayFromCameraPlane(cam Camera, x, y float32, windowWidth, windowHeight int) (Ray, bool) {
	view := cam.GetViewMatrix()
	proj := cam.GetProjectionMatrix()
	winY := float32(windowHeight) - y
	near, err := mgl32.UnProject(mgl32.Vec3{x, winY, 0}, view, proj, 0, 0, windowWidth, windowHeight)
	if err != nil {
		return Ray{}, false
	}
	far, err := mgl32.UnProject(mgl32.Vec3{x, winY, 1}, view, proj, 0, 0, windowWidth, windowHeight)
	if err != nil {
		return Ray{}, false
	}
	if far.Sub(near).Len() == 0 {
		return Ray{}, false
	}
	return NewRayBetween(near, far), true
}

type FollowCameraSettings struct {
	Position     mgl32.Vec3
	Target       mgl32.Vec3
	Offset       float32
	Height       float32
	AngleDegrees float32
	Smoothing    float32
	FOV          float32
	Near         float32
	Far          float32
	PanSpeed     float32
	WindowWidth  int
	WindowHeight int
}

// FollowCamera trails a target from a fixed height and yaw, easing towards its
// goal every frame. In free mode it is panned directly instead.
type FollowCamera struct {
	position     mgl32.Vec3
	target       mgl32.Vec3
	up           mgl32.Vec3
	offset       float32
	height       float32
	angle        float32
	smoothing    float32
	fov          float32
	near         float32
	far          float32
	panSpeed     float32
	windowWidth  int
	windowHeight int
}

func NewFollowCamera(settings FollowCameraSettings) *FollowCamera {
	return &FollowCamera{
		position:     settings.Position,
		target:       settings.Target,
		up:           mgl32.Vec3{0, 1, 0},
		offset:       settings.Offset,
		height:       settings.Height,
		angle:        ToRadian(settings.AngleDegrees),
		smoothing:    settings.Smoothing,
		fov:          settings.FOV,
		near:         settings.Near,
		far:          settings.Far,
		panSpeed:     settings.PanSpeed,
		windowWidth:  settings.WindowWidth,
		windowHeight: settings.WindowHeight,
	}
}

// GoalFor is where the camera wants to be while following target.
func (c *FollowCamera) GoalFor(target mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		target.X() + c.offset*Sin(c.angle),
		c.height,
		target.Z() + c.offset*Cos(c.angle),
	}
}

func (c *FollowCamera) Follow(target mgl32.Vec3, deltaTime float32) {
	factor := Clamp(c.smoothing*deltaTime*10, 0, 1)
	c.position = Lerp3(c.position, c.GoalFor(target), factor)
	c.target = target
}

// Pan moves camera and look target together over the xz-plane.
func (c *FollowCamera) Pan(direction mgl32.Vec2, deltaTime float32) {
	if IsZeroVec2(direction) {
		return
	}
	move := PlanarToWorld(direction).Mul(c.panSpeed * deltaTime)
	c.position = c.position.Add(move)
	c.target = c.target.Add(move)
}

func (c *FollowCamera) GetPosition() mgl32.Vec3 {
	return c.position
}

func (c *FollowCamera) GetTarget() mgl32.Vec3 {
	return c.target
}

func (c *FollowCamera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.target, c.up)
}

func (c *FollowCamera) GetProjectionMatrix() mgl32.Mat4 {
	aspect := float32(c.windowWidth) / float32(c.windowHeight)
	return mgl32.Perspective(ToRadian(c.fov), aspect, c.near, c.far)
}

func (c *FollowCamera) GetPickingRayFromScreenPosition(x, y float64) (Ray, bool) {
	return GetRayFromCameraPlane(c, float32(x), float32(y), c.windowWidth, c.windowHeight)
}

// GetCenterRay is the picking ray through the middle of the window.
func (c *FollowCamera) GetCenterRay() (Ray, bool) {
	return c.GetPickingRayFromScreenPosition(float64(c.windowWidth)/2, float64(c.windowHeight)/2)
}
