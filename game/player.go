package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type PlayerID int

const KeyboardPlayer PlayerID = 0

// GamepadPlayer maps a joystick slot to its player id.
func GamepadPlayer(pad int) PlayerID {
	return PlayerID(pad + 1)
}

type Device int

const (
	DeviceKeyboard Device = iota
	DeviceGamepad
)

func (d Device) String() string {
	switch d {
	case DeviceKeyboard:
		return "keyboard"
	case DeviceGamepad:
		return "gamepad"
	}
	return fmt.Sprintf("Device(%d)", int(d))
}

// PlayerInput is the per-player input binding. Movement is overwritten every
// frame; the speed is fixed by the device at join time.
type PlayerInput struct {
	Movement      mgl32.Vec2
	MovementSpeed float32
	Device        Device
}

type DashState struct {
	IsDashing       bool
	Recovering      bool
	Cooldown        float32
	Direction       mgl32.Vec3
	PreDashVelocity mgl32.Vec3
}

type PlayerState struct {
	Position      mgl32.Vec3
	Size          mgl32.Vec3
	Velocity      mgl32.Vec3
	Dash          DashState
	Color         mgl32.Vec4
	OriginalColor mgl32.Vec4
	IsReady       bool
}

func NewPlayerState(position, size mgl32.Vec3, color mgl32.Vec4) *PlayerState {
	return &PlayerState{
		Position:      position,
		Size:          size,
		Color:         color,
		OriginalColor: color,
	}
}

func (p *PlayerState) String() string {
	return fmt.Sprintf("pos=(%.2f, %.2f, %.2f) vel=(%.2f, %.2f, %.2f) dashing=%v cooldown=%.2f",
		p.Position.X(), p.Position.Y(), p.Position.Z(),
		p.Velocity.X(), p.Velocity.Y(), p.Velocity.Z(),
		p.Dash.IsDashing, p.Dash.Cooldown)
}
