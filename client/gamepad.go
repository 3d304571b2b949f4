package client

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxelparty/engine/util"
	"github.com/memmaker/voxelparty/game"
)

const triggerDashThreshold = 0.5

// joystick is the part of glfw.Joystick the poller reads.
type joystick interface {
	Present() bool
	IsGamepad() bool
	GetGamepadState() *glfw.GamepadState
	GetAxes() []float32
	GetButtons() []glfw.Action
}

// Gamepads polls up to four joysticks. Pad N drives player N+1. All methods
// call into glfw and must run on the main thread.
type Gamepads struct {
	slots      []joystick
	deadzone   float32
	joined     []bool
	dashWasOn  []bool
	disconnect []bool
}

func NewGamepads(max int, deadzone float32) *Gamepads {
	slots := make([]joystick, 0, max)
	for i := 0; i < max; i++ {
		slots = append(slots, glfw.Joystick1+glfw.Joystick(i))
	}
	return newGamepads(slots, deadzone)
}

func newGamepads(slots []joystick, deadzone float32) *Gamepads {
	return &Gamepads{
		slots:      slots,
		deadzone:   deadzone,
		joined:     make([]bool, len(slots)),
		dashWasOn:  make([]bool, len(slots)),
		disconnect: make([]bool, len(slots)),
	}
}

// ApplyDeadzone zeroes stick axes within the deadzone and normalizes what is
// left, so any deflection past the deadzone moves at full speed.
func ApplyDeadzone(x, y, deadzone float32) mgl32.Vec2 {
	var movement mgl32.Vec2
	if util.Abs(x) > deadzone {
		movement[0] = x
	}
	if util.Abs(y) > deadzone {
		movement[1] = y
	}
	if util.IsZeroVec2(movement) {
		return movement
	}
	return movement.Normalize()
}

type padReading struct {
	x, y float32
	dash bool
}

func readPad(pad joystick) padReading {
	if pad.IsGamepad() {
		if state := pad.GetGamepadState(); state != nil {
			return padReading{
				x:    state.Axes[glfw.AxisLeftX],
				y:    state.Axes[glfw.AxisLeftY],
				dash: state.Buttons[glfw.ButtonA] == glfw.Press || state.Axes[glfw.AxisRightTrigger] > triggerDashThreshold,
			}
		}
	}
	var reading padReading
	axes := pad.GetAxes()
	if len(axes) >= 2 {
		reading.x, reading.y = axes[0], axes[1]
	}
	buttons := pad.GetButtons()
	if len(buttons) > 0 {
		reading.dash = buttons[0] == glfw.Press
	}
	return reading
}

// Poll adds every present pad to frame: a join request the first time it is
// seen, then its movement and dash edge.
func (g *Gamepads) Poll(frame *game.FrameInput) {
	for i, pad := range g.slots {
		id := game.GamepadPlayer(i)
		if !pad.Present() {
			if g.joined[i] && !g.disconnect[i] {
				util.LogInputWarning(fmt.Sprintf("[Gamepads] Pad %d disconnected, player %d stands still", i, id))
				g.disconnect[i] = true
			}
			g.dashWasOn[i] = false
			continue
		}
		g.disconnect[i] = false
		if !g.joined[i] {
			util.LogInputInfo(fmt.Sprintf("[Gamepads] New gamepad detected: %d -> Player %d", i, id))
			frame.Joins = append(frame.Joins, game.JoinRequest{ID: id, Device: game.DeviceGamepad})
			g.joined[i] = true
		}
		reading := readPad(pad)
		dashEdge := reading.dash && !g.dashWasOn[i]
		g.dashWasOn[i] = reading.dash
		frame.Players[id] = game.PlayerFrame{
			Movement: ApplyDeadzone(reading.x, reading.y, g.deadzone),
			Dash:     dashEdge,
		}
	}
}
