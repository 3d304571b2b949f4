package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxelparty/engine/util"
)

// PlayerFrame is one player's input for a single frame. Movement components
// are expected in [-1, 1]; Dash is the button edge, not its held state.
type PlayerFrame struct {
	Movement mgl32.Vec2
	Dash     bool
}

type JoinRequest struct {
	ID     PlayerID
	Device Device
}

type FrameInput struct {
	Players map[PlayerID]PlayerFrame
	Joins   []JoinRequest
	// Ray is the world space picking ray under the cursor, if any.
	Ray          *util.Ray
	Click        bool
	ToggleEditor bool
	ToggleMode   bool
	// Pan moves the camera freely while the editor is enabled.
	Pan mgl32.Vec2
}

func NewFrameInput() FrameInput {
	return FrameInput{Players: make(map[PlayerID]PlayerFrame)}
}

// UpdateReport summarises what one call to Game.Update did.
type UpdateReport struct {
	Joined  []PlayerID
	Motions map[PlayerID]MotionResult
	Edit    EditResult
	Steps   int
}
