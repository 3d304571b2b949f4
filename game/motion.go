package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxelparty/engine/util"
	"github.com/memmaker/voxelparty/engine/voxel"
	"github.com/pkg/errors"
)

// dashEndTolerance absorbs float drift when the cooldown is counted down in
// fixed steps, e.g. 0.8 - 12*(1/60) lands a hair above 0.6.
const dashEndTolerance = 1e-4

type MotionParams struct {
	SpeedMultiplier    float32
	Acceleration       float32
	Friction           float32
	DashImpulse        float32
	DashSpeed          float32
	DashCooldown       float32
	DashDuration       float32
	DashRecoveryWindow float32
	DashRecoveryRate   float32
}

func DefaultMotionParams() MotionParams {
	return DefaultConfig().MotionParams()
}

func (p MotionParams) Validate() error {
	if p.Acceleration < 0 || p.Friction < 0 {
		return errors.New("acceleration and friction must not be negative")
	}
	if p.DashDuration <= 0 || p.DashDuration > p.DashCooldown {
		return errors.Errorf("dash duration %.3f must be in (0, cooldown %.3f]", p.DashDuration, p.DashCooldown)
	}
	if p.DashRecoveryWindow <= 0 {
		return errors.New("dash recovery window must be positive")
	}
	return nil
}

// dashEndsAt is the cooldown value at which the active part of a dash is over.
func (p MotionParams) dashEndsAt() float32 {
	return p.DashCooldown - p.DashDuration
}

type MotionResult struct {
	Moved       bool
	Collided    bool
	DashStarted bool
	DashEnded   bool
	Collision   Collision
}

// UpdatePlayer advances one player by dt. Collisions stop the player dead;
// there is no sliding along the blocked axis.
func UpdatePlayer(grid *voxel.Grid, player *PlayerState, input PlayerInput, dashRequested bool, dt float32, params MotionParams) MotionResult {
	var result MotionResult
	dash := &player.Dash

	if dash.Cooldown > 0 {
		dash.Cooldown -= dt
	}

	if dashRequested && !dash.IsDashing && dash.Cooldown <= 0 && !util.IsZeroVec2(input.Movement) {
		dash.IsDashing = true
		dash.Recovering = false
		dash.Cooldown = params.DashCooldown
		dash.Direction = util.PlanarToWorld(input.Movement).Normalize()
		dash.PreDashVelocity = player.Velocity
		player.Velocity = dash.Direction.Mul(params.DashImpulse)
		result.DashStarted = true
	} else {
		target := targetVelocity(player, input, params)
		player.Velocity = player.Velocity.Add(target.Sub(player.Velocity).Mul(util.Min(1, params.Acceleration*dt)))
		if !dash.IsDashing && util.IsZeroVec3(target) {
			player.Velocity = util.Lerp3(player.Velocity, mgl32.Vec3{}, util.Min(1, params.Friction*dt))
		}
	}

	dashEnd := params.dashEndsAt()
	if dash.IsDashing && dash.Cooldown <= dashEnd+dashEndTolerance {
		dash.IsDashing = false
		dash.Recovering = true
		result.DashEnded = true
	}
	if dash.Recovering {
		progress := (dashEnd - dash.Cooldown) / params.DashRecoveryWindow
		factor := util.Clamp(util.Min(1, progress)*params.DashRecoveryRate, 0, 1)
		player.Velocity = util.Lerp3(player.Velocity, dash.PreDashVelocity, factor)
		if progress >= 1 {
			dash.Recovering = false
		}
	}

	displacement := player.Velocity.Mul(dt)
	if displacement.Len() == 0 {
		return result
	}
	candidate := player.Position.Add(displacement)
	if collision, hit := CheckCollision(grid, candidate, player.Size); hit {
		player.Velocity = mgl32.Vec3{}
		dash.IsDashing = false
		dash.Recovering = false
		result.Collided = true
		result.Collision = collision
		return result
	}
	player.Position = candidate
	result.Moved = true
	return result
}

func targetVelocity(player *PlayerState, input PlayerInput, params MotionParams) mgl32.Vec3 {
	if player.Dash.IsDashing {
		return player.Dash.Direction.Mul(params.DashSpeed)
	}
	return util.PlanarToWorld(input.Movement).Mul(input.MovementSpeed * params.SpeedMultiplier)
}
