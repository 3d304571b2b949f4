package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxelparty/engine/util"
	"github.com/memmaker/voxelparty/engine/voxel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func movingFrame(id PlayerID, x, y float32) FrameInput {
	frame := NewFrameInput()
	frame.Players[id] = PlayerFrame{Movement: mgl32.Vec2{x, y}}
	return frame
}

func TestNewGameSeedsWorldAndKeyboardPlayer(t *testing.T) {
	g, err := NewGame(DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 25*25, g.Grid().Count())
	assert.Equal(t, voxel.Ground, g.Grid().Get(0, 0, 24))
	assert.Equal(t, []PlayerID{KeyboardPlayer}, g.PlayerIDs())

	player, ok := g.Player(KeyboardPlayer)
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{12.5, 1, 12.5}, player.Position)
	assert.Equal(t, mgl32.Vec3{0.5, 1, 0.5}, player.Size)
	assert.True(t, player.IsReady)
	assert.Contains(t, PlayerPalette, player.Color)

	input, ok := g.Input(KeyboardPlayer)
	require.True(t, ok)
	assert.Equal(t, float32(5), input.MovementSpeed)
}

func TestNewGameRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.World.Depth = 0
	_, err := NewGame(cfg)
	assert.Error(t, err)
}

func TestJoinIsIdempotent(t *testing.T) {
	g := newTestGame(t)
	first, joined := g.Join(JoinRequest{ID: 3, Device: DeviceGamepad})
	require.True(t, joined)
	second, joined := g.Join(JoinRequest{ID: 3, Device: DeviceKeyboard})
	assert.False(t, joined)
	assert.Same(t, first, second)

	input, _ := g.Input(3)
	assert.Equal(t, float32(8), input.MovementSpeed)
	assert.Equal(t, DeviceGamepad, input.Device)
}

func TestPlayersUpdateInIDOrder(t *testing.T) {
	g := newTestGame(t)
	g.Join(JoinRequest{ID: 3, Device: DeviceGamepad})
	g.Join(JoinRequest{ID: 1, Device: DeviceGamepad})
	g.Join(JoinRequest{ID: KeyboardPlayer, Device: DeviceKeyboard})
	assert.Equal(t, []PlayerID{0, 1, 3}, g.PlayerIDs())
}

func TestJoinedPlayersGetDistinctColors(t *testing.T) {
	g := newTestGame(t)
	var colors []mgl32.Vec4
	for id := PlayerID(0); id < 5; id++ {
		player, _ := g.Join(JoinRequest{ID: id, Device: DeviceGamepad})
		assert.NotContains(t, colors, player.Color)
		colors = append(colors, player.Color)
	}
	assert.ElementsMatch(t, PlayerPalette, colors)

	extra, _ := g.Join(JoinRequest{ID: 5, Device: DeviceGamepad})
	assert.Equal(t, ColorWhite, extra.Color)
}

func TestIdleTickChangesNothing(t *testing.T) {
	g, err := NewGame(DefaultConfig())
	require.NoError(t, err)
	player, _ := g.Player(KeyboardPlayer)
	player.Position = mgl32.Vec3{12, 1, 12}

	report := g.Update(NewFrameInput(), tick)

	assert.Equal(t, mgl32.Vec3{12, 1, 12}, player.Position)
	assert.False(t, report.Motions[KeyboardPlayer].Collided)
	assert.False(t, report.Motions[KeyboardPlayer].Moved)
	assert.Equal(t, 1, report.Steps)
}

func TestLongFrameIsSubStepped(t *testing.T) {
	g, err := NewGame(DefaultConfig())
	require.NoError(t, err)
	player, _ := g.Player(KeyboardPlayer)
	player.Position = mgl32.Vec3{12, 1, 12}

	report := g.Update(movingFrame(KeyboardPlayer, 1, 0), 1.0)

	assert.Equal(t, 60, report.Steps)
	assert.False(t, report.Motions[KeyboardPlayer].Collided)
	assert.Greater(t, player.Position.X(), float32(12))
	// lags behind the 7.5 u/s target speed (5 * 1.5). Continuously, v' = 3(7.5 - v)
	// covers 7.5 * (1 - (1-e^-3)/3) ~= 5.125 in 1 s; 60 steps of 1/60 land at ~5.23.
	assert.Less(t, player.Position.X(), float32(12+7.5))
	assert.InDelta(t, 17.23, player.Position.X(), 0.02)
	assert.Equal(t, float32(12), player.Position.Z())
}

func TestSubStepsAreBounded(t *testing.T) {
	g := newTestGame(t)
	assert.Equal(t, 0, g.subSteps(0))
	assert.Equal(t, 1, g.subSteps(0.001))
	assert.Equal(t, 2, g.subSteps(0.03))
	assert.Equal(t, maxSubSteps, g.subSteps(60))
}

func TestDashAppliesToFirstSubStepOnly(t *testing.T) {
	g, err := NewGame(DefaultConfig())
	require.NoError(t, err)
	frame := movingFrame(KeyboardPlayer, 1, 0)
	frame.Players[KeyboardPlayer] = PlayerFrame{Movement: mgl32.Vec2{1, 0}, Dash: true}

	report := g.Update(frame, 2*tick)

	player, _ := g.Player(KeyboardPlayer)
	assert.Equal(t, 2, report.Steps)
	assert.True(t, report.Motions[KeyboardPlayer].DashStarted)
	assert.True(t, player.Dash.IsDashing)
	assert.InDelta(t, 0.8-float64(tick), player.Dash.Cooldown, 1e-5)
}

func TestPlayersMoveIndependentlyAndMayOverlap(t *testing.T) {
	g, err := NewGame(DefaultConfig())
	require.NoError(t, err)
	pad, _ := g.Join(JoinRequest{ID: GamepadPlayer(0), Device: DeviceGamepad})
	keyboard, _ := g.Player(KeyboardPlayer)
	require.Equal(t, keyboard.Position, pad.Position)

	frame := NewFrameInput()
	frame.Players[KeyboardPlayer] = PlayerFrame{Movement: mgl32.Vec2{1, 0}, Dash: true}
	frame.Players[GamepadPlayer(0)] = PlayerFrame{Movement: mgl32.Vec2{0, 1}, Dash: true}
	frame.Players[PlayerID(7)] = PlayerFrame{Movement: mgl32.Vec2{1, 1}}
	report := g.Update(frame, tick)

	assert.True(t, keyboard.Dash.IsDashing)
	assert.True(t, pad.Dash.IsDashing)
	assert.Greater(t, keyboard.Position.X(), pad.Position.X())
	assert.Greater(t, pad.Position.Z(), keyboard.Position.Z())
	assert.NotContains(t, report.Motions, PlayerID(7))
}

func TestUpdateJoinsRequestedPlayers(t *testing.T) {
	g := newTestGame(t)
	frame := NewFrameInput()
	frame.Joins = []JoinRequest{{ID: 2, Device: DeviceGamepad}, {ID: 2, Device: DeviceGamepad}}

	report := g.Update(frame, tick)

	assert.Equal(t, []PlayerID{2}, report.Joined)
	assert.Equal(t, []PlayerID{2}, g.PlayerIDs())
}

func TestEditorClickFlow(t *testing.T) {
	g, err := NewGame(DefaultConfig())
	require.NoError(t, err)
	ray := util.NewRay(mgl32.Vec3{5.5, 10, 5.5}, straightDown)

	frame := NewFrameInput()
	frame.Ray = &ray
	frame.Click = true
	report := g.Update(frame, tick)
	assert.Equal(t, EditNone, report.Edit.Outcome, "editor is off")
	assert.False(t, g.Snapshot().HasHover)

	frame.ToggleEditor = true
	report = g.Update(frame, tick)
	assert.Equal(t, EditPlaced, report.Edit.Outcome)
	assert.Equal(t, voxel.Int3{X: 5, Y: 1, Z: 5}, report.Edit.Cell)
	assert.Equal(t, voxel.Wall, report.Edit.Type)

	snap := g.Snapshot()
	assert.True(t, snap.EditorEnabled)
	assert.True(t, snap.HasHover)
	assert.Equal(t, voxel.Int3{X: 5, Y: 0, Z: 5}, snap.Hover)
	assert.Equal(t, BuildMode, snap.Mode)

	frame.ToggleEditor = false
	frame.ToggleMode = true
	report = g.Update(frame, tick)
	assert.Equal(t, EditRemoved, report.Edit.Outcome)
	assert.Equal(t, voxel.Int3{X: 5, Y: 1, Z: 5}, report.Edit.Cell)
	assert.Equal(t, RemoveMode, g.Editor().Mode)
}

func TestCameraFollowsReferencePlayer(t *testing.T) {
	g, err := NewGame(DefaultConfig())
	require.NoError(t, err)
	player, _ := g.Player(KeyboardPlayer)

	for i := 0; i < 300; i++ {
		g.Update(NewFrameInput(), tick)
	}

	assert.Equal(t, player.Position, g.Camera().GetTarget())
	goal := g.Camera().GoalFor(player.Position)
	assertVec3InDelta(t, goal, g.Camera().GetPosition(), 0.01)
}

func TestCameraPansInEditor(t *testing.T) {
	g, err := NewGame(DefaultConfig())
	require.NoError(t, err)
	g.Update(NewFrameInput(), tick)
	before := g.Camera().GetTarget()

	frame := NewFrameInput()
	frame.ToggleEditor = true
	frame.Pan = mgl32.Vec2{1, 0}
	g.Update(frame, 0.1)

	after := g.Camera().GetTarget()
	assert.InDelta(t, before.X()+1, after.X(), 1e-4)
}

func TestEditorCameraStaysWherePanned(t *testing.T) {
	g, err := NewGame(DefaultConfig())
	require.NoError(t, err)
	player, _ := g.Player(KeyboardPlayer)

	frame := NewFrameInput()
	frame.ToggleEditor = true
	g.Update(frame, tick)
	for i := 0; i < 60; i++ {
		frame = NewFrameInput()
		frame.Pan = mgl32.Vec2{1, 0}
		g.Update(frame, tick)
	}
	panned := g.Camera().GetTarget()
	require.Greater(t, panned.X(), player.Position.X()+5)

	ray, ok := g.Camera().GetCenterRay()
	require.True(t, ok)
	idle := NewFrameInput()
	idle.Ray = &ray
	g.Update(idle, tick)

	assert.Equal(t, panned, g.Camera().GetTarget())
	hover, ok := g.Hover()
	require.True(t, ok)
	assert.Greater(t, hover.Cell.X, int32(player.Position.X())+3)

	closing := NewFrameInput()
	closing.ToggleEditor = true
	g.Update(closing, tick)
	assert.Equal(t, player.Position, g.Camera().GetTarget())
}

func TestSnapshotIsACopy(t *testing.T) {
	g, err := NewGame(DefaultConfig())
	require.NoError(t, err)
	g.Join(JoinRequest{ID: 2, Device: DeviceGamepad})

	snap := g.Snapshot()
	require.Len(t, snap.Players, 2)
	assert.Equal(t, PlayerID(0), snap.Players[0].ID)
	assert.Equal(t, PlayerID(2), snap.Players[1].ID)
	assert.Len(t, snap.Voxels, 625)

	g.Grid().Clear()
	assert.Len(t, snap.Voxels, 625)
}
