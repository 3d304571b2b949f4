package game

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxelparty/engine/util"
	"github.com/memmaker/voxelparty/engine/voxel"
	"github.com/pkg/errors"
)

const (
	defaultReferenceHeight = 1.0
	// maxSubSteps bounds the work for a single frame after a long stall.
	maxSubSteps = 120
)

// Game owns the world and every joined player. It is not safe for concurrent
// use; the frame loop is its only caller.
type Game struct {
	config Config
	params MotionParams

	grid    *voxel.Grid
	players map[PlayerID]*PlayerState
	inputs  map[PlayerID]*PlayerInput
	order   []PlayerID

	editor   Editor
	hover    PickResult
	hasHover bool

	camera *util.FollowCamera
	rng    *rand.Rand
}

func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid game config")
	}
	grid, err := voxel.NewGrid(cfg.World.Width, cfg.World.Height, cfg.World.Depth, cfg.World.VoxelSize)
	if err != nil {
		return nil, errors.Wrap(err, "creating world")
	}
	grid.SetFloorAtHeight(0, voxel.Ground)
	spawn := cfg.SpawnPoint()
	GenerateTerrain(grid, cfg.World.Terrain, voxel.Int3{
		X: util.FloorToInt(spawn.X() / cfg.World.VoxelSize),
		Y: util.FloorToInt(spawn.Y() / cfg.World.VoxelSize),
		Z: util.FloorToInt(spawn.Z() / cfg.World.VoxelSize),
	})

	g := &Game{
		config:  cfg,
		params:  cfg.MotionParams(),
		grid:    grid,
		players: make(map[PlayerID]*PlayerState),
		inputs:  make(map[PlayerID]*PlayerInput),
		camera:  util.NewFollowCamera(cfg.CameraSettings()),
		rng:     rand.New(rand.NewSource(cfg.Simulation.ColorSeed)),
	}
	util.LogVoxelInfo(fmt.Sprintf("[Game] World ready: %s", grid))

	if cfg.Input.AutoJoinKeyboard {
		g.Join(JoinRequest{ID: KeyboardPlayer, Device: DeviceKeyboard})
	}
	return g, nil
}

func (g *Game) Grid() *voxel.Grid {
	return g.grid
}

func (g *Game) Config() Config {
	return g.config
}

func (g *Game) Camera() *util.FollowCamera {
	return g.camera
}

func (g *Game) Editor() Editor {
	return g.editor
}

func (g *Game) Hover() (PickResult, bool) {
	return g.hover, g.hasHover
}

func (g *Game) Player(id PlayerID) (*PlayerState, bool) {
	player, ok := g.players[id]
	return player, ok
}

func (g *Game) Input(id PlayerID) (PlayerInput, bool) {
	input, ok := g.inputs[id]
	if !ok {
		return PlayerInput{}, false
	}
	return *input, true
}

// PlayerIDs returns the joined players in update order.
func (g *Game) PlayerIDs() []PlayerID {
	ids := make([]PlayerID, len(g.order))
	copy(ids, g.order)
	return ids
}

func (g *Game) referencePlayer() (*PlayerState, bool) {
	if len(g.order) == 0 {
		return nil, false
	}
	return g.players[g.order[0]], true
}

func (g *Game) speedFor(device Device) float32 {
	if device == DeviceGamepad {
		return g.config.Movement.GamepadSpeed
	}
	return g.config.Movement.KeyboardSpeed
}

// Join registers a player. Joining an id twice returns the existing player
// and false.
func (g *Game) Join(req JoinRequest) (*PlayerState, bool) {
	if existing, ok := g.players[req.ID]; ok {
		return existing, false
	}
	used := make([]mgl32.Vec4, 0, len(g.players))
	for _, id := range g.order {
		used = append(used, g.players[id].OriginalColor)
	}
	color, ok := pickColor(g.rng, PlayerPalette, used)
	if !ok {
		color = ColorWhite
	}

	player := NewPlayerState(g.config.SpawnPoint(), g.config.PlayerSize(), color)
	player.IsReady = true
	g.players[req.ID] = player
	g.inputs[req.ID] = &PlayerInput{MovementSpeed: g.speedFor(req.Device), Device: req.Device}
	g.order = append(g.order, req.ID)
	sort.Slice(g.order, func(i, j int) bool { return g.order[i] < g.order[j] })

	util.LogPlayerInfo(fmt.Sprintf("[Game] Player %d joined via %s at (%.1f, %.1f, %.1f)", req.ID, req.Device, player.Position.X(), player.Position.Y(), player.Position.Z()))
	return player, true
}

// Update runs one frame. Long frames are split into sub-steps no longer than
// simulation.max_step; dash requests only count on the first one.
func (g *Game) Update(frame FrameInput, dt float32) UpdateReport {
	report := UpdateReport{Motions: make(map[PlayerID]MotionResult)}

	for _, req := range frame.Joins {
		if _, joined := g.Join(req); joined {
			report.Joined = append(report.Joined, req.ID)
		}
	}
	if frame.ToggleEditor {
		g.editor.Toggle()
		util.LogEditorInfo(fmt.Sprintf("[Editor] Enabled: %v", g.editor.Enabled))
	}
	if frame.ToggleMode {
		g.editor.ToggleMode()
		util.LogEditorInfo(fmt.Sprintf("[Editor] Mode: %s", g.editor.Mode))
	}

	for _, id := range g.order {
		g.inputs[id].Movement = frame.Players[id].Movement
	}

	report.Steps = g.subSteps(dt)
	if report.Steps > 0 {
		step := dt / float32(report.Steps)
		for i := 0; i < report.Steps; i++ {
			for _, id := range g.order {
				dash := i == 0 && frame.Players[id].Dash
				result := UpdatePlayer(g.grid, g.players[id], *g.inputs[id], dash, step, g.params)
				report.Motions[id] = mergeMotion(report.Motions[id], result)
			}
		}
	}
	g.logMotions(report.Motions)

	g.updateCamera(frame.Pan, dt)
	g.updateHover(frame.Ray)
	if frame.Click && g.editor.Enabled && g.hasHover {
		report.Edit = g.ApplyEdit(g.hover)
	}
	return report
}

func (g *Game) subSteps(dt float32) int {
	if dt <= 0 {
		return 0
	}
	steps := int(math.Ceil(float64(dt / g.config.Simulation.MaxStep)))
	if steps < 1 {
		steps = 1
	}
	if steps > maxSubSteps {
		steps = maxSubSteps
	}
	return steps
}

func mergeMotion(acc, next MotionResult) MotionResult {
	acc.Moved = acc.Moved || next.Moved
	acc.DashStarted = acc.DashStarted || next.DashStarted
	acc.DashEnded = acc.DashEnded || next.DashEnded
	if next.Collided {
		acc.Collided = true
		acc.Collision = next.Collision
	}
	return acc
}

func (g *Game) logMotions(motions map[PlayerID]MotionResult) {
	for _, id := range g.order {
		result := motions[id]
		if result.DashStarted {
			util.LogPlayerDebug(fmt.Sprintf("[Game] Player %d dashed: %s", id, g.players[id]))
		}
		if result.DashEnded {
			util.LogPlayerDebug(fmt.Sprintf("[Game] Player %d dash ended", id))
		}
		if result.Collided {
			util.LogPlayerDebug(fmt.Sprintf("[Game] Player %d stopped by %s", id, result.Collision))
		}
	}
}

// updateCamera pans freely while the editor is on and stays put between pans.
func (g *Game) updateCamera(pan mgl32.Vec2, dt float32) {
	if g.editor.Enabled {
		if !util.IsZeroVec2(pan) {
			g.camera.Pan(pan, dt)
		}
		return
	}
	if player, ok := g.referencePlayer(); ok {
		g.camera.Follow(player.Position, dt)
	}
}

func (g *Game) updateHover(ray *util.Ray) {
	if ray == nil || !g.editor.Enabled {
		g.hover, g.hasHover = PickResult{}, false
		return
	}
	g.hover, g.hasHover = Pick(g.grid, *ray)
}
