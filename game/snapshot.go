package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxelparty/engine/voxel"
)

type PlayerView struct {
	ID        PlayerID
	Position  mgl32.Vec3
	Size      mgl32.Vec3
	Color     mgl32.Vec4
	IsDashing bool
}

type CameraView struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Dimensions    voxel.Int3
	VoxelSize     float32
	Voxels        []voxel.Voxel
	Players       []PlayerView
	Hover         voxel.Int3
	HasHover      bool
	Mode          EditMode
	EditorEnabled bool
	Camera        CameraView
}

func (g *Game) Snapshot() Snapshot {
	players := make([]PlayerView, 0, len(g.order))
	for _, id := range g.order {
		p := g.players[id]
		players = append(players, PlayerView{
			ID:        id,
			Position:  p.Position,
			Size:      p.Size,
			Color:     p.Color,
			IsDashing: p.Dash.IsDashing,
		})
	}
	return Snapshot{
		Dimensions:    voxel.Int3{X: g.grid.Width(), Y: g.grid.Height(), Z: g.grid.Depth()},
		VoxelSize:     g.grid.VoxelSize(),
		Voxels:        g.grid.Voxels(),
		Players:       players,
		Hover:         g.hover.Cell,
		HasHover:      g.hasHover,
		Mode:          g.editor.Mode,
		EditorEnabled: g.editor.Enabled,
		Camera: CameraView{
			Position: g.camera.GetPosition(),
			Target:   g.camera.GetTarget(),
		},
	}
}
