package game

import (
	"fmt"

	"github.com/memmaker/voxelparty/engine/util"
	"github.com/memmaker/voxelparty/engine/voxel"
)

type EditMode int

const (
	BuildMode EditMode = iota
	RemoveMode
)

func (m EditMode) String() string {
	switch m {
	case BuildMode:
		return "build"
	case RemoveMode:
		return "remove"
	}
	return fmt.Sprintf("EditMode(%d)", int(m))
}

type Editor struct {
	Enabled bool
	Mode    EditMode
}

func (e *Editor) Toggle() {
	e.Enabled = !e.Enabled
}

func (e *Editor) ToggleMode() {
	if e.Mode == BuildMode {
		e.Mode = RemoveMode
	} else {
		e.Mode = BuildMode
	}
}

type EditOutcome int

const (
	EditNone EditOutcome = iota
	EditPlaced
	EditRemoved
	EditBlocked
)

func (o EditOutcome) String() string {
	switch o {
	case EditNone:
		return "none"
	case EditPlaced:
		return "placed"
	case EditRemoved:
		return "removed"
	case EditBlocked:
		return "blocked"
	}
	return fmt.Sprintf("EditOutcome(%d)", int(o))
}

type EditResult struct {
	Outcome EditOutcome
	Cell    voxel.Int3
	Type    voxel.Type
	// Reason explains an EditBlocked outcome.
	Reason string
}

func (r EditResult) String() string {
	if r.Outcome == EditBlocked {
		return fmt.Sprintf("%s at %s: %s", r.Outcome, r.Cell.ToString(), r.Reason)
	}
	return fmt.Sprintf("%s %s at %s", r.Outcome, r.Type, r.Cell.ToString())
}

// ApplyEdit performs a click on the picked cell in the current editor mode.
func (g *Game) ApplyEdit(pick PickResult) EditResult {
	if g.editor.Mode == RemoveMode {
		return g.removeAt(pick.Cell)
	}
	return g.buildAt(pick)
}

func (g *Game) buildAt(pick PickResult) EditResult {
	target := pick.Cell
	if g.grid.GetVec(target).IsSolid() {
		dx, dy, dz := util.DominantAxisStep(pick.Normal)
		target = target.Add(voxel.Int3{X: dx, Y: dy, Z: dz})
	}
	if !g.grid.ContainsGrid(target) {
		return EditResult{Outcome: EditBlocked, Cell: target, Reason: "out of bounds"}
	}
	if g.grid.GetVec(target) != voxel.Empty {
		return EditResult{Outcome: EditBlocked, Cell: target, Reason: "occupied by voxel"}
	}
	if g.IsVoxelOccupiedByPlayer(target) {
		return EditResult{Outcome: EditBlocked, Cell: target, Reason: "occupied by player"}
	}
	placed := g.placementType(target)
	g.grid.SetVec(target, placed)
	util.LogEditorInfo(fmt.Sprintf("[Editor] Placed %s at %s", placed, target.ToString()))
	return EditResult{Outcome: EditPlaced, Cell: target, Type: placed}
}

func (g *Game) removeAt(cell voxel.Int3) EditResult {
	existing := g.grid.GetVec(cell)
	if !existing.IsSolid() {
		return EditResult{Outcome: EditNone, Cell: cell}
	}
	if g.IsVoxelOccupiedByPlayer(cell) {
		return EditResult{Outcome: EditBlocked, Cell: cell, Type: existing, Reason: "occupied by player"}
	}
	g.grid.SetVec(cell, voxel.Empty)
	util.LogEditorInfo(fmt.Sprintf("[Editor] Removed %s at %s", existing, cell.ToString()))
	return EditResult{Outcome: EditRemoved, Cell: cell, Type: existing}
}

// placementType makes anything on the floor or below the reference player's
// feet level Ground, so edited terrain stays walkable.
func (g *Game) placementType(cell voxel.Int3) voxel.Type {
	if cell.Y == 0 || float32(cell.Y) < g.referenceHeight() {
		return voxel.Ground
	}
	return voxel.Wall
}

func (g *Game) referenceHeight() float32 {
	if player, ok := g.referencePlayer(); ok {
		return player.Position.Y()
	}
	return defaultReferenceHeight
}

// IsVoxelOccupiedByPlayer reports whether any joined player's box overlaps cell.
func (g *Game) IsVoxelOccupiedByPlayer(cell voxel.Int3) bool {
	for _, id := range g.order {
		player := g.players[id]
		if PlayerOverlapsCell(player.Position, player.Size, cell, g.grid.VoxelSize()) {
			return true
		}
	}
	return false
}
