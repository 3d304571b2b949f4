package client

import (
	"fmt"
	"strings"

	"github.com/memmaker/voxelparty/engine/util"
	"github.com/memmaker/voxelparty/engine/voxel"
	"github.com/memmaker/voxelparty/game"
)

const (
	glyphHole   = ' '
	glyphFloor  = '.'
	glyphRaised = '='
	glyphWall   = '#'
	glyphHover  = '+'
)

// RenderTopDown draws the world seen from above, one rune per column. The
// tallest voxel of a column decides its glyph; players and the hovered cell
// are drawn on top.
func RenderTopDown(snap game.Snapshot) string {
	width, depth := int(snap.Dimensions.X), int(snap.Dimensions.Z)
	if width <= 0 || depth <= 0 {
		return ""
	}
	rows := make([][]rune, depth)
	tops := make([][]int32, depth)
	for z := range rows {
		rows[z] = []rune(strings.Repeat(string(glyphHole), width))
		tops[z] = make([]int32, width)
		for x := range tops[z] {
			tops[z][x] = -1
		}
	}
	for _, v := range snap.Voxels {
		x, z := int(v.Position.X), int(v.Position.Z)
		if v.Position.Y < tops[z][x] {
			continue
		}
		tops[z][x] = v.Position.Y
		rows[z][x] = glyphFor(v)
	}
	if snap.HasHover && inside(snap.Hover, width, depth) {
		rows[snap.Hover.Z][snap.Hover.X] = glyphHover
	}
	for _, p := range snap.Players {
		x := util.FloorToInt(p.Position.X() / snap.VoxelSize)
		z := util.FloorToInt(p.Position.Z() / snap.VoxelSize)
		if x < 0 || z < 0 || int(x) >= width || int(z) >= depth {
			continue
		}
		rows[z][x] = playerGlyph(p.ID)
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(string(row))
		b.WriteString("\r\n")
	}
	return b.String()
}

// StatusLine summarises editor state and player positions.
func StatusLine(snap game.Snapshot) string {
	editor := "off"
	if snap.EditorEnabled {
		editor = snap.Mode.String()
	}
	parts := []string{fmt.Sprintf("editor: %s", editor), fmt.Sprintf("voxels: %d", len(snap.Voxels))}
	for _, p := range snap.Players {
		dash := ""
		if p.IsDashing {
			dash = " dash"
		}
		parts = append(parts, fmt.Sprintf("%c (%.1f, %.1f)%s", playerGlyph(p.ID), p.Position.X(), p.Position.Z(), dash))
	}
	return strings.Join(parts, " | ")
}

func glyphFor(v voxel.Voxel) rune {
	switch {
	case v.Type == voxel.Wall:
		return glyphWall
	case v.Position.Y == 0:
		return glyphFloor
	}
	return glyphRaised
}

func playerGlyph(id game.PlayerID) rune {
	if id == game.KeyboardPlayer {
		return '@'
	}
	if id < 10 {
		return rune('0' + int(id))
	}
	return 'P'
}

func inside(cell voxel.Int3, width, depth int) bool {
	return cell.X >= 0 && cell.Z >= 0 && int(cell.X) < width && int(cell.Z) < depth
}
