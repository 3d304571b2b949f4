package voxel

import (
	"fmt"

	"github.com/pkg/errors"
)

type Type uint8

const (
	Empty Type = iota
	Ground
	Wall
)

func (t Type) String() string {
	switch t {
	case Empty:
		return "Empty"
	case Ground:
		return "Ground"
	case Wall:
		return "Wall"
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

func (t Type) IsSolid() bool {
	return t != Empty
}

type Voxel struct {
	Position Int3
	Type     Type
}

// Grid is a bounded voxel volume. Cells that were never written, or were
// written with Empty, hold no entry; anything outside the bounds reads as Empty.
type Grid struct {
	cells     []Type
	width     int32
	height    int32
	depth     int32
	voxelSize float32
	count     int
}

func NewGrid(width, height, depth int32, voxelSize float32) (*Grid, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, errors.Errorf("invalid grid dimensions %dx%dx%d", width, height, depth)
	}
	if voxelSize <= 0 {
		return nil, errors.Errorf("invalid voxel size %f", voxelSize)
	}
	return &Grid{
		cells:     make([]Type, int(width)*int(height)*int(depth)),
		width:     width,
		height:    height,
		depth:     depth,
		voxelSize: voxelSize,
	}, nil
}

func MustNewGrid(width, height, depth int32, voxelSize float32) *Grid {
	g, err := NewGrid(width, height, depth, voxelSize)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) Width() int32 {
	return g.width
}

func (g *Grid) Height() int32 {
	return g.height
}

func (g *Grid) Depth() int32 {
	return g.depth
}

func (g *Grid) VoxelSize() float32 {
	return g.voxelSize
}

// Count returns the number of stored (non-Empty) voxels.
func (g *Grid) Count() int {
	return g.count
}

func (g *Grid) Contains(x, y, z int32) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height && z >= 0 && z < g.depth
}

func (g *Grid) ContainsGrid(pos Int3) bool {
	return g.Contains(pos.X, pos.Y, pos.Z)
}

func (g *Grid) index(x, y, z int32) int {
	return int(x) + int(z)*int(g.width) + int(y)*int(g.width)*int(g.depth)
}

func (g *Grid) Get(x, y, z int32) Type {
	if !g.Contains(x, y, z) {
		return Empty
	}
	return g.cells[g.index(x, y, z)]
}

func (g *Grid) GetVec(pos Int3) Type {
	return g.Get(pos.X, pos.Y, pos.Z)
}

func (g *Grid) Set(x, y, z int32, t Type) {
	if !g.Contains(x, y, z) {
		return
	}
	i := g.index(x, y, z)
	previous := g.cells[i]
	g.cells[i] = t
	switch {
	case previous == Empty && t != Empty:
		g.count++
	case previous != Empty && t == Empty:
		g.count--
	}
}

func (g *Grid) SetVec(pos Int3, t Type) {
	g.Set(pos.X, pos.Y, pos.Z, t)
}

func (g *Grid) SetFloorAtHeight(yLevel int32, t Type) {
	for x := int32(0); x < g.width; x++ {
		for z := int32(0); z < g.depth; z++ {
			g.Set(x, yLevel, z, t)
		}
	}
}

// ForEach visits every stored voxel, x outermost, then y, then z.
func (g *Grid) ForEach(visit func(pos Int3, t Type)) {
	for x := int32(0); x < g.width; x++ {
		for y := int32(0); y < g.height; y++ {
			for z := int32(0); z < g.depth; z++ {
				t := g.cells[g.index(x, y, z)]
				if t == Empty {
					continue
				}
				visit(Int3{X: x, Y: y, Z: z}, t)
			}
		}
	}
}

func (g *Grid) Voxels() []Voxel {
	result := make([]Voxel, 0, g.count)
	g.ForEach(func(pos Int3, t Type) {
		result = append(result, Voxel{Position: pos, Type: t})
	})
	return result
}

func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
	g.count = 0
}

func (g *Grid) String() string {
	return fmt.Sprintf("Grid %dx%dx%d (voxel size %.2f, %d voxels)", g.width, g.height, g.depth, g.voxelSize, g.count)
}
