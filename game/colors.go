package game

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

func rgb(r, g, b int) mgl32.Vec4 {
	return mgl32.Vec4{float32(r) / float32(255), float32(g) / float32(255), float32(b) / float32(255), 1.0}
}

var ColorWhite = mgl32.Vec4{1, 1, 1, 1}

var PlayerPalette = []mgl32.Vec4{
	rgb(44, 93, 55),
	rgb(227, 197, 21),
	rgb(238, 81, 177),
	rgb(165, 156, 211),
	rgb(75, 45, 159),
}

// pickColor chooses uniformly among palette entries not in used.
// Returns false once every entry is taken.
func pickColor(rng *rand.Rand, palette []mgl32.Vec4, used []mgl32.Vec4) (mgl32.Vec4, bool) {
	var available []mgl32.Vec4
	for _, color := range palette {
		if !containsColor(used, color) {
			available = append(available, color)
		}
	}
	if len(available) == 0 {
		return mgl32.Vec4{}, false
	}
	return available[rng.Intn(len(available))], true
}

func containsColor(colors []mgl32.Vec4, color mgl32.Vec4) bool {
	for _, c := range colors {
		if c == color {
			return true
		}
	}
	return false
}
