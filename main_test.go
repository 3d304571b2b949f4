package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxelparty/client"
	"github.com/memmaker/voxelparty/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameFromKeyboard(t *testing.T) {
	frame := frameFromKeyboard(client.KeyboardFrame{
		Movement: mgl32.Vec2{1, -1},
		Pan:      mgl32.Vec2{0, 1},
		Dash:     true,
		Join:     true,
		Click:    true,
	})

	assert.Equal(t, game.PlayerFrame{Movement: mgl32.Vec2{1, -1}, Dash: true}, frame.Players[game.KeyboardPlayer])
	require.Len(t, frame.Joins, 1)
	assert.Equal(t, game.KeyboardPlayer, frame.Joins[0].ID)
	assert.True(t, frame.Click)
	assert.False(t, frame.ToggleEditor)
	assert.Equal(t, mgl32.Vec2{0, 1}, frame.Pan)
}
