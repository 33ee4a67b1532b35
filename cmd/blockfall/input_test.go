package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/board"
	"github.com/stretchr/testify/assert"
)

func TestActionForKey(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want board.Action
	}{
		{ebiten.KeyArrowLeft, board.MoveLeft},
		{ebiten.KeyA, board.MoveLeft},
		{ebiten.KeyArrowRight, board.MoveRight},
		{ebiten.KeyD, board.MoveRight},
		{ebiten.KeyArrowUp, board.Rotate},
		{ebiten.KeyX, board.Rotate},
		{ebiten.KeyArrowDown, board.MoveDown},
		{ebiten.KeyS, board.MoveDown},
	}

	for _, tt := range tests {
		got, ok := actionForKey(tt.key)
		assert.True(t, ok, tt.key.String())
		assert.Equal(t, tt.want, got, tt.key.String())
	}

	_, ok := actionForKey(ebiten.KeyP)
	assert.False(t, ok)
}

func TestActionsForKeys(t *testing.T) {
	keys := []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowLeft}

	assert.Equal(t, []board.Action{board.MoveDown, board.Rotate, board.MoveLeft}, actionsForKeys(keys))
	assert.Nil(t, actionsForKeys(nil))
}
