package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/board"
)

var keyActions = map[ebiten.Key]board.Action{
	ebiten.KeyArrowLeft:  board.MoveLeft,
	ebiten.KeyA:          board.MoveLeft,
	ebiten.KeyArrowRight: board.MoveRight,
	ebiten.KeyD:          board.MoveRight,
	ebiten.KeyArrowUp:    board.Rotate,
	ebiten.KeyW:          board.Rotate,
	ebiten.KeyX:          board.Rotate,
	ebiten.KeyArrowDown:  board.MoveDown,
	ebiten.KeyS:          board.MoveDown,
}

func actionForKey(key ebiten.Key) (board.Action, bool) {
	a, ok := keyActions[key]
	return a, ok
}

// actionsForKeys maps newly pressed keys to board actions, keeping key order
// and dropping keys without a binding.
func actionsForKeys(keys []ebiten.Key) []board.Action {
	var actions []board.Action
	for _, key := range keys {
		if a, ok := actionForKey(key); ok {
			actions = append(actions, a)
		}
	}
	return actions
}
