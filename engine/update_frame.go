package engine

import "github.com/plus3/blockfall/board"

// UpdateFrame is passed to every system during one Scheduler.Once call.
// Board must be treated as read-only; mutations go through Commands.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Board     *board.Board
}

func newUpdateFrame(dt float64, b *board.Board) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Board:     b,
	}
}
