package engine

import (
	"testing"

	"github.com/plus3/blockfall/board"
	"github.com/stretchr/testify/assert"
)

func TestCommandsFlushOrder(t *testing.T) {
	b := board.FromCells(2, 2, []board.Cell{
		board.Empty, board.SBlock,
		board.OBlock, board.OBlock,
	})
	c := newCommands()

	var seen []board.Cell
	c.Defer(func() { seen = b.Snapshot() })
	c.Act(board.Rotate)
	c.Tick()
	c.Act(board.MoveLeft)

	actions, ticks := c.Pending()
	assert.Equal(t, 2, actions)
	assert.Equal(t, 1, ticks)

	cleared := c.Flush(b)

	assert.Equal(t, []int{1}, cleared)
	// defers observe the board after the tick
	assert.Equal(t, []board.Cell{
		board.Empty, board.Empty,
		board.Empty, board.SBlock,
	}, seen)
}

func TestCommandsFlushResets(t *testing.T) {
	b := board.New(2, 2)
	c := newCommands()

	calls := 0
	c.Defer(func() { calls++ })
	c.Act(board.MoveDown)
	c.Tick()
	c.Tick()

	assert.Nil(t, c.Flush(b))
	assert.Equal(t, 1, calls)

	actions, ticks := c.Pending()
	assert.Equal(t, 0, actions)
	assert.Equal(t, 0, ticks)

	c.Flush(b)
	assert.Equal(t, 1, calls)
}

func TestCommandsMultipleTicks(t *testing.T) {
	// The second tick picks up nothing new: a single pass already cleared
	// both full rows.
	b := board.FromCells(2, 3, []board.Cell{
		board.ZBlock, board.ZBlock,
		board.IBlock, board.Empty,
		board.LBlock, board.LBlock,
	})
	c := newCommands()
	c.Tick()
	c.Tick()

	assert.Equal(t, []int{0, 2}, c.Flush(b))
	assert.Equal(t, []board.Cell{
		board.Empty, board.Empty,
		board.Empty, board.Empty,
		board.IBlock, board.Empty,
	}, b.Cells())
}

func TestCommandsInvalidAction(t *testing.T) {
	c := newCommands()
	c.Act(board.Action(9))

	assert.Panics(t, func() { c.Flush(board.New(1, 1)) })
}

func TestCommandsPlaceAndClearRow(t *testing.T) {
	b := board.New(3, 3)
	c := newCommands()

	c.Tick()
	c.ClearRow(1)
	c.Place(0, 0, board.TBlock)
	c.Place(1, 2, board.ZBlock)
	for col := 0; col < 3; col++ {
		c.Place(2, col, board.OBlock)
	}

	// placements land first, the explicit clear drops row 0 onto row 1,
	// and the tick then clears the full bottom row.
	assert.Equal(t, []int{1, 2}, c.Flush(b))
	assert.Equal(t, []board.Cell{
		board.Empty, board.Empty, board.Empty,
		board.Empty, board.Empty, board.Empty,
		board.TBlock, board.Empty, board.Empty,
	}, b.Cells())
}
