package engine

import "github.com/plus3/blockfall/board"

// Commands buffers board mutations requested during a frame. They are applied
// together when the frame ends so systems always see a stable grid.
type Commands struct {
	places  []placeCommand
	actions []board.Action
	clears  []int
	ticks   int
	defers  []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

type placeCommand struct {
	row, col int
	cell     board.Cell
}

// Place queues writing a single cell.
func (c *Commands) Place(row, col int, cell board.Cell) {
	c.places = append(c.places, placeCommand{row: row, col: col, cell: cell})
}

// Act queues a movement or rotation command.
func (c *Commands) Act(a board.Action) {
	c.actions = append(c.actions, a)
}

// ClearRow queues removing row and shifting the rows above it down, whether
// or not the row is full.
func (c *Commands) ClearRow(row int) {
	c.clears = append(c.clears, row)
}

// Tick queues one consolidation step.
func (c *Commands) Tick() {
	c.ticks++
}

// Defer queues a function to run after all board changes are applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Pending reports the number of queued actions and ticks.
func (c *Commands) Pending() (actions, ticks int) {
	return len(c.actions), c.ticks
}

// Flush applies the buffer to b and resets it. Placements go first, then
// actions, explicit row clears and ticks, each in queue order; deferred
// functions run last. It returns every cleared row in the order it was
// cleared.
func (c *Commands) Flush(b *board.Board) []int {
	for _, p := range c.places {
		b.Place(p.row, p.col, p.cell)
	}

	for _, a := range c.actions {
		b.Action(a)
	}

	var cleared []int
	for _, row := range c.clears {
		b.RemoveAndShiftRow(row)
		cleared = append(cleared, row)
	}

	for i := 0; i < c.ticks; i++ {
		cleared = append(cleared, b.Tick()...)
	}

	for _, df := range c.defers {
		df.fn()
	}

	c.places = c.places[:0]
	c.actions = c.actions[:0]
	c.clears = c.clears[:0]
	c.ticks = 0
	c.defers = c.defers[:0]

	return cleared
}
