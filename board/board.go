// Package board holds the state of a falling-block puzzle grid: a fixed-size,
// row-major buffer of cells together with full-row detection and line clears.
//
// A Board has no internal synchronization. Callers that render from one
// goroutine and tick from another must serialize access themselves.
package board

import (
	"fmt"
	"strings"
)

// Board is a width x height grid of cells stored row-major, row 0 at the top.
type Board struct {
	width  int
	height int
	cells  []Cell
}

// New creates a board with every cell set to Empty.
// It panics if width or height is less than 1.
func New(width, height int) *Board {
	checkDimensions("New", width, height)

	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// FromCells creates a board from a row-major cell buffer. The buffer is
// copied, so later changes to cells do not affect the board.
// It panics if the dimensions are invalid, the buffer length is not
// width*height, or the buffer holds an undeclared cell value.
func FromCells(width, height int, cells []Cell) *Board {
	checkDimensions("FromCells", width, height)
	if len(cells) != width*height {
		panic(fmt.Sprintf("board.FromCells: got %d cells for a %dx%d board", len(cells), width, height))
	}
	for i, c := range cells {
		if !c.Valid() {
			panic(fmt.Sprintf("board.FromCells: invalid cell %d at index %d", uint8(c), i))
		}
	}

	b := &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, len(cells)),
	}
	copy(b.cells, cells)
	return b
}

func checkDimensions(op string, width, height int) {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("board.%s: invalid dimensions %dx%d", op, width, height))
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Cells returns the live row-major cell buffer. The slice aliases the
// board's storage and must not be modified; it reflects later ticks.
func (b *Board) Cells() []Cell {
	return b.cells
}

// Snapshot returns a copy of the row-major cell buffer.
func (b *Board) Snapshot() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Index returns the position of (row, col) in the row-major buffer.
// The arguments are not bounds-checked.
func (b *Board) Index(row, col int) int {
	return row*b.width + col
}

// Cell returns the cell at (row, col). It panics if either is out of range.
func (b *Board) Cell(row, col int) Cell {
	b.checkCell("Cell", row, col)
	return b.cells[b.Index(row, col)]
}

// Place sets the cell at (row, col).
// It panics if the position is out of range or c is not a declared value.
func (b *Board) Place(row, col int, c Cell) {
	b.checkCell("Place", row, col)
	if !c.Valid() {
		panic(fmt.Sprintf("board.Place: invalid cell %d", uint8(c)))
	}
	b.cells[b.Index(row, col)] = c
}

// IsRowFull reports whether every cell of row is occupied.
// It panics if row is out of range.
func (b *Board) IsRowFull(row int) bool {
	b.checkRow("IsRowFull", row)

	for _, c := range b.row(row) {
		if c == Empty {
			return false
		}
	}
	return true
}

// RemoveAndShiftRow clears row by moving every row above it down by one and
// emptying the top row. Rows below row are left untouched.
// It panics if row is out of range.
func (b *Board) RemoveAndShiftRow(row int) {
	b.checkRow("RemoveAndShiftRow", row)

	// Walk upwards so each source row is read before it is overwritten.
	for r := row; r >= 1; r-- {
		copy(b.row(r), b.row(r-1))
	}

	top := b.row(0)
	for i := range top {
		top[i] = Empty
	}
}

// Tick runs one consolidation step: it scans rows from top to bottom once
// and clears each full row as soon as it is found. It returns the cleared
// row indices in discovery order, or nil when no row was full.
//
// A row that only becomes full through a shift in the same pass is left
// for the next call.
func (b *Board) Tick() []int {
	var cleared []int
	for r := 0; r < b.height; r++ {
		if b.IsRowFull(r) {
			b.RemoveAndShiftRow(r)
			cleared = append(cleared, r)
		}
	}
	return cleared
}

// Action feeds a movement or rotation command into the board.
//
// The board does not track an active piece yet, so every command leaves the
// grid unchanged. It panics if a is not a declared Action.
func (b *Board) Action(a Action) {
	switch a {
	case MoveLeft, MoveRight, Rotate, MoveDown:
		// TODO: move the active piece once piece state and collision tests exist.
	default:
		panic(fmt.Sprintf("board.Action: invalid action %d", uint8(a)))
	}
}

// String renders the grid one row per line, '.' for empty cells and the
// piece letter otherwise.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.height * (b.width + 1))
	for r := 0; r < b.height; r++ {
		for _, c := range b.row(r) {
			sb.WriteByte(c.Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) row(row int) []Cell {
	return b.cells[b.Index(row, 0):b.Index(row, b.width)]
}

func (b *Board) checkRow(op string, row int) {
	if row < 0 || row >= b.height {
		panic(fmt.Sprintf("board.%s: row %d out of range [0, %d)", op, row, b.height))
	}
}

func (b *Board) checkCell(op string, row, col int) {
	b.checkRow(op, row)
	if col < 0 || col >= b.width {
		panic(fmt.Sprintf("board.%s: column %d out of range [0, %d)", op, col, b.width))
	}
}
