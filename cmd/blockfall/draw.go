package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/internal/palette"
)

const borderSize = 1

// gridSize returns the pixel size of a board drawn with 1px borders between
// and around cells.
func gridSize(width, height, cellSize int) (int, int) {
	return width*(cellSize+borderSize) + borderSize, height*(cellSize+borderSize) + borderSize
}

// cellOrigin returns the top-left pixel of the cell at (row, col).
func cellOrigin(row, col, cellSize int) (float32, float32) {
	pitch := cellSize + borderSize
	return float32(col*pitch + borderSize), float32(row*pitch + borderSize)
}

func drawBoard(screen *ebiten.Image, b *board.Board, cellSize int) {
	w, h := gridSize(b.Width(), b.Height(), cellSize)
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), palette.Grid, false)

	size := float32(cellSize)
	cells := b.Cells()
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			x, y := cellOrigin(row, col, cellSize)
			vector.DrawFilledRect(screen, x, y, size, size, palette.Color(cells[b.Index(row, col)]), false)
		}

		if b.IsRowFull(row) {
			_, y := cellOrigin(row, 0, cellSize)
			vector.StrokeRect(screen, 0.5, y-0.5, float32(w)-1, size+1, 1, palette.FullRow, false)
		}
	}
}
