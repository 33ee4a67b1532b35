// Package palette maps board cells to display colors shared by the game
// renderer and the debug inspector.
package palette

import (
	"image/color"

	"github.com/plus3/blockfall/board"
)

var (
	Background = color.RGBA{16, 16, 24, 255}
	Grid       = color.RGBA{0, 0, 0, 255}
	FullRow    = color.RGBA{255, 255, 255, 60}
)

var cellColors = [...]color.RGBA{
	board.Empty:  {40, 40, 52, 255},
	board.IBlock: {102, 191, 255, 255},
	board.JBlock: {0, 121, 241, 255},
	board.LBlock: {255, 161, 0, 255},
	board.OBlock: {253, 249, 0, 255},
	board.SBlock: {0, 228, 48, 255},
	board.TBlock: {200, 122, 255, 255},
	board.ZBlock: {230, 41, 55, 255},
}

// Color returns the fill color for c. Undeclared cells render magenta.
func Color(c board.Cell) color.RGBA {
	if !c.Valid() {
		return color.RGBA{255, 0, 255, 255}
	}
	return cellColors[c]
}

// Float returns Color(c) as normalized RGBA components.
func Float(c board.Cell) (r, g, b, a float32) {
	rgba := Color(c)
	return float32(rgba.R) / 255, float32(rgba.G) / 255, float32(rgba.B) / 255, float32(rgba.A) / 255
}
