package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/engine"
)

// RandomFillSystem drops Drops random pieces onto empty cells every frame.
// Cells are drawn from the frame's board, so a drop may be lost when two
// picks land on the same slot in one frame.
type RandomFillSystem struct {
	Drops int
	Rand  *rand.Rand
}

func (s *RandomFillSystem) Execute(frame *engine.UpdateFrame) {
	b := frame.Board
	pieces := board.Pieces()

	for i := 0; i < s.Drops; i++ {
		row := s.Rand.IntN(b.Height())
		col := s.Rand.IntN(b.Width())
		if b.Cell(row, col) != board.Empty {
			continue
		}
		frame.Commands.Place(row, col, pieces[s.Rand.IntN(len(pieces))])
	}
}

// fillRandom seeds b so that roughly density of its cells are occupied.
func fillRandom(b *board.Board, density float64, r *rand.Rand) {
	pieces := board.Pieces()
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			if r.Float64() < density {
				b.Place(row, col, pieces[r.IntN(len(pieces))])
			}
		}
	}
}
