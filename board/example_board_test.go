package board_test

import (
	"fmt"

	"github.com/plus3/blockfall/board"
)

// ExampleBoard_Tick shows a line clear: the completed bottom row is removed
// and everything above it drops by one.
func ExampleBoard_Tick() {
	b := board.New(4, 3)

	b.Place(0, 1, board.TBlock)
	b.Place(1, 0, board.JBlock)
	for col := 0; col < b.Width(); col++ {
		b.Place(2, col, board.IBlock)
	}

	fmt.Print(b)
	fmt.Println("cleared:", b.Tick())
	fmt.Print(b)

	// Output:
	// .T..
	// J...
	// IIII
	// cleared: [2]
	// ....
	// .T..
	// J...
}

// ExampleBoard_IsRowFull checks rows of a board built from a row-major buffer.
func ExampleBoard_IsRowFull() {
	b := board.FromCells(3, 2, []board.Cell{
		board.SBlock, board.ZBlock, board.OBlock,
		board.LBlock, board.Empty, board.LBlock,
	})

	for row := 0; row < b.Height(); row++ {
		fmt.Printf("row %d full: %v\n", row, b.IsRowFull(row))
	}

	// Output:
	// row 0 full: true
	// row 1 full: false
}
