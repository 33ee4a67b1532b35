package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/engine"
)

type cellPos struct {
	row, col int
}

// BoardInspector shows the grid cell by cell, marks full rows and lets the
// user paint cells, clear rows, tick and send actions. Requests made through
// the UI are queued on the next frame.
type BoardInspector struct {
	Hidden bool

	brush   board.Cell
	places  []cellPos
	clears  []int
	actions []board.Action
	ticks   int
}

func NewBoardInspector() *BoardInspector {
	return &BoardInspector{brush: board.IBlock}
}

// Brush returns the cell value painted by clicks.
func (bi *BoardInspector) Brush() board.Cell {
	return bi.brush
}

// SetBrush selects the cell value painted by clicks. Undeclared values are ignored.
func (bi *BoardInspector) SetBrush(c board.Cell) {
	if c.Valid() {
		bi.brush = c
	}
}

// RequestPlace paints (row, col) with the current brush on the next frame.
func (bi *BoardInspector) RequestPlace(row, col int) {
	bi.places = append(bi.places, cellPos{row: row, col: col})
}

// RequestClearRow removes row on the next frame.
func (bi *BoardInspector) RequestClearRow(row int) {
	bi.clears = append(bi.clears, row)
}

// RequestAction sends a to the board on the next frame.
func (bi *BoardInspector) RequestAction(a board.Action) {
	bi.actions = append(bi.actions, a)
}

// RequestTick runs one consolidation step on the next frame.
func (bi *BoardInspector) RequestTick() {
	bi.ticks++
}

func (bi *BoardInspector) Execute(frame *engine.UpdateFrame) {
	bi.queue(frame.Commands)

	if bi.Hidden {
		return
	}
	b := frame.Board
	frame.Commands.Defer(func() { bi.Render(b) })
}

func (bi *BoardInspector) queue(cmds *engine.Commands) {
	for _, p := range bi.places {
		cmds.Place(p.row, p.col, bi.brush)
	}
	for _, a := range bi.actions {
		cmds.Act(a)
	}
	for _, row := range bi.clears {
		cmds.ClearRow(row)
	}
	for i := 0; i < bi.ticks; i++ {
		cmds.Tick()
	}

	bi.places = bi.places[:0]
	bi.actions = bi.actions[:0]
	bi.clears = bi.clears[:0]
	bi.ticks = 0
}

// Render draws the inspector window for b.
func (bi *BoardInspector) Render(b *board.Board) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 640), imgui.CondOnce)

	if !imgui.BeginV("Board Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Size: %d x %d", b.Width(), b.Height()))

	if imgui.Button("Tick") {
		bi.RequestTick()
	}
	for _, a := range []board.Action{board.MoveLeft, board.MoveRight, board.Rotate, board.MoveDown} {
		imgui.SameLine()
		if imgui.Button(a.String()) {
			bi.RequestAction(a)
		}
	}

	imgui.Separator()
	bi.renderBrushes()
	imgui.Separator()
	bi.renderGrid(b)

	imgui.End()
}

func (bi *BoardInspector) renderBrushes() {
	imgui.Text("Brush:")
	for c := board.Empty; c <= board.ZBlock; c++ {
		imgui.SameLine()
		label := string(c.Letter())
		if c == bi.brush {
			label = "[" + label + "]"
		}
		imgui.PushStyleColorVec4(imgui.ColButton, cellVec4(c))
		if imgui.Button(fmt.Sprintf("%s##brush%d", label, c)) {
			bi.SetBrush(c)
		}
		imgui.PopStyleColor()
	}
}

func (bi *BoardInspector) renderGrid(b *board.Board) {
	cells := b.Cells()
	for row := 0; row < b.Height(); row++ {
		full := b.IsRowFull(row)
		for col := 0; col < b.Width(); col++ {
			if col > 0 {
				imgui.SameLine()
			}
			c := cells[b.Index(row, col)]
			imgui.PushStyleColorVec4(imgui.ColButton, cellVec4(c))
			if imgui.Button(fmt.Sprintf("%c##r%dc%d", c.Letter(), row, col)) {
				bi.RequestPlace(row, col)
			}
			imgui.PopStyleColor()
		}

		imgui.SameLine()
		if imgui.Button(fmt.Sprintf("x##clear%d", row)) {
			bi.RequestClearRow(row)
		}
		if full {
			imgui.SameLine()
			imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "FULL")
		}
	}
}
