// Package debugui provides Dear ImGui panels for inspecting and poking a
// board while the game runs. Panels are engine systems: they queue board
// changes during Execute and defer their rendering until the frame's
// commands have been applied.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/internal/palette"
)

// ImguiItem holds a free-form Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Hosts check it before turning key presses into board actions.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates InputState and defers every item's render function.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState ImguiInputState
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *engine.UpdateFrame) {
	i.InputState.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range i.Items {
		frame.Commands.Defer(item.Render)
	}
}

func cellVec4(c board.Cell) imgui.Vec4 {
	r, g, b, a := palette.Float(c)
	return imgui.NewVec4(r, g, b, a)
}
