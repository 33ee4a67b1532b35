package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/blockfall/engine"
)

// PerformanceStats renders frame timing, per-system execution stats and the
// per-row line-clear histogram of a scheduler.
type PerformanceStats struct {
	Scheduler *engine.Scheduler
	Hidden    bool

	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewPerformanceStats(scheduler *engine.Scheduler, historyFrames int) *PerformanceStats {
	if historyFrames < 1 {
		historyFrames = 1
	}
	return &PerformanceStats{
		Scheduler:     scheduler,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

func (ps *PerformanceStats) Execute(frame *engine.UpdateFrame) {
	ps.record(frame.DeltaTime)

	if ps.Hidden {
		return
	}
	frame.Commands.Defer(ps.Render)
}

func (ps *PerformanceStats) record(dt float64) {
	ps.frameHistory[ps.frameIndex] = float32(dt * 1000.0)
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
}

// AvgFrameTime returns the mean frame time over the history window in milliseconds.
func (ps *PerformanceStats) AvgFrameTime() float32 {
	var avg float32
	for _, ft := range ps.frameHistory {
		avg += ft
	}
	return avg / float32(ps.historyFrames)
}

func (ps *PerformanceStats) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(380, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 520), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ps.Scheduler.GetStats()
	clears := ps.Scheduler.ClearLog()

	avgFrameTime := ps.AvgFrameTime()
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	imgui.Text(fmt.Sprintf("Lines Cleared: %d in %d steps", clears.Total(), clears.Steps()))

	imgui.Separator()
	if implot.BeginPlotV("Frame Time (ms)", imgui.NewVec2(-1, 150), 0) {
		implot.SetupAxesV("Frame", "ms", 0, implot.AxisFlagsAutoFit)
		implot.PlotLineFloatPtrInt("dt", &ps.frameHistory[0], int32(len(ps.frameHistory)))
		implot.EndPlot()
	}

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.Round(time.Microsecond).String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.Round(time.Microsecond).String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Clears Per Row") {
		height := ps.Scheduler.Board().Height()
		histogram := clears.Histogram(height)

		var maxCount float32
		for _, n := range histogram {
			maxCount = max(maxCount, n)
		}

		for row, n := range histogram {
			if n == 0 {
				continue
			}
			imgui.Text(fmt.Sprintf("row %2d: %3.0f", row, n))
			if maxCount > 0 {
				barWidth := n / maxCount * 120.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
				imgui.NewLine()
			}
		}

		if imgui.Button("Reset") {
			clears.Reset()
		}
		imgui.TreePop()
	}

	imgui.End()
}
