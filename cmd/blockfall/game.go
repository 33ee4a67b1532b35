package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/internal/palette"
	"github.com/sirupsen/logrus"
)

// Game implements ebiten.Game on top of an engine scheduler. Input, ticks
// and rendering all run on ebiten's update goroutine, so the board is never
// read while a tick is in progress.
type Game struct {
	config    Config
	board     *board.Board
	scheduler *engine.Scheduler
	actions   *engine.ActionQueue
	ticks     *engine.TickSystem

	imguiBackend *debugui_ebiten.ImguiBackend
	imguiSystem  *debugui.ImguiSystem

	keys []ebiten.Key
}

func NewGame(config Config, imguiBackend *debugui_ebiten.ImguiBackend) *Game {
	b := board.New(config.Width, config.Height)

	g := &Game{
		config:       config,
		board:        b,
		scheduler:    engine.NewScheduler(b),
		actions:      &engine.ActionQueue{},
		ticks:        &engine.TickSystem{Interval: config.TickInterval().Seconds()},
		imguiBackend: imguiBackend,
	}

	g.scheduler.Register(g.actions)
	g.scheduler.Register(g.ticks)

	if imguiBackend != nil {
		g.imguiSystem = &debugui.ImguiSystem{}
		g.scheduler.Register(g.imguiSystem)
		g.scheduler.Register(debugui.NewBoardInspector())
		g.scheduler.Register(debugui.NewPerformanceStats(g.scheduler, 120))
	}

	return g
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.imguiBackend != nil {
		g.imguiBackend.BeginFrame()
		defer g.imguiBackend.EndFrame()
	}

	if !g.keyboardCaptured() {
		if inpututil.IsKeyJustPressed(ebiten.KeyP) {
			g.ticks.Paused = !g.ticks.Paused
			log.WithField("paused", g.ticks.Paused).Info("toggled ticking")
		}

		g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
		for _, a := range actionsForKeys(g.keys) {
			log.WithField("action", a).Debug("input")
			g.actions.Push(a)
		}
	}

	cleared := g.scheduler.Once(1.0 / float64(ebiten.TPS()))
	if len(cleared) > 0 {
		log.WithFields(logrus.Fields{
			"rows":  cleared,
			"total": g.scheduler.ClearLog().Total(),
		}).Info("lines cleared")
	}

	return nil
}

func (g *Game) keyboardCaptured() bool {
	return g.imguiSystem != nil && g.imguiSystem.InputState.WantCaptureKeyboard
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(palette.Background)
	drawBoard(screen, g.board, g.config.CellSize)

	if g.imguiBackend != nil {
		g.imguiBackend.Overlay(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imguiBackend != nil {
		g.imguiBackend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return gridSize(g.config.Width, g.config.Height, g.config.CellSize)
}
