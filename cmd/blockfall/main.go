package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	configPath := flag.String("config", "", "Optional JSON config file.")
	width := flag.Int("width", 0, "Board width in cells (overrides config).")
	height := flag.Int("height", 0, "Board height in cells (overrides config).")
	cellSize := flag.Int("cell-size", 0, "Cell size in pixels (overrides config).")
	tickMs := flag.Int("tick", 0, "Milliseconds between consolidation steps (overrides config).")
	debug := flag.Bool("debug", false, "Enable debug logging.")
	inspector := flag.Bool("inspector", false, "Show the ImGui board inspector.")
	flag.Parse()

	config := DefaultConfig()
	if *configPath != "" {
		var err error
		if config, err = LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			config.Width = *width
		case "height":
			config.Height = *height
		case "cell-size":
			config.CellSize = *cellSize
		case "tick":
			config.TickIntervalMs = *tickMs
		case "debug":
			config.Debug = *debug
		case "inspector":
			config.Inspector = *inspector
		}
	})

	setupLogging(config)

	if err := config.Validate(); err != nil {
		log.Fatal("invalid config: ", err)
	}
	log.WithFields(config.Fields()).Debug("config")

	var imguiBackend *debugui_ebiten.ImguiBackend
	if config.Inspector {
		imguiBackend = debugui_ebiten.NewImguiBackend("blockfall", 1280, 720)
	} else {
		w, h := gridSize(config.Width, config.Height, config.CellSize)
		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowTitle("blockfall")
	}

	game := NewGame(config, imguiBackend)

	log.Infof("starting %dx%d board", config.Width, config.Height)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("game loop: ", err)
	}
	log.Info("bye")
}

func setupLogging(config Config) {
	logLevel := logrus.InfoLevel
	if config.Debug {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
}
