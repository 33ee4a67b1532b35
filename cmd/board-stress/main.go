package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/engine"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	width := flag.Int("width", 10, "Board width in cells.")
	height := flag.Int("height", 25, "Board height in cells.")
	density := flag.Float64("density", 0.6, "Fraction of cells occupied before the first tick.")
	drops := flag.Int("drops", 4, "Random cells placed per frame.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if *width < 1 || *height < 1 {
		log.Fatalf("invalid board size %dx%d", *width, *height)
	}

	log.WithFields(logrus.Fields{
		"width":   *width,
		"height":  *height,
		"density": *density,
		"seed":    *seed,
	}).Info("starting board stress test")

	r := rand.New(rand.NewPCG(*seed, *seed))
	b := board.New(*width, *height)
	fillRandom(b, *density, r)

	scheduler := engine.NewScheduler(b)
	scheduler.Register(&RandomFillSystem{Drops: *drops, Rand: r})
	scheduler.Register(&engine.TickSystem{})

	report := &Report{
		Duration:       *duration,
		Width:          *width,
		Height:         *height,
		Density:        *density,
		Drops:          *drops,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	report.MemStatsStart = readMemStats()

	log.Infof("running for %s", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	report.TotalUpdates = run(ctx, scheduler, &report.UpdateTime)
	report.UpdateTime.Finalize()
	report.MemStatsEnd = readMemStats()

	clears := scheduler.ClearLog()
	report.LinesCleared = clears.Total()
	report.ClearingSteps = clears.Steps()
	report.TotalTime = report.UpdateTime.Total

	fmt.Println("\n\n--- Board Stress Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// run executes frames until ctx is done and returns the number of frames.
func run(ctx context.Context, scheduler *engine.Scheduler, samples *Stats) int64 {
	var updates int64
	lastFrameTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return updates
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			scheduler.Once(deltaTime.Seconds())
			samples.Samples = append(samples.Samples, time.Since(updateStart))
			updates++
		}
	}
}

func readMemStats() runtime.MemStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m
}
