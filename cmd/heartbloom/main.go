// Command heartbloom runs the heart particle animation in a window, or
// headless for a fixed number of ticks with optional CSV output.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/phanxgames/heartbloom"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = config seed, then time-based)")
	headless := flag.Bool("headless", false, "Tick without opening a window")
	maxTicks := flag.Int("max-ticks", 0, "Headless: stop after N ticks (0 = one full cycle)")
	dumpPath := flag.String("dump", "", "Write the final snapshot to this CSV file")
	world := flag.Bool("world", false, "Apply the field transform to dumped positions")
	logEvery := flag.Int("log-every", 200, "Headless: log state every N ticks (0 = never)")
	scriptPath := flag.String("script", "", "JSON input script to drive the window (see heartbloom.Script)")
	debug := flag.Bool("debug", false, "Enable debug logging and frame timing")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var logger *slog.Logger
	if *headless {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, opts))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	slog.SetDefault(logger)

	cfg, err := heartbloom.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = cfg.Seed
	}
	if rngSeed == 0 {
		rngSeed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(rngSeed, rngSeed^0x9e3779b97f4a7c15))

	start := time.Now()
	field, err := heartbloom.Generate(cfg.Shape, rng)
	if err != nil {
		slog.Error("failed to generate particles", "error", err)
		os.Exit(1)
	}
	engine, err := heartbloom.NewEngine(field, cfg.Animation)
	if err != nil {
		slog.Error("failed to start engine", "error", err)
		os.Exit(1)
	}
	slog.Info("particles generated",
		"seed", rngSeed,
		"heart", field.HeartCount,
		"flow", field.FlowCount,
		"color_mode", cfg.Shape.ColorMode.String(),
		"elapsed", time.Since(start).Round(time.Microsecond),
	)

	if *headless {
		ticks := *maxTicks
		if ticks <= 0 {
			ticks = int(2 * cfg.Animation.CycleDuration / cfg.Animation.TickDelta)
		}
		if err := runHeadless(engine, cfg, ticks, *logEvery, *dumpPath, *world); err != nil {
			slog.Error("headless run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	cam := heartbloom.NewCamera(cfg.Camera, cfg.Window.Width, cfg.Window.Height)
	runCfg := cfg.RunConfig()
	runCfg.Logger = logger
	runCfg.Debug = *debug
	if *scriptPath != "" {
		script, err := heartbloom.LoadScriptFile(*scriptPath)
		if err != nil {
			slog.Error("failed to load script", "error", err)
			os.Exit(1)
		}
		runCfg.Script = script
	}
	if err := heartbloom.Run(engine, cam, runCfg); err != nil {
		slog.Error("animation stopped", "error", err)
		os.Exit(1)
	}
}

// runHeadless ticks the engine without a display and optionally dumps the
// final frame.
func runHeadless(engine *heartbloom.Engine, cfg *heartbloom.Config, ticks, logEvery int, dumpPath string, world bool) error {
	start := time.Now()
	for i := 1; i <= ticks; i++ {
		engine.Tick(cfg.Animation.TickDelta)
		if logEvery > 0 && i%logEvery == 0 {
			snap := engine.Snapshot()
			slog.Info("tick",
				"tick", i,
				"time", snap.Time,
				"phase", snap.Phase,
				"transition", snap.Transition,
				"rotation_y", snap.Transform.RotationY,
				"scale", snap.Transform.Scale,
			)
		}
	}
	elapsed := time.Since(start)
	slog.Info("max ticks reached",
		"ticks", ticks,
		"elapsed", elapsed.Round(time.Microsecond),
		"per_tick", (elapsed / time.Duration(max(ticks, 1))).Round(time.Microsecond),
	)

	if dumpPath == "" {
		return nil
	}
	f, err := os.Create(dumpPath)
	if err != nil {
		return fmt.Errorf("creating dump file: %w", err)
	}
	defer f.Close()
	if err := heartbloom.WriteSnapshotCSV(f, engine.Snapshot(), engine.Field().HeartCount, world); err != nil {
		return err
	}
	slog.Info("snapshot written", "path", dumpPath, "points", engine.Len())
	return nil
}
