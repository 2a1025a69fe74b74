// Package heartbloom renders a looping particle animation that morphs a
// scattered cloud of points into a volumetric heart and back, on top of
// [Ebitengine].
//
// The package is split into a display-free core and a thin host:
//
//   - [Generate] builds a [Field]: per-particle origin (scattered), target
//     (heart volume) and base color, from an injected random source.
//   - [Engine] owns the clock. Each [Engine.Tick] derives a cyclic phase,
//     eases it into a transition, blends every particle between origin and
//     target, and applies jitter, color cycling, rotation, scale breathing
//     and background drift. [Engine.Snapshot] exposes the result.
//   - [Camera], [PointRenderer] and [Run] draw snapshots in a resizable
//     window with orbit, zoom and scroll-to-spin input.
//
// # Quick start
//
//	cfg, err := heartbloom.Load("")
//	// handle err
//	rng := rand.New(rand.NewPCG(42, 42))
//	field, err := heartbloom.Generate(cfg.Shape, rng)
//	// handle err
//	engine, err := heartbloom.NewEngine(field, cfg.Animation)
//	// handle err
//	cam := heartbloom.NewCamera(cfg.Camera, cfg.Window.Width, cfg.Window.Height)
//	err = heartbloom.Run(engine, cam, cfg.RunConfig())
//
// For a custom loop, call [Engine.Tick] once per frame and hand
// [Engine.Snapshot] to [PointRenderer.Draw] or any other renderer. The engine
// never schedules work of its own, so it can be ticked headless in tests.
//
// # Phase and transition
//
//	phase      = (sin(time * pi / CycleDuration) + 1) / 2
//	transition = ease(phase)          // phase^3 by default
//	position   = origin*(1-transition) + target*transition
//
// Easing functions come from [gween]; see [EasingNames].
//
// # Scripted runs
//
// [LoadScript] parses a JSON list of input steps that [Run] replays through
// RunConfig.Script in place of live input. Press P, or use a "screenshot"
// step, to save the current frame as a PNG.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package heartbloom
