// Command rigdemo runs the camera rig without a window. Build it with -tags headless to skip
// linking GLFW and its cgo dependencies.
package main

import (
	"fmt"
	"math"
	"os"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine"
	"github.com/Carmen-Shannon/oxy-rig/engine/camera"
	"github.com/Carmen-Shannon/oxy-rig/engine/config"
	"github.com/Carmen-Shannon/oxy-rig/engine/game_object"
	"github.com/Carmen-Shannon/oxy-rig/engine/logging"
	"github.com/Carmen-Shannon/oxy-rig/engine/scene"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

// rigdemo runs the camera rig headless: a target circles the origin, the camera follows it while
// scripted input orbits around it, and the focus snapshot is logged as it changes.
func main() {
	configPath := pflag.StringP("config", "c", "", "rig config file (yaml, json or toml)")
	duration := pflag.DurationP("duration", "d", 5*time.Second, "how long to run")
	logLevel := pflag.StringP("log-level", "l", "", "log level override (trace, debug, info, warn, error)")
	orbitRate := pflag.Float32("orbit-rate", 1, "scripted yaw steps per tick")
	watch := pflag.BoolP("watch", "w", false, "reload the config file when it changes")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := logging.Setup(common.Coalesce(*logLevel, cfg.LogLevel))

	orbit := camera.NewOrbitState(cfg.OrbitOptions()...)
	ctrl := camera.NewCameraController(cfg.ControllerOptions()...)
	cam := camera.NewCamera(camera.WithController(ctrl), camera.WithAspect(16.0/9.0))

	focusLog := logging.Sampled(logger)
	rig := camera.NewRig(
		camera.WithSolver(camera.NewPlacementSolver(cfg.SolverOptions()...)),
		camera.WithTracker(camera.NewFocusTracker(cfg.TrackerOptions()...)),
		camera.WithLogger(logger),
		camera.WithObserver(camera.FocusObserverFunc(func(s camera.FocusSnapshot) {
			focusLog.Debug().
				Floats32("origin", s.Origin[:]).
				Floats32("forward", s.Forward[:]).
				Floats32("right", s.Right[:]).
				Msg("focus")
		})),
	)

	target := game_object.NewGameObject(game_object.WithName("target"), game_object.WithPosition(8, 0, 0))
	sc := scene.NewScene("rigdemo",
		scene.WithActive(true),
		scene.WithRig(rig),
		scene.WithCamera(cam, orbit),
		scene.WithObjects(target),
		scene.WithFollowHeight(cfg.FollowHeight),
		scene.WithLogger(logger),
	)
	if err := sc.Follow(target.ID()); err != nil {
		logger.Fatal().Err(err).Msg("follow target")
	}

	var reloaded atomic.Pointer[config.RigConfig]
	if *watch && *configPath != "" {
		loader := config.NewLoader(*configPath, logger)
		if _, err := loader.Load(); err != nil {
			logger.Fatal().Err(err).Msg("load config for watching")
		}
		if err := loader.Watch(func(next config.RigConfig) { reloaded.Store(&next) }); err != nil {
			logger.Fatal().Err(err).Msg("watch config")
		}
	}

	var clock float32
	eng := engine.NewEngine(
		engine.WithTickRate(float64(cfg.TickRate)),
		engine.WithLogger(logger),
		engine.WithProfiling(logger.GetLevel() <= zerolog.DebugLevel),
		engine.WithScene(0, sc),
	)
	eng.SetTickCallback(func(dt float32) {
		clock += dt
		// the target moves a quarter turn every 4 seconds
		angle := float64(clock) * math.Pi / 8
		target.SetPosition(float32(8*math.Cos(angle)), 0, float32(8*math.Sin(angle)))

		for i := float32(0); i < *orbitRate; i++ {
			ctrl.OrbitRight()
		}

		if next := reloaded.Swap(nil); next != nil {
			applyReload(sc.Orbit(), *next)
			eng.SetTickRate(float64(next.TickRate))
			logger.Info().Str("mode", next.Orbit.Mode).Msg("applied reloaded config")
		}
	})

	time.AfterFunc(*duration, eng.Quit)
	logger.Info().Dur("duration", *duration).Str("mode", orbit.Mode.String()).Msg("starting rig demo")
	eng.Run()

	snap := sc.Focus().Snapshot()
	flat := sc.Focus().ForwardFlat()
	logger.Info().
		Floats32("origin", snap.Origin[:]).
		Floats32("forward", snap.Forward[:]).
		Floats32("forwardFlat", flat[:]).
		Msg("final focus")
}

// applyReload copies the tunable parts of a reloaded config into the live orbit state.
// Angles and target stay where input and following left them.
func applyReload(orbit *camera.OrbitState, cfg config.RigConfig) {
	if orbit == nil {
		return
	}
	next := camera.NewOrbitState(cfg.OrbitOptions()...)
	orbit.Mode = next.Mode
	orbit.Offset = next.Offset
	orbit.FovDegrees = next.FovDegrees
	orbit.Limits = next.Limits
}
