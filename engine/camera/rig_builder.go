package camera

import (
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"
)

// RigOption is a functional option for configuring a Rig.
type RigOption func(*rigImpl)

// WithSolver sets the placement solver.
//
// Parameters:
//   - solver: the placement solver to use
//
// Returns:
//   - RigOption: functional option to set the solver
func WithSolver(solver PlacementSolver) RigOption {
	return func(r *rigImpl) {
		r.solver = solver
	}
}

// WithTracker sets the focus tracker.
//
// Parameters:
//   - tracker: the focus tracker to update
//
// Returns:
//   - RigOption: functional option to set the tracker
func WithTracker(tracker FocusTracker) RigOption {
	return func(r *rigImpl) {
		r.tracker = tracker
	}
}

// WithLogger sets the rig logger.
//
// Parameters:
//   - logger: zerolog logger for rig diagnostics
//
// Returns:
//   - RigOption: functional option to set the logger
func WithLogger(logger zerolog.Logger) RigOption {
	return func(r *rigImpl) {
		r.logger = logger.With().Str("component", "camera_rig").Logger()
	}
}

// WithMeter sets the meter rig instruments are registered on.
//
// Parameters:
//   - m: the OpenTelemetry meter
//
// Returns:
//   - RigOption: functional option to set the meter
func WithMeter(m metric.Meter) RigOption {
	return func(r *rigImpl) {
		if m != nil {
			r.meter = m
		}
	}
}

// WithObserver registers a focus observer at construction.
//
// Parameters:
//   - obs: the observer to add
//
// Returns:
//   - RigOption: functional option to add an observer
func WithObserver(obs FocusObserver) RigOption {
	return func(r *rigImpl) {
		if obs != nil {
			r.observers = append(r.observers, obs)
		}
	}
}

// WithObserverWorkers sets how many pooled goroutines notify observers. Values < 1 are ignored.
//
// Parameters:
//   - n: number of observer workers
//
// Returns:
//   - RigOption: functional option to set the worker count
func WithObserverWorkers(n int) RigOption {
	return func(r *rigImpl) {
		if n >= 1 {
			r.observerWorkers = n
		}
	}
}
