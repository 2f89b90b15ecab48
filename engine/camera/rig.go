package camera

import (
	"context"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// CameraContext is the host capability the rig needs: access to zero or one primary camera.
// Implementations return pointers the rig may write through for the duration of one Update.
type CameraContext interface {
	// PrimaryCamera returns the primary camera's transform and orbit state.
	//
	// Returns:
	//   - *Transform: the camera transform, written back by placement
	//   - *OrbitState: the camera's orbit parameters
	//   - bool: false if no primary camera exists this frame
	PrimaryCamera() (*Transform, *OrbitState, bool)
}

// FocusObserver is notified with the fresh focus snapshot after every placement.
// Observers run concurrently with each other and must treat the snapshot as read-only.
type FocusObserver interface {
	OnFocus(snapshot FocusSnapshot)
}

// FocusObserverFunc adapts a function to FocusObserver.
type FocusObserverFunc func(snapshot FocusSnapshot)

func (f FocusObserverFunc) OnFocus(snapshot FocusSnapshot) {
	f(snapshot)
}

type rigImpl struct {
	mu *sync.Mutex

	solver  PlacementSolver
	tracker FocusTracker
	logger  zerolog.Logger

	meter       metric.Meter
	instruments rigInstruments

	observers       []FocusObserver
	observerWorkers int
	observerPool    worker.DynamicWorkerPool
	hadPrimary      bool
}

// Rig runs the per-frame camera pipeline: placement of the primary camera followed by the
// focus snapshot update, then observer notification.
type Rig interface {
	// Update places the primary camera of ctx and refreshes the focus snapshot.
	// If ctx has no primary camera the call is a no-op and the snapshot keeps its last value.
	//
	// Parameters:
	//   - ctx: the host camera context
	//   - elapsed: seconds since the previous update
	//
	// Returns:
	//   - bool: true if a primary camera was placed
	Update(ctx CameraContext, elapsed float32) bool

	// Solver returns the placement solver.
	//
	// Returns:
	//   - PlacementSolver: the solver
	Solver() PlacementSolver

	// Focus returns the focus tracker other systems read from.
	//
	// Returns:
	//   - FocusTracker: the tracker
	Focus() FocusTracker

	// Place runs placement and the focus update without notifying observers. Hosts that hold
	// their own lock across placement call Place under it and Notify after releasing it, so
	// observers may read host state.
	//
	// Parameters:
	//   - ctx: the host camera context
	//   - elapsed: seconds since the previous update
	//
	// Returns:
	//   - FocusSnapshot: the snapshot published by this placement
	//   - bool: true if a primary camera was placed
	Place(ctx CameraContext, elapsed float32) (FocusSnapshot, bool)

	// Notify hands snapshot to every registered observer and waits for them to return.
	// The rig holds no lock while observers run.
	//
	// Parameters:
	//   - snapshot: the snapshot to deliver
	Notify(snapshot FocusSnapshot)

	// AddObserver registers an observer notified after each placement.
	//
	// Parameters:
	//   - obs: the observer to add (nil is ignored)
	AddObserver(obs FocusObserver)
}

var _ Rig = &rigImpl{}

// NewRig creates a Rig with a default solver and tracker.
//
// Parameters:
//   - options: functional options to configure the rig
//
// Returns:
//   - Rig: the new rig
func NewRig(options ...RigOption) Rig {
	r := &rigImpl{
		mu:              &sync.Mutex{},
		logger:          zerolog.Nop(),
		meter:           meter(),
		observerWorkers: 2,
	}
	for _, option := range options {
		option(r)
	}
	if r.solver == nil {
		r.solver = NewPlacementSolver()
	}
	if r.tracker == nil {
		r.tracker = NewFocusTracker()
	}

	inst, err := newRigInstruments(r.meter)
	if err != nil {
		r.logger.Warn().Err(err).Msg("camera rig metrics unavailable")
	}
	r.instruments = inst

	// Queue size of 64 covers typical observer counts with headroom.
	r.observerPool = worker.NewDynamicWorkerPool(r.observerWorkers, 64, 1*time.Second)
	return r
}

func (r *rigImpl) Solver() PlacementSolver {
	return r.solver
}

func (r *rigImpl) Focus() FocusTracker {
	return r.tracker
}

func (r *rigImpl) AddObserver(obs FocusObserver) {
	if obs == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, obs)
}

func (r *rigImpl) Update(ctx CameraContext, elapsed float32) bool {
	snapshot, placed := r.Place(ctx, elapsed)
	if placed {
		r.Notify(snapshot)
	}
	return placed
}

func (r *rigImpl) Place(ctx CameraContext, elapsed float32) (FocusSnapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bg := context.Background()

	var (
		transform *Transform
		orbit     *OrbitState
		ok        bool
	)
	if ctx != nil {
		transform, orbit, ok = ctx.PrimaryCamera()
	}
	if !ok || transform == nil || orbit == nil {
		r.instruments.missingPrimary.Add(bg, 1)
		if r.hadPrimary {
			r.logger.Debug().Msg("primary camera missing, focus snapshot left unchanged")
		}
		r.hadPrimary = false
		return FocusSnapshot{}, false
	}
	if !r.hadPrimary {
		r.logger.Debug().
			Str("mode", orbit.Mode.String()).
			Float32("fov", orbit.FovDegrees).
			Msg("primary camera acquired")
	}
	r.hadPrimary = true

	*transform = r.solver.Solve(*transform, orbit, elapsed)
	r.tracker.Update(*transform)

	r.instruments.updates.Add(bg, 1, metric.WithAttributes(attribute.String("mode", orbit.Mode.String())))
	r.instruments.blendFactor.Record(bg, float64(r.solver.BlendFactor(elapsed)))

	return r.tracker.Snapshot(), true
}

// Notify fans the snapshot out to observers on the worker pool and waits for all of them,
// so every observer has read this frame's snapshot before the next write.
func (r *rigImpl) Notify(snapshot FocusSnapshot) {
	r.mu.Lock()
	observers := make([]FocusObserver, len(r.observers))
	copy(observers, r.observers)
	r.mu.Unlock()

	if len(observers) == 0 {
		return
	}
	// A WaitGroup is the per-frame barrier; pool.Wait() blocks until workers idle-exit.
	var wg sync.WaitGroup
	for i, obs := range observers {
		wg.Add(1)
		o := obs
		r.observerPool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				o.OnFocus(snapshot)
				return nil, nil
			},
		})
	}
	wg.Wait()
}
