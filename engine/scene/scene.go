package scene

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/camera"
	"github.com/Carmen-Shannon/oxy-rig/engine/game_object"
	"github.com/rs/zerolog"
)

// ErrObjectNotFound is returned when an operation names an object the scene does not hold.
var ErrObjectNotFound = errors.New("scene: object not found")

// Scene groups game objects with the scene's primary camera and runs the per-tick camera pipeline.
// A scene has zero or one primary camera; it implements camera.CameraContext for the rig.
type Scene interface {
	camera.CameraContext

	// Name returns the scene's name.
	Name() string

	// SetName sets the scene's name.
	SetName(name string)

	// Active returns whether the scene is updated by the engine.
	Active() bool

	// SetActive sets whether the scene is updated by the engine.
	SetActive(active bool)

	// Camera returns the primary camera, or nil if none is attached.
	//
	// Returns:
	//   - camera.Camera: the primary camera or nil
	Camera() camera.Camera

	// Orbit returns the primary camera's orbit state, or nil if no camera is attached.
	// The returned state belongs to the tick goroutine; input code should go through the
	// camera's controller instead of mutating it directly.
	//
	// Returns:
	//   - *camera.OrbitState: the orbit state or nil
	Orbit() *camera.OrbitState

	// SetCamera attaches the primary camera and its orbit state, replacing any previous camera.
	// The camera's current transform becomes the starting point for placement.
	//
	// Parameters:
	//   - cam: the camera entity
	//   - orbit: its orbit parameters (nil uses camera.NewOrbitState())
	SetCamera(cam camera.Camera, orbit *camera.OrbitState)

	// RemoveCamera detaches the primary camera. Subsequent updates skip placement and the
	// focus snapshot keeps its last value.
	RemoveCamera()

	// Rig returns the camera rig that places the primary camera.
	//
	// Returns:
	//   - camera.Rig: the rig
	Rig() camera.Rig

	// Focus returns the focus tracker fed by this scene's rig.
	//
	// Returns:
	//   - camera.FocusTracker: the tracker
	Focus() camera.FocusTracker

	// Count returns the number of game objects in the scene.
	//
	// Returns:
	//   - int: the object count
	Count() int

	// Add registers a game object and returns its ID. Objects without an ID are assigned one.
	//
	// Parameters:
	//   - obj: the object to add
	//
	// Returns:
	//   - uint64: the object's ID
	Add(obj game_object.GameObject) uint64

	// Get returns the object with the given ID, or nil.
	//
	// Parameters:
	//   - id: the object ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Remove deletes an object. Removing the followed object stops following.
	//
	// Parameters:
	//   - id: the object ID
	Remove(id uint64)

	// Clear removes every object and stops following.
	Clear()

	// Follow makes the orbit target track the object's position, raised by the follow height.
	//
	// Parameters:
	//   - id: the object to follow
	//
	// Returns:
	//   - error: ErrObjectNotFound if the scene has no such object
	Follow(id uint64) error

	// Unfollow stops tracking; the orbit target keeps its last value.
	Unfollow()

	// Following returns the followed object ID and whether following is active.
	//
	// Returns:
	//   - uint64: the followed object ID
	//   - bool: true if following
	Following() (uint64, bool)

	// Update runs one tick: steps objects, drains camera input, refreshes the follow target,
	// places the camera, and publishes the focus snapshot.
	//
	// Parameters:
	//   - elapsed: seconds since the previous tick
	Update(elapsed float32)
}

type scene struct {
	mu *sync.Mutex

	name   string
	active bool

	objects map[uint64]game_object.GameObject
	nextID  uint64

	cam       camera.Camera
	orbit     *camera.OrbitState
	transform camera.Transform
	rig       camera.Rig

	followID     uint64
	following    bool
	followHeight float32

	logger zerolog.Logger
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates an empty, inactive scene with its own camera rig.
//
// Parameters:
//   - name: the scene name
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the new scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:        &sync.Mutex{},
		name:      name,
		objects:   make(map[uint64]game_object.GameObject),
		transform: camera.NewTransform(),
		logger:    zerolog.Nop(),
	}
	for _, option := range options {
		option(s)
	}
	if s.rig == nil {
		s.rig = camera.NewRig(camera.WithLogger(s.logger))
	}
	return s
}

func (s *scene) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cam
}

func (s *scene) Orbit() *camera.OrbitState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orbit
}

func (s *scene) SetCamera(cam camera.Camera, orbit *camera.OrbitState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attachCamera(cam, orbit)
}

// attachCamera stores the camera entity. Caller must hold the mutex.
func (s *scene) attachCamera(cam camera.Camera, orbit *camera.OrbitState) {
	if cam == nil {
		s.cam, s.orbit = nil, nil
		return
	}
	if orbit == nil {
		orbit = camera.NewOrbitState()
	}
	s.cam = cam
	s.orbit = orbit
	s.transform = cam.Transform()
	cam.SetFovDegrees(orbit.FovDegrees)
}

func (s *scene) RemoveCamera() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam, s.orbit = nil, nil
}

func (s *scene) Rig() camera.Rig {
	return s.rig
}

func (s *scene) Focus() camera.FocusTracker {
	return s.rig.Focus()
}

func (s *scene) PrimaryCamera() (*camera.Transform, *camera.OrbitState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.primaryCamera()
}

// primaryCamera is PrimaryCamera without locking. Caller must hold the mutex.
func (s *scene) primaryCamera() (*camera.Transform, *camera.OrbitState, bool) {
	if s.cam == nil || s.orbit == nil {
		return nil, nil, false
	}
	return &s.transform, s.orbit, true
}

func (s *scene) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	if obj == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(obj)
}

// add registers obj, assigning an ID when it has none. Caller must hold the mutex.
func (s *scene) add(obj game_object.GameObject) uint64 {
	id := obj.ID()
	if id == 0 {
		s.nextID++
		for s.objects[s.nextID] != nil {
			s.nextID++
		}
		id = s.nextID
		obj.SetID(id)
	} else if id > s.nextID {
		s.nextID = id
	}
	s.objects[id] = obj
	return id
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.objects[id]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, id)
	if s.following && s.followID == id {
		s.following = false
	}
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = make(map[uint64]game_object.GameObject)
	s.following = false
}

func (s *scene) Follow(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[id]; !ok {
		return fmt.Errorf("follow %d: %w", id, ErrObjectNotFound)
	}
	s.followID = id
	s.following = true
	return nil
}

func (s *scene) Unfollow() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.following = false
}

func (s *scene) Following() (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.followID, s.following
}

func (s *scene) Update(elapsed float32) {
	snapshot, placed := s.place(elapsed)
	if placed {
		s.rig.Notify(snapshot)
	}
}

// place steps the objects and runs camera placement under the scene mutex. Observers are
// notified by Update after the mutex is released so they can read the scene.
func (s *scene) place(elapsed float32) (camera.FocusSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]uint64, 0, len(s.objects))
	for id := range s.objects {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		s.objects[id].Step(elapsed)
	}

	if s.cam == nil || s.orbit == nil {
		return s.rig.Place(lockedContext{s}, elapsed)
	}

	if ctrl := s.cam.Controller(); ctrl != nil {
		ctrl.Apply(s.orbit)
	}

	if s.following {
		if obj, ok := s.objects[s.followID]; ok {
			s.orbit.Target = obj.Position().Add(common.WorldUp.Mul(s.followHeight))
		} else {
			s.logger.Warn().Uint64("object", s.followID).Msg("followed object missing, keeping last target")
			s.following = false
		}
	}

	snapshot, placed := s.rig.Place(lockedContext{s}, elapsed)
	if placed {
		s.cam.SetFovDegrees(s.orbit.FovDegrees)
		s.cam.SetTransform(s.transform)
	}
	return snapshot, placed
}

// lockedContext exposes the scene's primary camera to the rig while place already holds the mutex.
type lockedContext struct {
	s *scene
}

func (c lockedContext) PrimaryCamera() (*camera.Transform, *camera.OrbitState, bool) {
	return c.s.primaryCamera()
}
