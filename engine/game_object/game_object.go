package game_object

import (
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-rig/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

type gameObject struct {
	mu *sync.Mutex

	id        uint64
	name      string
	enabled   atomic.Bool
	transform camera.Transform

	// velocity is applied by Step; it lets simple scenes move follow targets without physics
	velocity mgl32.Vec3
}

// GameObject defines the interface for a scene entity with a world transform.
// Objects are what a camera follows: the scene copies a followed object's position into the
// orbit target every tick.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Name returns the object's display name.
	//
	// Returns:
	//   - string: the name, possibly empty
	Name() string

	// Enabled returns whether this object is enabled.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Transform returns a copy of the object's world transform.
	//
	// Returns:
	//   - camera.Transform: the current transform
	Transform() camera.Transform

	// Position returns the object's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// Velocity returns the per-second velocity applied by Step.
	//
	// Returns:
	//   - mgl32.Vec3: the velocity
	Velocity() mgl32.Vec3

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object is enabled.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetPosition moves the object to a world-space position.
	//
	// Parameters:
	//   - x, y, z: new position components
	SetPosition(x, y, z float32)

	// SetRotation replaces the object's orientation.
	//
	// Parameters:
	//   - q: the new rotation
	SetRotation(q mgl32.Quat)

	// SetVelocity sets the per-second velocity applied by Step.
	//
	// Parameters:
	//   - v: velocity in world units per second
	SetVelocity(v mgl32.Vec3)

	// Step advances the object's position by velocity * elapsed.
	//
	// Parameters:
	//   - elapsed: seconds since the previous step
	Step(elapsed float32)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new enabled GameObject at the origin with an identity transform.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the new object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		mu:        &sync.Mutex{},
		transform: camera.NewTransform(),
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.id
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Transform() camera.Transform {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.transform
}

func (g *gameObject) Position() mgl32.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.transform.Translation
}

func (g *gameObject) Velocity() mgl32.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.velocity
}

func (g *gameObject) SetID(id uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.transform.Translation = mgl32.Vec3{x, y, z}
}

func (g *gameObject) SetRotation(q mgl32.Quat) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.transform.Rotation = q
}

func (g *gameObject) SetVelocity(v mgl32.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.velocity = v
}

func (g *gameObject) Step(elapsed float32) {
	if !g.enabled.Load() {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.transform.Translation = g.transform.Translation.Add(g.velocity.Mul(elapsed))
}
