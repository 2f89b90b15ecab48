package scene

import (
	"github.com/Carmen-Shannon/oxy-rig/engine/camera"
	"github.com/Carmen-Shannon/oxy-rig/engine/game_object"
	"github.com/rs/zerolog"
)

// SceneBuilderOption is a functional option for configuring a Scene.
type SceneBuilderOption func(*scene)

// WithActive sets whether the scene is updated by the engine.
//
// Parameters:
//   - active: true to update the scene each tick
//
// Returns:
//   - SceneBuilderOption: functional option to set the active state
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithObjects adds game objects to the scene at construction.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: functional option to add objects
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range objects {
			if obj != nil {
				s.add(obj)
			}
		}
	}
}

// WithCamera attaches the primary camera and its orbit state.
//
// Parameters:
//   - cam: the camera entity
//   - orbit: its orbit parameters (nil uses defaults)
//
// Returns:
//   - SceneBuilderOption: functional option to set the camera
func WithCamera(cam camera.Camera, orbit *camera.OrbitState) SceneBuilderOption {
	return func(s *scene) {
		s.attachCamera(cam, orbit)
	}
}

// WithRig replaces the scene's camera rig, for example to share solver tuning or observers.
//
// Parameters:
//   - rig: the rig to use
//
// Returns:
//   - SceneBuilderOption: functional option to set the rig
func WithRig(rig camera.Rig) SceneBuilderOption {
	return func(s *scene) {
		s.rig = rig
	}
}

// WithFollowHeight sets how far above the followed object's position the orbit target sits.
//
// Parameters:
//   - height: vertical offset in world units
//
// Returns:
//   - SceneBuilderOption: functional option to set the follow height
func WithFollowHeight(height float32) SceneBuilderOption {
	return func(s *scene) {
		s.followHeight = height
	}
}

// WithLogger sets the scene logger. It is also handed to the default rig.
func WithLogger(logger zerolog.Logger) SceneBuilderOption {
	return func(s *scene) {
		s.logger = logger.With().Str("component", "scene").Logger()
	}
}
