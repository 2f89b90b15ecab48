package scene

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-rig/engine/camera"
	"github.com/Carmen-Shannon/oxy-rig/engine/game_object"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func testRig() camera.Rig {
	return camera.NewRig(camera.WithMeter(noop.NewMeterProvider().Meter("test")))
}

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, want[i], got[i], 1e-5, "component %d of %v", i, got)
	}
}

func TestNewScene_Defaults(t *testing.T) {
	s := NewScene("empty", WithRig(testRig()))

	assert.Equal(t, "empty", s.Name())
	assert.False(t, s.Active())
	assert.Nil(t, s.Camera())
	assert.Nil(t, s.Orbit())
	assert.Equal(t, 0, s.Count())

	_, _, ok := s.PrimaryCamera()
	assert.False(t, ok)

	assert.NotPanics(t, func() { s.Update(1.0 / 60) })
	assert.Equal(t, camera.FocusSnapshot{}, s.Focus().Snapshot())
}

func TestScene_NameAndActive(t *testing.T) {
	s := NewScene("a", WithActive(true))
	assert.True(t, s.Active())
	s.SetActive(false)
	s.SetName("b")
	assert.False(t, s.Active())
	assert.Equal(t, "b", s.Name())
}

func TestScene_ObjectRegistry(t *testing.T) {
	a := game_object.NewGameObject(game_object.WithName("a"))
	b := game_object.NewGameObject(game_object.WithName("b"))
	fixed := game_object.NewGameObject(game_object.WithID(10))

	s := NewScene("objects", WithObjects(a, nil, b))
	assert.Equal(t, uint64(1), a.ID())
	assert.Equal(t, uint64(2), b.ID())

	assert.Equal(t, uint64(10), s.Add(fixed))
	assert.Equal(t, uint64(0), s.Add(nil))
	c := game_object.NewGameObject()
	assert.Equal(t, uint64(11), s.Add(c))
	assert.Equal(t, 4, s.Count())
	assert.Same(t, b, s.Get(2))

	s.Remove(2)
	assert.Nil(t, s.Get(2))
	assert.Equal(t, 3, s.Count())

	s.Clear()
	assert.Equal(t, 0, s.Count())
}

func TestScene_FollowUnknownObject(t *testing.T) {
	s := NewScene("follow")
	err := s.Follow(99)
	assert.ErrorIs(t, err, ErrObjectNotFound)
	_, following := s.Following()
	assert.False(t, following)
}

func TestScene_UpdatePlacesCameraOnFollowedObject(t *testing.T) {
	cam := camera.NewCamera()
	target := game_object.NewGameObject(game_object.WithPosition(3, 0, 4))
	s := NewScene("follow",
		WithRig(testRig()),
		WithCamera(cam, nil),
		WithObjects(target),
		WithFollowHeight(1),
	)
	require.NoError(t, s.Follow(target.ID()))

	s.Update(1)

	assertVec3(t, mgl32.Vec3{3, 1, 4}, s.Orbit().Target)
	assertVec3(t, mgl32.Vec3{3, 1.5, 10}, cam.Transform().Translation)
	assert.Equal(t, cam.Transform().Translation, s.Focus().Origin())

	transform, orbit, ok := s.PrimaryCamera()
	require.True(t, ok)
	assert.Equal(t, cam.Transform(), *transform)
	assert.Same(t, s.Orbit(), orbit)
}

func TestScene_UpdateTracksMovingTarget(t *testing.T) {
	target := game_object.NewGameObject(game_object.WithVelocity(1, 0, 0))
	s := NewScene("moving",
		WithRig(testRig()),
		WithCamera(camera.NewCamera(), nil),
		WithObjects(target),
	)
	require.NoError(t, s.Follow(target.ID()))

	s.Update(1)
	s.Update(1)

	assertVec3(t, mgl32.Vec3{2, 0, 0}, target.Position())
	assertVec3(t, mgl32.Vec3{2, 0, 0}, s.Orbit().Target)
	assertVec3(t, mgl32.Vec3{2, 0.5, 6}, s.Camera().Transform().Translation)
}

func TestScene_UpdateDrainsController(t *testing.T) {
	ctrl := camera.NewCameraController()
	cam := camera.NewCamera(camera.WithController(ctrl))
	orbit := camera.NewOrbitState(camera.WithFovDegrees(60))
	s := NewScene("input", WithRig(testRig()), WithCamera(cam, orbit))

	ctrl.OrbitRight()
	s.Update(1.0 / 60)

	assert.InDelta(t, 3, orbit.YAngle, 1e-5)
	_, yaw, _ := ctrl.Pending()
	assert.Zero(t, yaw)
	assert.InDelta(t, mgl32.DegToRad(60), cam.Fov(), 1e-6)
}

func TestScene_RemoveCameraKeepsLastFocus(t *testing.T) {
	cam := camera.NewCamera()
	s := NewScene("remove", WithRig(testRig()), WithCamera(cam, nil))
	s.Update(1)
	before := s.Focus().Snapshot()
	placed := cam.Transform()

	s.RemoveCamera()
	_, _, ok := s.PrimaryCamera()
	assert.False(t, ok)
	assert.Nil(t, s.Camera())

	s.Update(1)
	assert.Equal(t, before, s.Focus().Snapshot())
	assert.Equal(t, placed, cam.Transform())
}

func TestScene_RemovingFollowedObjectStopsFollowing(t *testing.T) {
	target := game_object.NewGameObject(game_object.WithPosition(5, 0, 0))
	s := NewScene("unfollow", WithRig(testRig()), WithCamera(camera.NewCamera(), nil), WithObjects(target))
	require.NoError(t, s.Follow(target.ID()))
	s.Update(1)

	s.Remove(target.ID())
	_, following := s.Following()
	assert.False(t, following)

	s.Update(1)
	assertVec3(t, mgl32.Vec3{5, 0, 0}, s.Orbit().Target)
}

func TestScene_Unfollow(t *testing.T) {
	target := game_object.NewGameObject()
	s := NewScene("unfollow", WithObjects(target))
	require.NoError(t, s.Follow(target.ID()))
	id, following := s.Following()
	assert.True(t, following)
	assert.Equal(t, target.ID(), id)

	s.Unfollow()
	_, following = s.Following()
	assert.False(t, following)
}

func TestScene_SetCameraStartsFromCameraTransform(t *testing.T) {
	start := camera.TransformFromTranslation(mgl32.Vec3{0, 10, 0})
	cam := camera.NewCamera(camera.WithTransform(start))
	s := NewScene("start", WithRig(testRig()))
	s.SetCamera(cam, camera.NewOrbitState())

	s.Update(0)
	assert.Equal(t, start, cam.Transform())
	assert.Equal(t, start.Translation, s.Focus().Origin())
}

func TestScene_ObserverCanReadScene(t *testing.T) {
	var sc Scene
	var sawCamera, sawOrbit bool
	observer := camera.FocusObserverFunc(func(camera.FocusSnapshot) {
		sawCamera = sc.Camera() != nil
		sawOrbit = sc.Orbit() != nil
		_, _ = sc.Following()
		sc.Rig().AddObserver(camera.FocusObserverFunc(func(camera.FocusSnapshot) {}))
	})
	rig := camera.NewRig(
		camera.WithMeter(noop.NewMeterProvider().Meter("test")),
		camera.WithObserver(observer),
		camera.WithObserverWorkers(1),
	)
	sc = NewScene("observed", WithRig(rig), WithCamera(camera.NewCamera(), nil))

	done := make(chan struct{})
	go func() {
		sc.Update(1.0 / 60)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Update did not return while an observer read the scene")
	}
	assert.True(t, sawCamera)
	assert.True(t, sawOrbit)
}
