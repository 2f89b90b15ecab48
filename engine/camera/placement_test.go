package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-5

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, want[i], got[i], epsilon, "component %d of %v", i, got)
	}
}

func assertSameRotation(t *testing.T, want, got mgl32.Quat) {
	t.Helper()
	// q and -q describe the same rotation
	assert.InDelta(t, 1, math.Abs(float64(want.Dot(got))), epsilon, "want %v got %v", want, got)
}

func TestBlendFactor(t *testing.T) {
	tests := []struct {
		name    string
		options []PlacementSolverOption
		elapsed float32
		want    float32
	}{
		{name: "default rate", elapsed: 0.01, want: 0.2},
		{name: "clamped to one", elapsed: 0.1, want: 1},
		{name: "clamped to zero", elapsed: -1, want: 0},
		{name: "unclamped overshoot", options: []PlacementSolverOption{WithUnclampedBlend()}, elapsed: 0.1, want: 2},
		{name: "custom rate", options: []PlacementSolverOption{WithSmoothingRate(10)}, elapsed: 0.05, want: 0.5},
		{name: "non-positive rate falls back", options: []PlacementSolverOption{WithSmoothingRate(0)}, elapsed: 0.01, want: 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewPlacementSolver(tt.options...)
			assert.InDelta(t, tt.want, s.BlendFactor(tt.elapsed), epsilon)
		})
	}
}

func TestDesired_DefaultThirdPerson(t *testing.T) {
	d := NewPlacementSolver().Desired(NewOrbitState())

	assertVec3(t, mgl32.Vec3{0, 0.5, 6}, d.Translation)
	assertSameRotation(t, mgl32.QuatIdent(), d.Rotation)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, d.Scale)
}

func TestDesired_YawAndLateralOffset(t *testing.T) {
	orbit := NewOrbitState(WithAngles(0, 90), WithOffset(2, 0.5, -6))
	d := NewPlacementSolver().Desired(orbit)

	// yaw 90 turns forward to -X and right to -Z
	assertVec3(t, mgl32.Vec3{6, 0.5, -2}, d.Translation)
	assertVec3(t, mgl32.Vec3{-1, 0, 0}, d.Forward())
}

func TestDesired_Pitch(t *testing.T) {
	orbit := NewOrbitState(WithAngles(10, 0))
	d := NewPlacementSolver().Desired(orbit)

	theta := float64(mgl32.DegToRad(10))
	want := mgl32.Vec3{0, float32(-6*math.Sin(theta)) + 0.5, float32(6 * math.Cos(theta))}
	assertVec3(t, want, d.Translation)
	assertVec3(t, mgl32.Vec3{0, float32(math.Sin(theta)), float32(-math.Cos(theta))}, d.Forward())
}

func TestDesired_YawThenWorldPitch(t *testing.T) {
	// pitch about the world X axis after a quarter yaw leaves a -X forward unchanged
	orbit := NewOrbitState(WithAngles(10, 90))
	d := NewPlacementSolver().Desired(orbit)

	assertVec3(t, mgl32.Vec3{6, 0.5, 0}, d.Translation)

	pitch, yaw := orbit.Pitch(), orbit.Yaw()
	wantLook := mgl32.QuatRotate(yaw, mgl32.Vec3{0, 1, 0}).Mul(mgl32.QuatRotate(pitch, mgl32.Vec3{1, 0, 0}))
	assertSameRotation(t, wantLook, d.Rotation)
}

func TestDesired_TargetOffsetsPosition(t *testing.T) {
	d := NewPlacementSolver().Desired(NewOrbitState(WithTarget(10, -1, 3)))
	assertVec3(t, mgl32.Vec3{10, -0.5, 9}, d.Translation)
}

func TestDesired_FirstPersonIgnoresLateralAndDistance(t *testing.T) {
	orbit := NewOrbitState(
		WithMode(ModeFirstPerson),
		WithTarget(1, 2, 3),
		WithOffset(5, 0.5, -6),
		WithAngles(5, 45),
	)
	d := NewPlacementSolver().Desired(orbit)

	assertVec3(t, mgl32.Vec3{1, 2.5, 3}, d.Translation)

	thirdPerson := orbit.Clone()
	thirdPerson.Mode = ModeThirdPersonOrbit
	assertSameRotation(t, NewPlacementSolver().Desired(thirdPerson).Rotation, d.Rotation)
}

func TestSolve_ZeroElapsedLeavesTransform(t *testing.T) {
	current := TransformFromTranslation(mgl32.Vec3{3, 4, 5})
	current.RotateY(0.3)

	got := NewPlacementSolver().Solve(current, NewOrbitState(), 0)
	assert.Equal(t, current, got)
}

func TestSolve_LargeElapsedArrivesExactly(t *testing.T) {
	s := NewPlacementSolver()
	orbit := NewOrbitState(WithAngles(5, 30), WithTarget(1, 0, 1))
	desired := s.Desired(orbit)

	got := s.Solve(TransformFromTranslation(mgl32.Vec3{-20, 4, 9}), orbit, 1)
	assert.Equal(t, desired.Translation, got.Translation)
	assert.Equal(t, desired.Rotation, got.Rotation)

	again := s.Solve(got, orbit, 1)
	assert.Equal(t, got, again)
}

func TestSolve_PartialBlend(t *testing.T) {
	s := NewPlacementSolver()
	got := s.Solve(NewTransform(), NewOrbitState(), 0.025) // t = 0.5

	assertVec3(t, mgl32.Vec3{0, 0.25, 3}, got.Translation)
	assertSameRotation(t, mgl32.QuatIdent(), got.Rotation)
}

func TestSolve_ConvergesMonotonically(t *testing.T) {
	s := NewPlacementSolver()
	orbit := NewOrbitState(WithAngles(12, 140))
	desired := s.Desired(orbit)

	current := TransformFromTranslation(mgl32.Vec3{30, 30, 30})
	prev := current.Translation.Sub(desired.Translation).Len()
	for i := 0; i < 30; i++ {
		current = s.Solve(current, orbit, 1.0/60)
		dist := current.Translation.Sub(desired.Translation).Len()
		assert.LessOrEqual(t, dist, prev)
		prev = dist
	}
	assert.Less(t, prev, float32(0.01))
}

func TestSolve_PreservesScale(t *testing.T) {
	current := NewTransform()
	current.Scale = mgl32.Vec3{2, 3, 4}

	got := NewPlacementSolver().Solve(current, NewOrbitState(), 0.01)
	assert.Equal(t, current.Scale, got.Scale)
}

func TestSolve_TakesShortestArc(t *testing.T) {
	current := NewTransform()
	current.Rotation = mgl32.Quat{W: -1} // identity rotation, opposite sign

	got := NewPlacementSolver().Solve(current, NewOrbitState(), 0.025)
	assertVec3(t, mgl32.Vec3{0, 0, -1}, got.Forward())
}

func TestSolve_UnclampedOvershoots(t *testing.T) {
	s := NewPlacementSolver(WithUnclampedBlend())
	got := s.Solve(NewTransform(), NewOrbitState(), 0.1) // t = 2

	assertVec3(t, mgl32.Vec3{0, 1, 12}, got.Translation)
}

func TestSolve_DoesNotMutateOrbit(t *testing.T) {
	orbit := NewOrbitState(WithAngles(3, 4))
	before := *orbit
	NewPlacementSolver().Solve(NewTransform(), orbit, 0.02)
	assert.Equal(t, before, *orbit)
}
