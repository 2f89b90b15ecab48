package camera

import (
	"math"
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// sequenceSource replays fixed samples in order, wrapping around.
type sequenceSource struct {
	values []float32
	next   int
}

func (s *sequenceSource) Float32() float32 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func pitched(deg float32) Transform {
	t := TransformFromTranslation(mgl32.Vec3{1, 2, 3})
	t.RotateX(mgl32.DegToRad(deg))
	return t
}

func TestFocusTracker_ZeroBeforeFirstUpdate(t *testing.T) {
	f := NewFocusTracker()
	assert.Equal(t, FocusSnapshot{}, f.Snapshot())
	assert.Equal(t, mgl32.Vec3{}, f.Forward())
}

func TestFocusTracker_UpdateCopiesTransform(t *testing.T) {
	tr := TransformFromTranslation(mgl32.Vec3{4, 5, 6})
	tr.RotateY(mgl32.DegToRad(90))

	f := NewFocusTracker()
	f.Update(tr)

	snap := f.Snapshot()
	assert.Equal(t, tr.Translation, snap.Origin)
	assert.Equal(t, tr.Forward(), snap.Forward)
	assert.Equal(t, tr.Right(), snap.Right)
	assert.Equal(t, snap.Origin, f.Origin())
	assert.Equal(t, snap.Forward, f.Forward())
	assert.Equal(t, snap.Right, f.Right())
	assertVec3(t, mgl32.Vec3{-1, 0, 0}, snap.Forward)
	assertVec3(t, mgl32.Vec3{0, 0, -1}, snap.Right)
}

func TestFocusTracker_FlatAxes(t *testing.T) {
	tr := pitched(30)
	cos30 := float32(math.Cos(math.Pi / 6))

	tests := []struct {
		name        string
		options     []FocusTrackerOption
		wantForward mgl32.Vec3
	}{
		{name: "forward flat reads right", wantForward: mgl32.Vec3{1, 0, 0}},
		{name: "corrected forward flat", options: []FocusTrackerOption{WithCorrectedFlatForward()}, wantForward: mgl32.Vec3{0, 0, -cos30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFocusTracker(tt.options...)
			f.Update(tr)

			assertVec3(t, tt.wantForward, f.ForwardFlat())
			assertVec3(t, mgl32.Vec3{1, 0, 0}, f.RightFlat())
			assert.Equal(t, float32(0), f.ForwardFlat().Y())
		})
	}
}

func TestForwardRandomized_ZeroRangeIsForward(t *testing.T) {
	f := NewFocusTracker(WithRandomSource(NewSeededSource(1, 2)))
	f.Update(pitched(15))

	for i := 0; i < 10; i++ {
		assertVec3(t, f.Forward(), f.ForwardRandomized(0))
	}
}

func TestForwardRandomized_FixedSample(t *testing.T) {
	// u1 = 1 gives the full radius, u2 = 0 puts it all on the pitch axis
	quarter := float32(math.Pi / 2)
	rangeDeg := quarter * quarter

	t.Run("corrected scale pitches a quarter turn", func(t *testing.T) {
		f := NewFocusTracker(
			WithRandomSource(&sequenceSource{values: []float32{1, 0}}),
			WithCorrectedJitterScale(),
		)
		f.Update(NewTransform())
		assertVec3(t, mgl32.Vec3{0, 1, 0}, f.ForwardRandomized(rangeDeg))
	})

	t.Run("default scale treats the radius as degrees", func(t *testing.T) {
		f := NewFocusTracker(WithRandomSource(&sequenceSource{values: []float32{1, 0}}))
		f.Update(NewTransform())

		angle := float64(mgl32.DegToRad(quarter))
		assertVec3(t, mgl32.Vec3{0, float32(math.Sin(angle)), float32(-math.Cos(angle))}, f.ForwardRandomized(rangeDeg))
	})
}

func TestForwardRandomized_SeededIsDeterministic(t *testing.T) {
	a := NewFocusTracker(WithRandomSource(NewSeededSource(7, 11)))
	b := NewFocusTracker(WithRandomSource(NewSeededSource(7, 11)))
	a.Update(pitched(5))
	b.Update(pitched(5))

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.ForwardRandomized(25), b.ForwardRandomized(25))
	}
}

func TestForwardRandomized_StaysInCone(t *testing.T) {
	tests := []struct {
		name     string
		options  []FocusTrackerOption
		rangeDeg float32
		maxAngle float64
	}{
		// radius <= 10, applied as 10 degrees per axis
		{name: "default scale", rangeDeg: 100, maxAngle: math.Sqrt2 * float64(mgl32.DegToRad(10))},
		// radius <= 0.1 radians per axis
		{name: "corrected scale", options: []FocusTrackerOption{WithCorrectedJitterScale()}, rangeDeg: 0.01, maxAngle: math.Sqrt2 * 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFocusTracker(append(tt.options, WithRandomSource(NewSeededSource(3, 5)))...)
			f.Update(pitched(10))
			forward := f.Forward()

			for i := 0; i < 200; i++ {
				got := f.ForwardRandomized(tt.rangeDeg)
				assert.InDelta(t, 1, got.Len(), 1e-5)
				cos := mgl32.Clamp(got.Dot(forward), -1, 1)
				assert.LessOrEqual(t, math.Acos(float64(cos)), tt.maxAngle+1e-3)
			}
		})
	}
}

func TestFocusTracker_ReadersSeeWholeSnapshots(t *testing.T) {
	f := NewFocusTracker()
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; i <= 2000; i++ {
			v := float32(i)
			f.Update(TransformFromTranslation(mgl32.Vec3{v, v, v}))
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				s := f.Snapshot()
				assert.Equal(t, s.Origin.X(), s.Origin.Y())
				assert.Equal(t, s.Origin.Y(), s.Origin.Z())
			}
		}()
	}
	wg.Wait()
}

func TestWithRandomSource_NilIgnored(t *testing.T) {
	f := NewFocusTracker(WithRandomSource(nil))
	f.Update(NewTransform())
	assert.NotPanics(t, func() { f.ForwardRandomized(4) })
}
