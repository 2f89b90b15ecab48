package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewOrbitState_Defaults(t *testing.T) {
	o := NewOrbitState()

	assert.Equal(t, mgl32.Vec3{0, 0.5, -6}, o.Offset)
	assert.Equal(t, float32(0), o.XAngle)
	assert.Equal(t, float32(0), o.YAngle)
	assert.Equal(t, mgl32.Vec3{}, o.Target)
	assert.Equal(t, ModeThirdPersonOrbit, o.Mode)
	assert.Equal(t, float32(45), o.FovDegrees)
	assert.Equal(t, AxisLimit{Kind: LimitClamp, Min: -2, Max: 20}, o.Limits.X)
	assert.Equal(t, LimitWrap, o.Limits.Y.Kind)
	assert.Equal(t, LimitWrap, o.Limits.Z.Kind)
}

func TestNewOrbitState_Options(t *testing.T) {
	o := NewOrbitState(
		WithOffset(1, 2, -3),
		WithAngles(5, 90),
		WithTarget(4, 5, 6),
		WithMode(ModeFirstPerson),
		WithFovDegrees(70),
		WithXLimit(ClampLimit(-45, 45)),
		WithYLimit(ClampLimit(0, 180)),
	)

	assert.Equal(t, mgl32.Vec3{1, 2, -3}, o.Offset)
	assert.Equal(t, float32(5), o.XAngle)
	assert.Equal(t, float32(90), o.YAngle)
	assert.Equal(t, mgl32.Vec3{4, 5, 6}, o.Target)
	assert.Equal(t, ModeFirstPerson, o.Mode)
	assert.Equal(t, float32(70), o.FovDegrees)
	assert.Equal(t, float32(-45), o.Limits.X.Min)
	assert.Equal(t, LimitClamp, o.Limits.Y.Kind)
}

func TestAdjustXAngle(t *testing.T) {
	tests := []struct {
		name     string
		start    float32
		increase float32
		want     float32
	}{
		{name: "within bounds", start: 0, increase: 5, want: 5},
		{name: "saturates at max", start: 18, increase: 5, want: 20},
		{name: "saturates at min", start: 0, increase: -10, want: -2},
		{name: "zero increase", start: 7, increase: 0, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOrbitState(WithAngles(tt.start, 0))
			o.AdjustXAngle(tt.increase)
			assert.Equal(t, tt.want, o.XAngle)
		})
	}
}

func TestAdjustXAngle_Wrap(t *testing.T) {
	tests := []struct {
		name     string
		start    float32
		increase float32
		want     float32
	}{
		{name: "full turn stays 360", start: 350, increase: 10, want: 360},
		{name: "past full turn wraps", start: 355, increase: 10, want: 5},
		{name: "below zero wraps", start: 0, increase: -5, want: 355},
		{name: "within range", start: 90, increase: 45, want: 135},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOrbitState(WithAngles(tt.start, 0), WithXLimit(WrapLimit()))
			o.AdjustXAngle(tt.increase)
			assert.InDelta(t, tt.want, o.XAngle, 1e-4)
		})
	}
}

func TestAdjustXAngle_StaysInBoundsOverManySteps(t *testing.T) {
	o := NewOrbitState()
	for i := 0; i < 100; i++ {
		o.AdjustXAngle(3)
		assert.LessOrEqual(t, o.XAngle, float32(20))
	}
	for i := 0; i < 100; i++ {
		o.AdjustXAngle(-3)
		assert.GreaterOrEqual(t, o.XAngle, float32(-2))
	}
}

func TestAdjustYAngle_MovesByTwiceTheIncrease(t *testing.T) {
	tests := []struct {
		name     string
		start    float32
		increase float32
		want     float32
	}{
		{name: "small step", start: 0, increase: 10, want: 20},
		{name: "wraps past full turn", start: 350, increase: 10, want: 10},
		{name: "wraps below zero", start: 0, increase: -5, want: 350},
		{name: "single correction only", start: 0, increase: 200, want: 40},
		{name: "full turn stays 360", start: 0, increase: 180, want: 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOrbitState(WithAngles(0, tt.start))
			o.AdjustYAngle(tt.increase)
			assert.InDelta(t, tt.want, o.YAngle, 1e-4)
		})
	}
}

func TestAdjustYAngle_ClampLimit(t *testing.T) {
	o := NewOrbitState(WithYLimit(ClampLimit(-30, 30)))
	o.AdjustYAngle(10)
	assert.Equal(t, float32(20), o.YAngle)
	o.AdjustYAngle(10)
	assert.Equal(t, float32(30), o.YAngle)
}

func TestAdjust_LeavesOtherFieldsAlone(t *testing.T) {
	o := NewOrbitState(WithTarget(1, 2, 3))
	before := o.Clone()

	o.AdjustXAngle(4)
	o.AdjustYAngle(4)

	assert.Equal(t, before.Offset, o.Offset)
	assert.Equal(t, before.Target, o.Target)
	assert.Equal(t, before.Limits, o.Limits)
	assert.Equal(t, before.FovDegrees, o.FovDegrees)
}

func TestClampLimit_SwapsReversedBounds(t *testing.T) {
	l := ClampLimit(20, -2)
	assert.Equal(t, float32(-2), l.Min)
	assert.Equal(t, float32(20), l.Max)
	assert.Equal(t, float32(20), l.Apply(50))
}

func TestAxisLimit_UnknownKindPassesThrough(t *testing.T) {
	l := AxisLimit{Kind: LimitKind(9)}
	assert.Equal(t, float32(1234), l.Apply(1234))
	assert.Equal(t, "LimitKind(9)", l.Kind.String())
}

func TestOrbitState_Radians(t *testing.T) {
	o := NewOrbitState(WithAngles(90, 180))
	assert.InDelta(t, mgl32.DegToRad(90), o.Pitch(), 1e-6)
	assert.InDelta(t, mgl32.DegToRad(180), o.Yaw(), 1e-6)
}

func TestOrbitState_CloneIsIndependent(t *testing.T) {
	o := NewOrbitState()
	c := o.Clone()
	c.Offset[2] = -20
	c.AdjustXAngle(5)

	assert.Equal(t, float32(-6), o.Offset[2])
	assert.Equal(t, float32(0), o.XAngle)
}

func TestCameraMode_String(t *testing.T) {
	assert.Equal(t, "thirdPersonOrbit", ModeThirdPersonOrbit.String())
	assert.Equal(t, "firstPerson", ModeFirstPerson.String())
	assert.Equal(t, "CameraMode(7)", CameraMode(7).String())
}
