package modal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chrisns/dragknife/internal/gcode"
	"github.com/chrisns/dragknife/internal/vecgeom"
)

func args(pairs ...gcode.Arg) Args {
	return Args(pairs)
}

func TestNewStateDefaults(t *testing.T) {
	s := NewState()
	assert.Equal(t, UnitMM, s.Unit)
	assert.Equal(t, vecgeom.PlaneXY, s.Plane)
	assert.Equal(t, PositioningAbsolute, s.Positioning)
	assert.Equal(t, vecgeom.Zero, s.Position)
	assert.InDelta(t, 3000.0, s.Feedrate, 1e-6)
}

func TestApplyModalUnitsAndPlane(t *testing.T) {
	s := NewState()
	s.ApplyModal("G", 20)
	assert.Equal(t, UnitInch, s.Unit)
	s.ApplyModal("G", 21)
	assert.Equal(t, UnitMM, s.Unit)

	s.ApplyModal("G", 18)
	assert.Equal(t, vecgeom.PlaneZX, s.Plane)
	s.ApplyModal("G", 19)
	assert.Equal(t, vecgeom.PlaneYZ, s.Plane)

	s.ApplyModal("G", 91)
	assert.Equal(t, PositioningRelative, s.Positioning)

	s.ApplyModal("M", 3) // non-G mnemonics never touch modal state
	assert.Equal(t, PositioningRelative, s.Positioning)
}

func TestResolveTargetAbsolute(t *testing.T) {
	s := NewState()
	s.Position = vecgeom.Vec3{X: 1, Y: 1, Z: 1}
	target := s.ResolveTarget(args(gcode.Arg{Letter: "X", Value: 10}, gcode.Arg{Letter: "Y", Value: 5}))
	assert.Equal(t, vecgeom.Vec3{X: 10, Y: 5, Z: 1}, target)
}

func TestResolveTargetRelative(t *testing.T) {
	s := NewState()
	s.Positioning = PositioningRelative
	s.Position = vecgeom.Vec3{X: 1, Y: 1, Z: 1}
	target := s.ResolveTarget(args(gcode.Arg{Letter: "X", Value: 10}))
	assert.Equal(t, vecgeom.Vec3{X: 11, Y: 1, Z: 1}, target)
}

func TestResolveTargetUnitScaling(t *testing.T) {
	s := NewState()
	s.Unit = UnitInch
	target := s.ResolveTarget(args(gcode.Arg{Letter: "X", Value: 1}))
	assert.InDelta(t, 2.54, target.X, 1e-4)
}

func TestResolveCenterOffsetDefaultsToZero(t *testing.T) {
	s := NewState()
	offset := s.ResolveCenterOffset(args(gcode.Arg{Letter: "I", Value: 3}))
	assert.Equal(t, vecgeom.Vec3{X: 3, Y: 0, Z: 0}, offset)
}

func TestResolveFeedrate(t *testing.T) {
	s := NewState()
	f, ok := s.ResolveFeedrate(args(gcode.Arg{Letter: "F", Value: 500}))
	assert.True(t, ok)
	assert.InDelta(t, 500.0, f, 1e-6)

	_, ok = s.ResolveFeedrate(args())
	assert.False(t, ok)
}
