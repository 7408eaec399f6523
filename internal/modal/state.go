// Package modal tracks the machine's modal state — units, cut plane,
// absolute/relative positioning, and feedrate — as a G-code program is
// walked command by command. It resolves each motion command's target
// position and arc center offset against that running state; it never
// interprets header comments or other non-command hints (see
// gcode.HeaderHints for that diagnostic-only path).
package modal

import (
	"github.com/chrisns/dragknife/internal/gcode"
	"github.com/chrisns/dragknife/internal/vecgeom"
)

// Unit is the active linear unit, selected by G20 (inch) or G21 (mm).
type Unit int

const (
	UnitMM Unit = iota
	UnitInch
)

// Factor converts a value expressed in u to millimeters, the internal
// working unit for all of the core's geometry.
func (u Unit) Factor() float32 {
	if u == UnitInch {
		return 2.54
	}
	return 1.0
}

// Positioning selects whether X/Y/Z words are absolute (G90) or
// incremental relative to the current position (G91).
type Positioning int

const (
	PositioningAbsolute Positioning = iota
	PositioningRelative
)

// State is the running modal state of the machine, re-derived fresh for
// each pass over a program (the classifier and the rewriter each keep
// their own independent State).
type State struct {
	Unit        Unit
	Plane       vecgeom.Plane
	Positioning Positioning
	Feedrate    float32 // always stored internally in mm/min
	Position    vecgeom.Vec3
}

// NewState returns the machine's power-on modal defaults: millimeters,
// the XY plane, absolute positioning, 3000 mm/min feedrate, at the origin.
func NewState() State {
	return State{
		Unit:        UnitMM,
		Plane:       vecgeom.PlaneXY,
		Positioning: PositioningAbsolute,
		Feedrate:    3000,
		Position:    vecgeom.Zero,
	}
}

// ApplyModal updates unit, plane, and positioning mode from a G-code
// command's mnemonic, if it carries one of the recognized modal codes.
// It does not move the tool; motion commands are resolved separately via
// ResolveTarget.
func (s *State) ApplyModal(mnemonic string, major int) {
	if mnemonic != "G" {
		return
	}
	switch major {
	case 20:
		s.Unit = UnitInch
	case 21:
		s.Unit = UnitMM
	case 17:
		s.Plane = vecgeom.PlaneXY
	case 18:
		s.Plane = vecgeom.PlaneZX
	case 19:
		s.Plane = vecgeom.PlaneYZ
	case 90:
		s.Positioning = PositioningAbsolute
	case 91:
		s.Positioning = PositioningRelative
	}
}

// Args is the argument slice ResolveTarget and ResolveCenterOffset
// consume, matching gcode.Command's Args() shape directly.
type Args = []gcode.Arg

// axisValue looks up the value (converted to mm) of letter among args, if
// present.
func axisValue(args Args, letter string, factor float32) (float32, bool) {
	for _, a := range args {
		if a.Letter == letter {
			return a.Value * factor, true
		}
	}
	return 0, false
}

// ResolveTarget computes the absolute mm position a motion command moves
// to, given its axis-letter arguments, honoring the current unit and
// positioning mode. Axes not named in args hold their prior value
// (absolute mode) or contribute no delta (relative mode).
func (s State) ResolveTarget(args Args) vecgeom.Vec3 {
	factor := s.Unit.Factor()
	target := s.Position

	apply := func(letter string, set func(v *vecgeom.Vec3, value float32)) {
		value, ok := axisValue(args, letter, factor)
		if !ok {
			return
		}
		if s.Positioning == PositioningRelative {
			var delta vecgeom.Vec3
			set(&delta, value)
			target = target.Add(delta)
			return
		}
		set(&target, value)
	}

	apply("X", func(v *vecgeom.Vec3, value float32) { v.X = value })
	apply("Y", func(v *vecgeom.Vec3, value float32) { v.Y = value })
	apply("Z", func(v *vecgeom.Vec3, value float32) { v.Z = value })

	return target
}

// ResolveCenterOffset computes the arc center as an offset from the arc's
// start point, from I/J/K arguments. Center offsets are always incremental
// regardless of G90/G91 positioning mode, per the NIST G-code convention
// the original implementation follows.
func (s State) ResolveCenterOffset(args Args) vecgeom.Vec3 {
	factor := s.Unit.Factor()
	var offset vecgeom.Vec3
	if v, ok := axisValue(args, "I", factor); ok {
		offset.X = v
	}
	if v, ok := axisValue(args, "J", factor); ok {
		offset.Y = v
	}
	if v, ok := axisValue(args, "K", factor); ok {
		offset.Z = v
	}
	return offset
}

// ResolveFeedrate returns the feedrate (mm/min) named by an F argument, if
// present, converted from the active unit.
func (s State) ResolveFeedrate(args Args) (float32, bool) {
	return axisValue(args, "F", s.Unit.Factor())
}

// Advance moves the state's tracked position to target, for use after a
// motion command has been resolved and classified.
func (s *State) Advance(target vecgeom.Vec3) {
	s.Position = target
}
