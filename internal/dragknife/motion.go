// Package dragknife implements the two-pass offset/swivel rewriter: a
// classifier pass that turns a modal G-code stream into a sequence of
// motion records, and a rewriter pass that re-emits those records with
// the dragknife's fixed offset applied and swivel moves inserted at sharp
// corners.
package dragknife

import (
	"github.com/chrisns/dragknife/internal/gcode"
	"github.com/chrisns/dragknife/internal/vecgeom"
)

// Kind discriminates the variant held by a Record. Deliberately a plain
// tagged struct rather than an interface hierarchy: the rewriter's
// branches need variant-specific data (arc center, linear angle), not
// just virtual accessors, and a closed, fixed set of motion kinds is
// exactly what a sum type is for.
type Kind int

const (
	KindRapid Kind = iota
	KindLinear
	KindArc
	KindHome
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindRapid:
		return "Rapid"
	case KindLinear:
		return "Linear"
	case KindArc:
		return "Arc"
	case KindHome:
		return "Home"
	default:
		return "Other"
	}
}

// ArcDirection distinguishes G2 (clockwise) from G3 (counter-clockwise).
type ArcDirection int

const (
	ArcClockwise ArcDirection = iota
	ArcCounterClockwise
)

// Record is a single classified motion. It carries a borrowed handle to
// its source command (for argument preservation on re-emission) plus its
// derived geometry. Fields outside a variant's relevance are zero.
type Record struct {
	Kind     Kind
	Original gcode.Command

	Start vecgeom.Vec3
	End   vecgeom.Vec3

	// Linear only. For a move of ~zero in-plane length the classifier
	// copies the previous record's end heading here; it is nil only when
	// such a move has no previous heading to inherit.
	Angle *float32

	// Arc only.
	Center     vecgeom.Vec3
	Direction  ArcDirection
	StartAngle float32
	EndAngle   float32

	// Other only: the carried-forward heading, threaded through
	// non-motion commands so swivel detection sees continuity across
	// them. nil before any motion has established a heading.
	OtherAngle *float32
}

// StartPos returns the position the move begins from; for Other it is the
// current cursor position (the move doesn't go anywhere).
func (r Record) StartPos() vecgeom.Vec3 {
	return r.Start
}

// EndPos returns the position the move ends at. Home's end position is
// the origin, by convention (see the G28 case in Classify).
func (r Record) EndPos() vecgeom.Vec3 {
	return r.End
}

// HeadingAtStart returns the tangent direction of travel at the start of
// the record, if one is defined. Rapid and Home carry no heading: the
// blade's orientation across a rapid traverse or a home cycle is not
// something the rewriter can reason about.
func (r Record) HeadingAtStart() (float32, bool) {
	switch r.Kind {
	case KindLinear:
		if r.Angle == nil {
			return 0, false
		}
		return *r.Angle, true
	case KindArc:
		return r.StartAngle, true
	case KindOther:
		if r.OtherAngle == nil {
			return 0, false
		}
		return *r.OtherAngle, true
	default:
		return 0, false
	}
}

// HeadingAtEnd returns the tangent direction of travel at the end of the
// record, if one is defined.
func (r Record) HeadingAtEnd() (float32, bool) {
	switch r.Kind {
	case KindLinear:
		if r.Angle == nil {
			return 0, false
		}
		return *r.Angle, true
	case KindArc:
		return r.EndAngle, true
	case KindOther:
		if r.OtherAngle == nil {
			return 0, false
		}
		return *r.OtherAngle, true
	default:
		return 0, false
	}
}
