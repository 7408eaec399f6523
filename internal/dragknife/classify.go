package dragknife

import (
	"github.com/chrisns/dragknife/internal/gcode"
	"github.com/chrisns/dragknife/internal/modal"
	"github.com/chrisns/dragknife/internal/vecgeom"
)

// angleEpsilon bounds the in-plane travel magnitude below which a Linear
// move is considered zero-length and inherits the previous heading
// instead of computing a new, numerically unstable tangent.
const angleEpsilon = 1e-6

const halfPi = float32(1.5707963267948966)

// Classify turns a single source command into a motion record, given the
// previous record (nil at program start) and the modal state as it stood
// immediately before this command. It applies G17-G19, G20/G21 and
// G90/G91 to state itself; it does not track feedrate or move
// state.Position, which BuildPath advances to each record's end.
func Classify(cmd gcode.Command, prev *Record, state *modal.State) Record {
	start := priorEndPos(prev)
	priorAngle := priorEndAngle(prev)

	if cmd.Mnemonic() != "G" {
		return Record{Kind: KindOther, Original: cmd, Start: start, End: start, OtherAngle: priorAngle}
	}

	switch cmd.Major() {
	case 0:
		end := state.ResolveTarget(cmd.Args())
		return Record{Kind: KindRapid, Original: cmd, Start: start, End: end}

	case 1:
		end := state.ResolveTarget(cmd.Args())
		angle := linearAngle(start, end, state.Plane, priorAngle)
		return Record{Kind: KindLinear, Original: cmd, Start: start, End: end, Angle: angle}

	case 2, 3:
		return classifyArc(cmd, start, state)

	case 28:
		return Record{Kind: KindHome, Original: cmd, Start: start, End: vecgeom.Zero}

	case 17:
		state.Plane = vecgeom.PlaneXY
		return otherModal(cmd, start, priorAngle)
	case 18:
		state.Plane = vecgeom.PlaneZX
		return otherModal(cmd, start, priorAngle)
	case 19:
		state.Plane = vecgeom.PlaneYZ
		return otherModal(cmd, start, priorAngle)
	case 20:
		state.Unit = modal.UnitInch
		return otherModal(cmd, start, priorAngle)
	case 21:
		state.Unit = modal.UnitMM
		return otherModal(cmd, start, priorAngle)
	case 90:
		state.Positioning = modal.PositioningAbsolute
		return otherModal(cmd, start, priorAngle)
	case 91:
		state.Positioning = modal.PositioningRelative
		return otherModal(cmd, start, priorAngle)

	default:
		// G40-44 (tool compensation) and G54-59 (work coordinate
		// systems) are structural no-ops; every other unrecognized
		// G-code passes through the same way.
		return otherModal(cmd, start, priorAngle)
	}
}

func otherModal(cmd gcode.Command, pos vecgeom.Vec3, angle *float32) Record {
	return Record{Kind: KindOther, Original: cmd, Start: pos, End: pos, OtherAngle: angle}
}

func priorEndPos(prev *Record) vecgeom.Vec3 {
	if prev == nil {
		return vecgeom.Zero
	}
	return prev.EndPos()
}

func priorEndAngle(prev *Record) *float32 {
	if prev == nil {
		return nil
	}
	if a, ok := prev.HeadingAtEnd(); ok {
		return &a
	}
	return nil
}

// linearAngle computes the in-plane tangent for a G1 move, inheriting the
// prior heading for a zero-length move (invariant 3, spec §3).
func linearAngle(start, end vecgeom.Vec3, plane vecgeom.Plane, priorAngle *float32) *float32 {
	delta := vecgeom.ProjectPlane(end.Sub(start), plane)
	if delta.Magnitude() <= angleEpsilon {
		return priorAngle
	}
	a := vecgeom.AngleTo(start, end, plane)
	return &a
}

// classifyArc handles G2/G3. The endpoint is re-seated onto the circle of
// the start radius to defend against rounding in the specified target,
// and tangent angles are the polar angle from center to start/end,
// shifted by -pi/2 for CW or +pi/2 for CCW.
func classifyArc(cmd gcode.Command, start vecgeom.Vec3, state *modal.State) Record {
	centerOffset := state.ResolveCenterOffset(cmd.Args())
	center := start.Add(centerOffset)
	target := state.ResolveTarget(cmd.Args())

	radius := vecgeom.ProjectPlane(start.Sub(center), state.Plane).Magnitude()
	end := target.Sub(center).Normalized().Scale(radius).Add(center)

	dir := ArcClockwise
	shift := -halfPi
	if cmd.Major() == 3 {
		dir = ArcCounterClockwise
		shift = halfPi
	}

	startAngle := vecgeom.AngleTo(center, start, state.Plane) + shift
	endAngle := vecgeom.AngleTo(center, end, state.Plane) + shift

	return Record{
		Kind:       KindArc,
		Original:   cmd,
		Start:      start,
		End:        end,
		Center:     center,
		Direction:  dir,
		StartAngle: startAngle,
		EndAngle:   endAngle,
	}
}
