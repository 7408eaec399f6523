package dragknife

import (
	"github.com/chewxy/math32"

	"github.com/chrisns/dragknife/internal/gcode"
	"github.com/chrisns/dragknife/internal/modal"
	"github.com/chrisns/dragknife/internal/vecgeom"
)

const tau = float32(2 * math32.Pi)
const pi = float32(math32.Pi)

// reservedByPlane holds, per plane, the letters a rewritten Linear/Arc owns; every
// other argument on the source command rides along unchanged (spec §4.4).
var reservedByPlane = map[vecgeom.Plane]map[string]bool{}

func init() {
	for _, plane := range []vecgeom.Plane{vecgeom.PlaneXY, vecgeom.PlaneZX, vecgeom.PlaneYZ} {
		a1, a2 := plane.Axis1(), plane.Axis2()
		reservedByPlane[plane] = map[string]bool{
			a1.MainName():   true,
			a2.MainName():   true,
			a1.CenterName(): true,
			a2.CenterName(): true,
			"F":             true,
		}
	}
}

// rewriteState carries the small piece of pending state the rewriter
// threads across records: a feedrate restoration owed after a swivel.
type rewriteState struct {
	nextFeedrate *float32
}

// Rewrite replays a classified path with knife-offset compensation and
// swivel insertion, against a freshly derived modal state (spec §4.3:
// re-derived, not reused from the classifier, so F arguments are tracked
// here for the first time).
func Rewrite(records []Record, cfg Config) []gcode.Command {
	state := modal.NewState()
	rw := rewriteState{}
	out := make([]gcode.Command, 0, len(records)+len(records)/4)

	var prevAngle *float32

	for _, rec := range records {
		switch rec.Kind {
		case KindOther:
			out = appendOther(out, rec, &state)

		case KindHome, KindRapid:
			out = append(out, rec.Original)
			state.ApplyModal(rec.Original.Mnemonic(), rec.Original.Major())

		case KindLinear:
			if startAngle, ok := rec.HeadingAtStart(); ok {
				out, rw = maybeSwivel(out, rw, prevAngle, startAngle, rec.Start, &state, cfg)
			}
			out = append(out, emitLinear(rec, &state, &rw, cfg))

		case KindArc:
			startAngle, _ := rec.HeadingAtStart()
			out, rw = maybeSwivel(out, rw, prevAngle, startAngle, rec.Start, &state, cfg)
			out = append(out, emitArc(rec, &state, &rw, cfg))
		}

		if a, ok := rec.HeadingAtEnd(); ok {
			prevAngle = &a
		} else {
			prevAngle = nil
		}
	}
	return out
}

// appendOther emits a non-motion record. G91 is dropped — the rewritten
// program is always absolute (spec §4.3, §7, §9) — and G90 is always
// preserved so a machine that defaulted to relative still gets switched.
func appendOther(out []gcode.Command, rec Record, state *modal.State) []gcode.Command {
	cmd := rec.Original
	if cmd.Mnemonic() == "G" && cmd.Major() == 91 {
		state.ApplyModal(cmd.Mnemonic(), cmd.Major())
		return out
	}
	state.ApplyModal(cmd.Mnemonic(), cmd.Major())
	return append(out, cmd)
}

// emitLinear offset-compensates a Linear record's endpoint and appends
// the miscellaneous-argument tail.
func emitLinear(rec Record, state *modal.State, rw *rewriteState, cfg Config) gcode.Command {
	target := rec.End
	if rec.Angle != nil {
		target = target.Add(vecgeom.UnitAngle(*rec.Angle, state.Plane).Scale(cfg.KnifeOffset))
	}
	a1, a2 := vecgeom.CoordsForPlane(target, state.Plane)
	factor := state.Unit.Factor()

	cmd := gcode.NewCommand("G", 1)
	cmd = cmd.WithArg(state.Plane.Axis1().MainName(), a1/factor)
	cmd = cmd.WithArg(state.Plane.Axis2().MainName(), a2/factor)
	cmd = appendMisc(cmd, rec.Original, state.Plane)
	cmd = appendFeedrate(cmd, rec.Original, state, rw)
	return cmd
}

// emitArc offset-compensates an Arc record's start and end along their
// respective tangents; the center is unchanged in space, so the emitted
// center-offset is recomputed from the new start.
func emitArc(rec Record, state *modal.State, rw *rewriteState, cfg Config) gcode.Command {
	newStart := rec.Start.Add(vecgeom.UnitAngle(rec.StartAngle, state.Plane).Scale(cfg.KnifeOffset))
	newEnd := rec.End.Add(vecgeom.UnitAngle(rec.EndAngle, state.Plane).Scale(cfg.KnifeOffset))
	centerOffset := rec.Center.Sub(newStart)

	a1, a2 := vecgeom.CoordsForPlane(newEnd, state.Plane)
	i1, i2 := vecgeom.CoordsForPlane(centerOffset, state.Plane)
	factor := state.Unit.Factor()

	major := 2
	if rec.Direction == ArcCounterClockwise {
		major = 3
	}

	cmd := gcode.NewCommand("G", major)
	cmd = cmd.WithArg(state.Plane.Axis1().MainName(), a1/factor)
	cmd = cmd.WithArg(state.Plane.Axis2().MainName(), a2/factor)
	cmd = cmd.WithArg(state.Plane.Axis1().CenterName(), i1/factor)
	cmd = cmd.WithArg(state.Plane.Axis2().CenterName(), i2/factor)
	cmd = appendMisc(cmd, rec.Original, state.Plane)
	cmd = appendFeedrate(cmd, rec.Original, state, rw)
	return cmd
}

// appendMisc carries forward every argument on the original command that
// isn't one of the axes/feedrate the rewritten command owns itself —
// Z-in-XY-plane (multi-depth cuts), spindle parameters, rotary axes.
func appendMisc(cmd gcode.Command, original gcode.Command, plane vecgeom.Plane) gcode.Command {
	reserved := reservedByPlane[plane]
	for _, a := range original.Args() {
		if reserved[a.Letter] {
			continue
		}
		cmd = cmd.WithArg(a.Letter, a.Value)
	}
	return cmd
}

// appendFeedrate implements the ordered feedrate tests from spec §4.4:
// an explicit F on the source always wins and updates modal feedrate; a
// pending post-swivel restoration fires only in its absence; otherwise
// no F is emitted.
func appendFeedrate(cmd gcode.Command, original gcode.Command, state *modal.State, rw *rewriteState) gcode.Command {
	if f, ok := state.ResolveFeedrate(original.Args()); ok {
		state.Feedrate = f
		rw.nextFeedrate = nil
		return cmd.WithArg("F", f/state.Unit.Factor())
	}
	if rw.nextFeedrate != nil {
		f := *rw.nextFeedrate
		rw.nextFeedrate = nil
		return cmd.WithArg("F", f)
	}
	return cmd
}

// maybeSwivel inserts a lift/arc/plunge sequence between prevAngle (the
// previous record's end heading) and startAngle (the upcoming record's
// start heading) when both are defined and the signed angular delta
// exceeds the configured threshold. Missing a prior heading (program
// start, after Home, after Rapid) never triggers a swivel — the blade's
// orientation there is unknown, so forcing one would be arbitrary
// (spec §7, §9).
func maybeSwivel(out []gcode.Command, rw rewriteState, prevAngle *float32, startAngle float32, nextStart vecgeom.Vec3, state *modal.State, cfg Config) ([]gcode.Command, rewriteState) {
	if prevAngle == nil {
		return out, rw
	}
	delta := SignedDelta(*prevAngle, startAngle)
	if math32.Abs(delta) <= cfg.SharpAngleThreshold {
		return out, rw
	}

	factor := state.Unit.Factor()
	thirdCoord := vecgeom.ThirdCoord(nextStart, state.Plane)
	liftHeight := cfg.LiftConfig.ComputeLiftHeight(thirdCoord)

	lift := gcode.NewCommand("G", 1)
	lift = lift.WithArg(state.Plane.Axis3().MainName(), liftHeight/factor)
	lift = lift.WithArg("F", cfg.SwivelFeedrate/factor)
	out = append(out, lift)

	major := 3
	if delta > 0 {
		major = 2
	}
	centerOffset := vecgeom.UnitAngle(*prevAngle+pi, state.Plane).Scale(cfg.KnifeOffset)
	target := vecgeom.UnitAngle(startAngle, state.Plane).Scale(cfg.KnifeOffset).Add(nextStart)

	t1, t2 := vecgeom.CoordsForPlane(target, state.Plane)
	c1, c2 := vecgeom.CoordsForPlane(centerOffset, state.Plane)

	arc := gcode.NewCommand("G", major)
	arc = arc.WithArg(state.Plane.Axis1().MainName(), t1/factor)
	arc = arc.WithArg(state.Plane.Axis2().MainName(), t2/factor)
	arc = arc.WithArg(state.Plane.Axis1().CenterName(), c1/factor)
	arc = arc.WithArg(state.Plane.Axis2().CenterName(), c2/factor)
	out = append(out, arc)

	plunge := gcode.NewCommand("G", 1)
	plunge = plunge.WithArg(state.Plane.Axis3().MainName(), thirdCoord/factor)
	out = append(out, plunge)

	f := state.Feedrate / state.Unit.Factor()
	rw.nextFeedrate = &f
	return out, rw
}

// SignedDelta returns the signed angular difference a-b normalized into
// [-pi, pi), the convention used for sharp-corner/swivel detection.
func SignedDelta(a, b float32) float32 {
	d := math32.Mod(a-b+pi, tau)
	if d < 0 {
		d += tau
	}
	return d - pi
}
