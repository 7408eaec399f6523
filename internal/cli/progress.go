package cli

import (
	"fmt"
	"io"
	"time"
)

// PhaseReporter reports progress through the rewrite pipeline's stages
// (parse, classify, rewrite, write) with elapsed time per stage. The
// core is a bulk two-pass transform rather than a line-filtered stream,
// so progress here is phase-level rather than a per-line percentage.
type PhaseReporter struct {
	w         io.Writer
	startTime time.Time
	lastPhase time.Time
}

// NewPhaseReporter creates a reporter writing to w, starting the clock
// now.
func NewPhaseReporter(w io.Writer) *PhaseReporter {
	now := time.Now()
	return &PhaseReporter{w: w, startTime: now, lastPhase: now}
}

// Phase reports completion of a pipeline stage handling n records/lines,
// with the time spent since the previous phase call.
func (p *PhaseReporter) Phase(name string, n int) {
	now := time.Now()
	fmt.Fprintf(p.w, "%-10s %8s lines  (%s)\n", name+":", FormatNumber(n), FormatDuration(now.Sub(p.lastPhase)))
	p.lastPhase = now
}

// Done reports the total elapsed time since the reporter was created.
func (p *PhaseReporter) Done() {
	fmt.Fprintf(p.w, "total:     %s\n", FormatDuration(time.Since(p.startTime)))
}
