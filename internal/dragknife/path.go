package dragknife

import (
	"github.com/chrisns/dragknife/internal/gcode"
	"github.com/chrisns/dragknife/internal/modal"
)

// BuildPath drives Classify over an entire command stream, producing an
// ordered sequence of motion records against a freshly initialized modal
// state. It is the only entry point that owns the classifier's state; the
// rewriter keeps its own, independent state re-derived from the same
// command stream (spec §4.3).
func BuildPath(commands []gcode.Command) []Record {
	state := modal.NewState()
	records := make([]Record, 0, len(commands))

	var prev *Record
	for _, cmd := range commands {
		rec := Classify(cmd, prev, &state)
		state.Advance(rec.EndPos())
		records = append(records, rec)
		prev = &records[len(records)-1]
	}
	return records
}
