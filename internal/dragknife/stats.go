package dragknife

import (
	"time"

	"github.com/chewxy/math32"
)

// Stats accumulates before/after metrics for a single rewrite, reported
// by the CLI after processing (see internal/cli.PrintSummary). It plays
// no part in the rewrite itself.
type Stats struct {
	InputLines    int
	OutputLines   int
	SwivelsAdded  int
	BytesIn       int64
	BytesOut      int64
	ProcessingTime time.Duration
}

// LineGrowthPercent returns how much longer the output program is than
// the input, as a percentage (swivel insertion always grows the program).
func (s Stats) LineGrowthPercent() float64 {
	if s.InputLines == 0 {
		return 0
	}
	return (float64(s.OutputLines-s.InputLines) / float64(s.InputLines)) * 100.0
}

// FileSizeGrowthPercent returns the output-vs-input byte size delta as a
// percentage.
func (s Stats) FileSizeGrowthPercent() float64 {
	if s.BytesIn == 0 {
		return 0
	}
	return (float64(s.BytesOut-s.BytesIn) / float64(s.BytesIn)) * 100.0
}

// CountSwivels counts how many lift/arc/plunge triples Rewrite inserts for
// records under cfg, by replaying the same heading comparison against the
// sharp-angle threshold that Rewrite's swivel check makes.
func CountSwivels(records []Record, cfg Config) int {
	count := 0
	var prevAngle *float32
	for _, rec := range records {
		if startAngle, ok := rec.HeadingAtStart(); ok && prevAngle != nil {
			if math32.Abs(SignedDelta(*prevAngle, startAngle)) > cfg.SharpAngleThreshold {
				count++
			}
		}
		if a, ok := rec.HeadingAtEnd(); ok {
			prevAngle = &a
		} else {
			prevAngle = nil
		}
	}
	return count
}
