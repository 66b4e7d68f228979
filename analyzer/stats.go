package analyzer

import "fmt"

// AxisRange is the observed extent of one axis. OK is false when the program
// holds no samples anywhere for the axis.
type AxisRange struct {
	Min float64
	Max float64
	OK  bool
}

// String formats the range with three decimal places, or "---" without data.
func (r AxisRange) String() string {
	if !r.OK {
		return "---"
	}

	return fmt.Sprintf("%.3f ~ %.3f", r.Min, r.Max)
}

// GlobalStats summarizes a whole program: per-axis extremes over the union of
// rapid and cut samples across every block, plus the largest spindle and feed
// commands seen (0 when none were recorded).
type GlobalStats struct {
	Axes       map[Axis]AxisRange
	MaxSpindle float64
	MaxFeed    float64
}

// GlobalStats recomputes the whole-program summary. It is a pure function of
// the program and may be called from any number of goroutines.
func (p Program) GlobalStats() GlobalStats {
	stats := GlobalStats{Axes: make(map[Axis]AxisRange, len(Axes))}

	for _, axis := range Axes {
		var r AxisRange

		for _, blk := range p {
			lo, hi, ok := blk.RawMinMax(axis, ModeBoth)
			if !ok {
				continue
			}

			if !r.OK {
				r = AxisRange{Min: lo, Max: hi, OK: true}
			} else {
				r.Min = min(r.Min, lo)
				r.Max = max(r.Max, hi)
			}
		}

		stats.Axes[axis] = r
	}

	for _, blk := range p {
		s, f := blk.MaxSpindleAndFeed()
		stats.MaxSpindle = max(stats.MaxSpindle, s)
		stats.MaxFeed = max(stats.MaxFeed, f)
	}

	return stats
}
