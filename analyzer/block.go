package analyzer

import "fmt"

// Axis identifies a machine axis tracked by the analyzer.
type Axis string

const (
	AxisX Axis = "X"
	AxisY Axis = "Y"
	AxisZ Axis = "Z"
)

// Axes lists the tracked axes in display order.
var Axes = []Axis{AxisX, AxisY, AxisZ}

// Mode selects which motion samples a block query covers.
type Mode int

const (
	// ModeRapid covers G00 positioning moves only.
	ModeRapid Mode = iota
	// ModeCut covers G01/G02/G03 cutting moves only.
	ModeCut
	// ModeBoth covers the union of rapid and cut samples.
	ModeBoth
)

// NoData is the placeholder returned for range queries over empty sample sets.
const NoData = "-"

// Block accumulates the coordinate, spindle, and feed samples of one named
// program segment, plus any safety violations raised while it was current.
// Coordinate samples are partitioned by the motion mode active when they were
// read: a sample lands in exactly one of rapid or cut, never both.
type Block struct {
	Name    string
	Spindle []float64
	Feed    []float64
	Errors  []string

	rapid map[Axis][]float64
	cut   map[Axis][]float64
}

// NewBlock creates an empty block with the given display name.
func NewBlock(name string) *Block {
	return &Block{
		Name:  name,
		rapid: map[Axis][]float64{AxisX: nil, AxisY: nil, AxisZ: nil},
		cut:   map[Axis][]float64{AxisX: nil, AxisY: nil, AxisZ: nil},
	}
}

// AddValue appends a coordinate sample under the motion mode that was active
// when it was read. Samples for axes the analyzer does not track are dropped.
func (b *Block) AddValue(axis Axis, value float64, rapid bool) {
	target := b.cut
	if rapid {
		target = b.rapid
	}

	if _, ok := target[axis]; !ok {
		return
	}

	target[axis] = append(target[axis], value)
}

func (b *Block) samples(axis Axis, mode Mode) []float64 {
	var vals []float64

	if mode == ModeRapid || mode == ModeBoth {
		vals = append(vals, b.rapid[axis]...)
	}

	if mode == ModeCut || mode == ModeBoth {
		vals = append(vals, b.cut[axis]...)
	}

	return vals
}

// RangeString returns "<min> ~ <max>" with three decimal places over the
// selected samples, or the NoData placeholder when there are none.
func (b *Block) RangeString(axis Axis, mode Mode) string {
	lo, hi, ok := b.RawMinMax(axis, mode)
	if !ok {
		return NoData
	}

	return fmt.Sprintf("%.3f ~ %.3f", lo, hi)
}

// RawMinMax returns the numeric extremes over the selected samples. ok is
// false when the block holds no samples for that axis and mode.
func (b *Block) RawMinMax(axis Axis, mode Mode) (lo, hi float64, ok bool) {
	vals := b.samples(axis, mode)
	if len(vals) == 0 {
		return 0, 0, false
	}

	lo, hi = vals[0], vals[0]
	for _, v := range vals[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	return lo, hi, true
}

// MaxSpindleAndFeed returns the largest spindle and feed commands recorded in
// the block, or 0 for either when none were recorded.
func (b *Block) MaxSpindleAndFeed() (maxS, maxF float64) {
	for _, s := range b.Spindle {
		maxS = max(maxS, s)
	}

	for _, f := range b.Feed {
		maxF = max(maxF, f)
	}

	return maxS, maxF
}
