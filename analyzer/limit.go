package analyzer

import (
	"fmt"
	"strconv"
	"strings"
)

// BoundKind names which side of a travel limit was checked.
type BoundKind string

const (
	BoundMin BoundKind = "min"
	BoundMax BoundKind = "max"
)

// Bounds holds the user-supplied travel limits for one axis as text. An empty
// or non-numeric value means the bound is not supplied; it is never an error.
type Bounds struct {
	Min string
	Max string
}

// Verdict is the outcome of a limit check.
type Verdict int

const (
	// VerdictNoConstraints means no supplied bound applied to any axis with
	// recorded samples, so there was nothing to check.
	VerdictNoConstraints Verdict = iota
	// VerdictSafe means at least one bound was checked and all held.
	VerdictSafe
	// VerdictViolation means one or more bounds failed.
	VerdictViolation
)

func (v Verdict) String() string {
	switch v {
	case VerdictNoConstraints:
		return "NO-CONSTRAINTS"
	case VerdictSafe:
		return "SAFE"
	case VerdictViolation:
		return "VIOLATION"
	default:
		return "UNKNOWN"
	}
}

// Violation describes one failed bound.
type Violation struct {
	Axis     Axis
	Kind     BoundKind
	Observed float64
	Limit    float64
}

func (v Violation) String() string {
	if v.Kind == BoundMax {
		return fmt.Sprintf("%s max violation: %g > %g", v.Axis, v.Observed, v.Limit)
	}

	return fmt.Sprintf("%s min violation: %g < %g", v.Axis, v.Observed, v.Limit)
}

// LimitResult is the verdict plus every individual bound failure.
type LimitResult struct {
	Verdict    Verdict
	Violations []Violation
}

// CheckLimits compares the recorded axis extremes against optional per-axis
// bounds. Axes without recorded samples are skipped: their bounds are not
// checked and not reported.
func (s GlobalStats) CheckLimits(bounds map[Axis]Bounds) LimitResult {
	var res LimitResult

	checked := 0

	for _, axis := range Axes {
		r := s.Axes[axis]
		if !r.OK {
			continue
		}

		b := bounds[axis]

		if lo, ok := parseBound(b.Min); ok {
			checked++

			if r.Min < lo {
				res.Violations = append(res.Violations, Violation{Axis: axis, Kind: BoundMin, Observed: r.Min, Limit: lo})
			}
		}

		if hi, ok := parseBound(b.Max); ok {
			checked++

			if r.Max > hi {
				res.Violations = append(res.Violations, Violation{Axis: axis, Kind: BoundMax, Observed: r.Max, Limit: hi})
			}
		}
	}

	switch {
	case len(res.Violations) > 0:
		res.Verdict = VerdictViolation
	case checked > 0:
		res.Verdict = VerdictSafe
	default:
		res.Verdict = VerdictNoConstraints
	}

	return res
}

func parseBound(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false // malformed bound text counts as not supplied
	}

	return v, true
}
