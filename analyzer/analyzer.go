// Package analyzer scans numerical-control (G-code) program text into
// per-segment motion and process statistics. The grammar is intentionally
// permissive: tokens are extracted by independent pattern matchers and
// malformed tokens are dropped rather than reported.
package analyzer

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/mfgkit/nccheck"
)

// HeaderBlockName is the display name of the implicit first block.
const HeaderBlockName = "Header / Setup"

// Program is the ordered block sequence produced by one analysis run. It is
// never empty: the implicit header block is always first. A returned Program
// is read-only and safe to share across concurrent readers.
type Program []*Block

// Token matchers. Coordinates, spindle, feed, and G numbers are matched
// against the uppercased comment-stripped line; parenthesized comments
// against the original line.
var (
	reComment = regexp.MustCompile(`\((.*?)\)`)
	reCoord   = regexp.MustCompile(`([XYZ])\s*(-?\d+\.?\d*)`)
	reSpindle = regexp.MustCompile(`S\s*(\d+)`)
	reFeed    = regexp.MustCompile(`F\s*(\d+\.?\d*)`)
	reGCode   = regexp.MustCompile(`G(\d+)`)
)

// Analyzer scans NC program text for one machine profile.
type Analyzer struct {
	profile nccheck.Profile
}

// New creates an Analyzer for the given machine profile.
func New(profile nccheck.Profile) *Analyzer {
	return &Analyzer{profile: profile}
}

// scan holds the per-run state machine: the block being filled, the modal
// motion mode, and the one-way G50 latch. One value is created per Analyze
// call so independent analyses never share state.
type scan struct {
	program          Program
	current          *Block
	rapid            bool
	spindleLimitSeen bool
}

// Analyze performs a single sequential pass over the program text and returns
// the completed Program. It never fails: input with no recognizable tokens
// yields a Program holding only an empty header block.
func (a *Analyzer) Analyze(source string) Program {
	s := &scan{rapid: true}
	s.current = NewBlock(HeaderBlockName)
	s.program = append(s.program, s.current)

	for i, line := range strings.Split(source, "\n") {
		a.scanLine(s, i+1, line)
	}

	return s.program
}

func (a *Analyzer) scanLine(s *scan, num int, line string) {
	content, ok := stripLineComment(line)
	if !ok {
		return
	}

	// A parenthesized comment opens a new block, before token extraction:
	// codes on the same line populate the new block, not the one being
	// closed. Detection runs on the original line because (...) is a
	// separate syntax from the ';' line comment.
	if m := reComment.FindStringSubmatch(line); m != nil {
		s.current = NewBlock(fmt.Sprintf("Line%d: %s", num, strings.TrimSpace(m[1])))
		s.program = append(s.program, s.current)
	}

	upper := strings.ToUpper(content)
	gcodes := gcodeNumbers(upper)

	if slices.Contains(gcodes, 0) {
		s.rapid = true
	}
	// The cut check runs second, so a line carrying both G0 and a cutting
	// code ends in cut mode.
	if slices.ContainsFunc(gcodes, func(g int) bool { return g == 1 || g == 2 || g == 3 }) {
		s.rapid = false
	}

	for _, m := range reCoord.FindAllStringSubmatch(upper, -1) {
		val, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue // malformed coordinate, dropped
		}

		s.current.AddValue(Axis(m[1]), val, s.rapid)
	}

	if m := reSpindle.FindStringSubmatch(upper); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			s.current.Spindle = append(s.current.Spindle, v)
		}
	}

	if m := reFeed.FindStringSubmatch(upper); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			s.current.Feed = append(s.current.Feed, v)
		}
	}

	if a.profile.ChecksSpindleLimit() {
		if slices.Contains(gcodes, 50) {
			s.spindleLimitSeen = true
		}

		if slices.Contains(gcodes, 96) && !s.spindleLimitSeen {
			s.current.Errors = append(s.current.Errors,
				fmt.Sprintf("[Line %d] G96 constant surface speed engaged without a prior G50 spindle limit", num))
		}
	}
}

// stripLineComment drops everything from the first ';' and trims whitespace.
// ok is false when nothing remains and the line should be skipped.
func stripLineComment(line string) (content string, ok bool) {
	content = line
	if idx := strings.IndexByte(content, ';'); idx >= 0 {
		content = content[:idx]
	}

	content = strings.TrimSpace(content)

	return content, content != ""
}

func gcodeNumbers(line string) []int {
	matches := reGCode.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return nil
	}

	nums := make([]int, 0, len(matches))

	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		nums = append(nums, n)
	}

	return nums
}
