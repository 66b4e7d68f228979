package analyzer

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/mfgkit/nccheck"
)

func TestAnalyzeAlwaysReturnsHeaderBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "blank lines", input: "\n\n   \n"},
		{name: "line comments only", input: "; setup notes\n;O1234\n"},
		{name: "invalid tokens only", input: "@@@\n???\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program := New(nccheck.ProfileFanucLathe).Analyze(tt.input)

			assert.Equal(t, 1, len(program))
			assert.Equal(t, HeaderBlockName, program[0].Name)

			for _, axis := range Axes {
				_, _, ok := program[0].RawMinMax(axis, ModeBoth)
				assert.False(t, ok)
			}
		})
	}
}

func TestAnalyzeExample(t *testing.T) {
	source := "G0 X10 Y5\nG1 X20 Z-3\n(Facing) G96 S500 F0.2"

	program := New(nccheck.ProfileFanucLathe).Analyze(source)

	assert.Equal(t, 2, len(program))

	header := program[0]
	assert.Equal(t, HeaderBlockName, header.Name)

	lo, hi, ok := header.RawMinMax(AxisX, ModeRapid)
	assert.True(t, ok)
	assert.Equal(t, 10.0, lo)
	assert.Equal(t, 10.0, hi)

	lo, hi, ok = header.RawMinMax(AxisY, ModeRapid)
	assert.True(t, ok)
	assert.Equal(t, 5.0, lo)
	assert.Equal(t, 5.0, hi)

	lo, hi, ok = header.RawMinMax(AxisX, ModeCut)
	assert.True(t, ok)
	assert.Equal(t, 20.0, lo)
	assert.Equal(t, 20.0, hi)

	lo, hi, ok = header.RawMinMax(AxisZ, ModeCut)
	assert.True(t, ok)
	assert.Equal(t, -3.0, lo)
	assert.Equal(t, -3.0, hi)

	facing := program[1]
	assert.Equal(t, "Line3: Facing", facing.Name)
	assert.Equal(t, []float64{500}, facing.Spindle)
	assert.Equal(t, []float64{0.2}, facing.Feed)
	assert.Equal(t, 1, len(facing.Errors))
	assert.Contains(t, facing.Errors[0], "[Line 3]")
	assert.Contains(t, facing.Errors[0], "G96")
}

func TestMotionModeTieBreak(t *testing.T) {
	// A line with both G0 and G1 classifies its coordinates as cut: the cut
	// check runs after the rapid check.
	program := New(nccheck.ProfileOSPMill).Analyze("G0 G1 X5")

	_, _, rapidOK := program[0].RawMinMax(AxisX, ModeRapid)
	assert.False(t, rapidOK)

	lo, _, cutOK := program[0].RawMinMax(AxisX, ModeCut)
	assert.True(t, cutOK)
	assert.Equal(t, 5.0, lo)
}

func TestMotionModeSurvivesCodelessLines(t *testing.T) {
	// S1200 carries no G number, so the cut mode from line 1 still applies
	// on line 3.
	program := New(nccheck.ProfileOSPMill).Analyze("G1 X1\nS1200\nX2")

	lo, hi, ok := program[0].RawMinMax(AxisX, ModeCut)
	assert.True(t, ok)
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 2.0, hi)
	assert.Equal(t, []float64{1200}, program[0].Spindle)
}

func TestBlockBoundaryBeforeTokenExtraction(t *testing.T) {
	// Tokens on a comment line populate the newly opened block.
	program := New(nccheck.ProfileOSPMill).Analyze("G0 X1\n(Roughing) G1 X5")

	assert.Equal(t, 2, len(program))
	assert.Equal(t, "Line2: Roughing", program[1].Name)

	lo, _, ok := program[1].RawMinMax(AxisX, ModeCut)
	assert.True(t, ok)
	assert.Equal(t, 5.0, lo)

	_, _, ok = program[0].RawMinMax(AxisX, ModeCut)
	assert.False(t, ok)
}

func TestLineCommentHandling(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		blocks int
	}{
		{
			// The whole line is a ';' comment, so it is skipped even though
			// it contains parentheses.
			name:   "comment-only line never opens a block",
			input:  ";(skip me)",
			blocks: 1,
		},
		{
			// Parenthesized comments are a distinct syntax: one after the
			// ';' marker still opens a block.
			name:   "paren comment after semicolon opens a block",
			input:  "G0 ;(note)",
			blocks: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program := New(nccheck.ProfileFanucLathe).Analyze(tt.input)
			assert.Equal(t, tt.blocks, len(program))
		})
	}
}

func TestLineCommentStripsTokens(t *testing.T) {
	program := New(nccheck.ProfileOSPMill).Analyze("G1 X5 ; X99 S400")

	lo, hi, ok := program[0].RawMinMax(AxisX, ModeCut)
	assert.True(t, ok)
	assert.Equal(t, 5.0, lo)
	assert.Equal(t, 5.0, hi)
	assert.Equal(t, 0, len(program[0].Spindle))
}

func TestMalformedCoordinateDropped(t *testing.T) {
	// "X" with no trailing number does not match the coordinate pattern;
	// the Y token on the same line is still extracted.
	program := New(nccheck.ProfileOSPMill).Analyze("G1 X Y5")

	_, _, ok := program[0].RawMinMax(AxisX, ModeBoth)
	assert.False(t, ok)

	lo, _, ok := program[0].RawMinMax(AxisY, ModeCut)
	assert.True(t, ok)
	assert.Equal(t, 5.0, lo)
}

func TestSpindleAndFeedFirstMatchOnly(t *testing.T) {
	program := New(nccheck.ProfileOSPMill).Analyze("G1 S100 S900 F0.1 F9.9")

	assert.Equal(t, []float64{100}, program[0].Spindle)
	assert.Equal(t, []float64{0.1}, program[0].Feed)
}

func TestSpindleLimitViolation(t *testing.T) {
	program := New(nccheck.ProfileFanucLathe).Analyze("G96 S200\nG96 S300")

	assert.Equal(t, 2, len(program[0].Errors))
	assert.Contains(t, program[0].Errors[0], "[Line 1]")
	assert.Contains(t, program[0].Errors[1], "[Line 2]")
}

func TestSpindleLimitLatchIsMonotonic(t *testing.T) {
	// Once G50 is seen, no later G96 can raise the violation.
	program := New(nccheck.ProfileFanucLathe).Analyze("G50 S2000\nG96 S200\nG96 S300\nG96 S400")

	for _, blk := range program {
		assert.Equal(t, 0, len(blk.Errors))
	}
}

func TestSpindleLimitCheckIsProfileGated(t *testing.T) {
	for _, profile := range []nccheck.Profile{nccheck.ProfileOSPMill, nccheck.ProfileTosnucMill} {
		t.Run(string(profile), func(t *testing.T) {
			program := New(profile).Analyze("G96 S200")
			assert.Equal(t, 0, len(program[0].Errors))
		})
	}
}
