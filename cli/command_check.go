package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/mfgkit/nccheck/analyzer"
)

// ErrLimitViolation is returned when the program travels outside the limits.
var ErrLimitViolation = errors.New("axis limit violation")

// CheckCmd represents the check command
type CheckCmd struct {
	File    string `arg:"" help:"NC program file" type:"path"`
	Machine string `short:"m" help:"Machine profile (FANUC_Lathe, OSP_Mill, TOSNUC_Mill)"`
	XMin    string `name:"x-min" help:"Lower X travel limit"`
	XMax    string `name:"x-max" help:"Upper X travel limit"`
	YMin    string `name:"y-min" help:"Lower Y travel limit"`
	YMax    string `name:"y-max" help:"Upper Y travel limit"`
	ZMin    string `name:"z-min" help:"Lower Z travel limit"`
	ZMax    string `name:"z-max" help:"Upper Z travel limit"`
}

// Run executes the check command
func (c *CheckCmd) Run(ctx *Context) error {
	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	profile, err := resolveProfile(c.Machine, config)
	if err != nil {
		return err
	}

	rep, err := analyzeFile(c.File, profile)
	if err != nil {
		return err
	}

	// Flags override configured limits per field.
	bounds := configBounds(config)
	overrideBounds(bounds, analyzer.AxisX, c.XMin, c.XMax)
	overrideBounds(bounds, analyzer.AxisY, c.YMin, c.YMax)
	overrideBounds(bounds, analyzer.AxisZ, c.ZMin, c.ZMax)

	result := rep.Stats.CheckLimits(bounds)

	switch result.Verdict {
	case analyzer.VerdictViolation:
		for _, v := range result.Violations {
			color.Red("NG %s", v)
		}

		return fmt.Errorf("%w: %d bound(s) failed", ErrLimitViolation, len(result.Violations))
	case analyzer.VerdictNoConstraints:
		if !ctx.Quiet {
			color.Yellow("NO-CONSTRAINTS: no limits to check")
		}
	case analyzer.VerdictSafe:
		if !ctx.Quiet {
			color.Green("SAFE")
		}
	}

	return nil
}

func overrideBounds(bounds map[analyzer.Axis]analyzer.Bounds, axis analyzer.Axis, minText, maxText string) {
	b := bounds[axis]

	if minText != "" {
		b.Min = minText
	}

	if maxText != "" {
		b.Max = maxText
	}

	bounds[axis] = b
}
