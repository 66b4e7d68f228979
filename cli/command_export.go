package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/mfgkit/nccheck/report"
)

// ExportCmd represents the export command
type ExportCmd struct {
	File    string `arg:"" help:"NC program file" type:"path"`
	Machine string `short:"m" help:"Machine profile (FANUC_Lathe, OSP_Mill, TOSNUC_Mill)"`
	Output  string `short:"o" long:"output" help:"Output CSV file (defaults to Report_<file>.csv)" type:"path"`
}

// Run executes the export command
func (e *ExportCmd) Run(ctx *Context) error {
	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	profile, err := resolveProfile(e.Machine, config)
	if err != nil {
		return err
	}

	rep, err := analyzeFile(e.File, profile)
	if err != nil {
		return err
	}

	output := e.Output
	if output == "" {
		output = "Report_" + filepath.Base(e.File) + ".csv"
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrOutputFileCreation, output)
	}
	defer f.Close()

	if err := report.NewFormatter(report.FormatCSV).Write(rep, f); err != nil {
		return err
	}

	if !ctx.Quiet {
		color.Green("Report written to %s", output)
	}

	return nil
}
