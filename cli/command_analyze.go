package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/mfgkit/nccheck/report"
)

// AnalyzeCmd represents the analyze command
type AnalyzeCmd struct {
	File    string `arg:"" help:"NC program file" type:"path"`
	Machine string `short:"m" help:"Machine profile (FANUC_Lathe, OSP_Mill, TOSNUC_Mill)"`
	Format  string `help:"Output format (text, csv, json, yaml)"`
	Output  string `short:"o" long:"output" help:"Output file (defaults to stdout)" type:"path"`
}

// Run executes the analyze command
func (a *AnalyzeCmd) Run(ctx *Context) error {
	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	profile, err := resolveProfile(a.Machine, config)
	if err != nil {
		return err
	}

	format := a.Format
	if format == "" {
		format = config.Output.Format
	}

	if !report.IsValidOutputFormat(format) {
		return fmt.Errorf("%w: %s", report.ErrInvalidOutputFormat, format)
	}

	if ctx.Verbose {
		color.Blue("Analyzing %s with profile %s", a.File, profile)
	}

	rep, err := analyzeFile(a.File, profile)
	if err != nil {
		return err
	}

	output := os.Stdout
	if a.Output != "" {
		f, err := os.Create(a.Output)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrOutputFileCreation, a.Output)
		}
		defer f.Close()

		output = f
	}

	formatter := report.NewFormatter(report.OutputFormat(strings.ToLower(format)))
	if err := formatter.Write(rep, output); err != nil {
		return err
	}

	// The terminal summary only makes sense when the report itself went to
	// a file.
	if a.Output != "" && !ctx.Quiet {
		if count := len(rep.ErrorLog()); count > 0 {
			color.Red("%d safety error(s) found, report written to %s", count, a.Output)
		} else {
			color.Green("Report written to %s", a.Output)
		}
	}

	return nil
}
