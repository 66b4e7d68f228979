package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/mfgkit/nccheck/analyzer"
)

// ErrInvalidOutputFormat is returned for formats the formatter does not know.
var ErrInvalidOutputFormat = errors.New("invalid output format")

// OutputFormat designates a report rendering.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatCSV  OutputFormat = "csv"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// IsValidOutputFormat checks if the output format is valid
func IsValidOutputFormat(format string) bool {
	f := OutputFormat(strings.ToLower(format))
	return f == FormatText || f == FormatCSV || f == FormatJSON || f == FormatYAML
}

// Formatter renders a report in one output format.
type Formatter struct {
	Format OutputFormat
}

// NewFormatter creates a new report formatter
func NewFormatter(format OutputFormat) *Formatter {
	return &Formatter{
		Format: format,
	}
}

// Write renders the report according to the configured format.
func (f *Formatter) Write(r *Report, output io.Writer) error {
	switch f.Format {
	case FormatText:
		return f.writeText(r, output)
	case FormatCSV:
		return f.writeCSV(r, output)
	case FormatJSON:
		return f.writeJSON(r, output)
	case FormatYAML:
		return f.writeYAML(r, output)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidOutputFormat, f.Format)
	}
}

// csvHeader is the column layout consumed by downstream report tooling.
var csvHeader = []string{
	"Block Name",
	"G00 Min X", "G00 Max X", "Cut Min X", "Cut Max X",
	"G00 Min Y", "G00 Max Y", "Cut Min Y", "Cut Max Y",
	"G00 Min Z", "G00 Max Z", "Cut Min Z", "Cut Max Z",
	"Max S", "Max F", "Errors",
}

// writeCSV emits one row per block. Min/max cells are empty when the block
// has no samples for that mode and axis.
func (f *Formatter) writeCSV(r *Report, output io.Writer) error {
	w := csv.NewWriter(output)

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, blk := range r.Program {
		row := make([]string, 0, len(csvHeader))
		row = append(row, blk.Name)

		for _, axis := range analyzer.Axes {
			for _, mode := range []analyzer.Mode{analyzer.ModeRapid, analyzer.ModeCut} {
				lo, hi, ok := blk.RawMinMax(axis, mode)
				if ok {
					row = append(row, formatNumber(lo), formatNumber(hi))
				} else {
					row = append(row, "", "")
				}
			}
		}

		maxS, maxF := blk.MaxSpindleAndFeed()
		row = append(row, formatNumber(maxS), formatNumber(maxF), errorCell(blk.Errors))

		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()

	return w.Error()
}

// errorCell renders the Errors column: "OK" when clean, otherwise every
// message joined with " / ".
func errorCell(errs []string) string {
	if len(errs) == 0 {
		return "OK"
	}

	return strings.Join(errs, " / ")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// writeText renders the dashboard, the per-block table, and the error log.
func (f *Formatter) writeText(r *Report, output io.Writer) error {
	fmt.Fprintf(output, "File: %s (profile: %s)\n", r.File, r.Profile)

	for _, axis := range analyzer.Axes {
		fmt.Fprintf(output, "%s: %s\n", axis, r.Stats.Axes[axis])
	}

	fmt.Fprintf(output, "S-Max: %s / F-Max: %s\n\n", formatNumber(r.Stats.MaxSpindle), formatNumber(r.Stats.MaxFeed))

	w := tabwriter.NewWriter(output, 2, 8, 2, ' ', 0)
	fmt.Fprintln(w, "Block\tG00 X\tCut X\tG00 Y\tCut Y\tG00 Z\tCut Z\tMax S\tMax F\tStatus")

	for _, blk := range r.Program {
		maxS, maxF := blk.MaxSpindleAndFeed()

		status := "OK"
		if len(blk.Errors) > 0 {
			status = "WARN"
		}

		feedCell := analyzer.NoData
		if maxF != 0 {
			feedCell = fmt.Sprintf("%.1f", maxF)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			blk.Name,
			blk.RangeString(analyzer.AxisX, analyzer.ModeRapid),
			blk.RangeString(analyzer.AxisX, analyzer.ModeCut),
			blk.RangeString(analyzer.AxisY, analyzer.ModeRapid),
			blk.RangeString(analyzer.AxisY, analyzer.ModeCut),
			blk.RangeString(analyzer.AxisZ, analyzer.ModeRapid),
			blk.RangeString(analyzer.AxisZ, analyzer.ModeCut),
			int(maxS),
			feedCell,
			status,
		)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(output)

	log := r.ErrorLog()
	if len(log) == 0 {
		fmt.Fprintln(output, "No safety errors")
		return nil
	}

	for _, msg := range log {
		fmt.Fprintf(output, "NG %s\n", msg)
	}

	return nil
}

// Marshal-friendly document shared by the JSON and YAML renderings.
type reportDoc struct {
	ID        string     `json:"id" yaml:"id"`
	File      string     `json:"file" yaml:"file"`
	Profile   string     `json:"profile" yaml:"profile"`
	Generated string     `json:"generated" yaml:"generated"`
	Global    globalDoc  `json:"global" yaml:"global"`
	Blocks    []blockDoc `json:"blocks" yaml:"blocks"`
}

type globalDoc struct {
	Axes       map[string]*rangeDoc `json:"axes" yaml:"axes"`
	MaxSpindle float64              `json:"max_spindle" yaml:"max_spindle"`
	MaxFeed    float64              `json:"max_feed" yaml:"max_feed"`
}

type blockDoc struct {
	Name   string               `json:"name" yaml:"name"`
	Rapid  map[string]*rangeDoc `json:"rapid" yaml:"rapid"`
	Cut    map[string]*rangeDoc `json:"cut" yaml:"cut"`
	MaxS   float64              `json:"max_s" yaml:"max_s"`
	MaxF   float64              `json:"max_f" yaml:"max_f"`
	Errors []string             `json:"errors,omitempty" yaml:"errors,omitempty"`
}

type rangeDoc struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

func buildDoc(r *Report) reportDoc {
	doc := reportDoc{
		ID:        r.ID,
		File:      r.File,
		Profile:   string(r.Profile),
		Generated: r.Generated.Format(time.RFC3339),
		Global: globalDoc{
			Axes:       make(map[string]*rangeDoc, len(analyzer.Axes)),
			MaxSpindle: r.Stats.MaxSpindle,
			MaxFeed:    r.Stats.MaxFeed,
		},
	}

	for _, axis := range analyzer.Axes {
		if rng := r.Stats.Axes[axis]; rng.OK {
			doc.Global.Axes[string(axis)] = &rangeDoc{Min: rng.Min, Max: rng.Max}
		} else {
			doc.Global.Axes[string(axis)] = nil
		}
	}

	for _, blk := range r.Program {
		maxS, maxF := blk.MaxSpindleAndFeed()
		bd := blockDoc{
			Name:   blk.Name,
			Rapid:  make(map[string]*rangeDoc, len(analyzer.Axes)),
			Cut:    make(map[string]*rangeDoc, len(analyzer.Axes)),
			MaxS:   maxS,
			MaxF:   maxF,
			Errors: blk.Errors,
		}

		for _, axis := range analyzer.Axes {
			bd.Rapid[string(axis)] = rangeDocFor(blk, axis, analyzer.ModeRapid)
			bd.Cut[string(axis)] = rangeDocFor(blk, axis, analyzer.ModeCut)
		}

		doc.Blocks = append(doc.Blocks, bd)
	}

	return doc
}

func rangeDocFor(blk *analyzer.Block, axis analyzer.Axis, mode analyzer.Mode) *rangeDoc {
	lo, hi, ok := blk.RawMinMax(axis, mode)
	if !ok {
		return nil
	}

	return &rangeDoc{Min: lo, Max: hi}
}

func (f *Formatter) writeJSON(r *Report, output io.Writer) error {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")

	return encoder.Encode(buildDoc(r))
}

func (f *Formatter) writeYAML(r *Report, output io.Writer) error {
	data, err := yaml.Marshal(buildDoc(r))
	if err != nil {
		return fmt.Errorf("failed to marshal report to YAML: %w", err)
	}

	_, err = output.Write(data)

	return err
}
