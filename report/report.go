// Package report assembles the result of one analysis run and renders it for
// the terminal or for export.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mfgkit/nccheck"
	"github.com/mfgkit/nccheck/analyzer"
)

// Report bundles one completed analysis run for rendering.
type Report struct {
	ID        string
	File      string
	Profile   nccheck.Profile
	Generated time.Time
	Program   analyzer.Program
	Stats     analyzer.GlobalStats
}

// New assembles a report for an analyzed program.
func New(file string, profile nccheck.Profile, program analyzer.Program) *Report {
	return &Report{
		ID:        uuid.NewString(),
		File:      file,
		Profile:   profile,
		Generated: time.Now(),
		Program:   program,
		Stats:     program.GlobalStats(),
	}
}

// ErrorLog collects every block error in program order, prefixed with the
// block name.
func (r *Report) ErrorLog() []string {
	var msgs []string

	for _, blk := range r.Program {
		for _, err := range blk.Errors {
			msgs = append(msgs, fmt.Sprintf("%s: %s", blk.Name, err))
		}
	}

	return msgs
}
