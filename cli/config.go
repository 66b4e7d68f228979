package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mfgkit/nccheck"
	"github.com/mfgkit/nccheck/analyzer"
	"github.com/mfgkit/nccheck/loader"
	"github.com/mfgkit/nccheck/report"
)

// Error definitions
var (
	ErrProgramNotFound    = errors.New("program file not found")
	ErrOutputFileCreation = errors.New("failed to create output file")
)

// Context carries the global CLI options into each command.
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*nccheck.Config, error) {
	return nccheck.LoadConfig(configPath)
}

// resolveProfile picks the machine profile: the command-line flag wins over
// the configured default.
func resolveProfile(flag string, config *nccheck.Config) (nccheck.Profile, error) {
	if flag == "" {
		return config.Machine, nil
	}

	profile := nccheck.Profile(flag)
	if !profile.Valid() {
		return "", fmt.Errorf("%w: %s", nccheck.ErrUnknownProfile, flag)
	}

	return profile, nil
}

// analyzeFile loads, decodes, and scans one program file.
func analyzeFile(path string, profile nccheck.Profile) (*report.Report, error) {
	if !fileExists(path) {
		return nil, fmt.Errorf("%w: %s", ErrProgramNotFound, path)
	}

	text, err := loader.ReadFile(path)
	if err != nil {
		return nil, err
	}

	program := analyzer.New(profile).Analyze(text)

	return report.New(filepath.Base(path), profile, program), nil
}

// configBounds converts the configured per-axis limits to checker bounds.
func configBounds(config *nccheck.Config) map[analyzer.Axis]analyzer.Bounds {
	bounds := make(map[analyzer.Axis]analyzer.Bounds, len(config.Limits))

	for axis, limit := range config.Limits {
		bounds[analyzer.Axis(strings.ToUpper(axis))] = analyzer.Bounds{Min: limit.Min, Max: limit.Max}
	}

	return bounds
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
