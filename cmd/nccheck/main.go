package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/mfgkit/nccheck/cli"
)

// CLI represents the command-line interface
var CLI struct {
	Config  string `help:"Configuration file path" default:"nccheck.yaml"`
	Verbose bool   `help:"Enable verbose output" short:"v"`
	Quiet   bool   `help:"Suppress output" short:"q"`

	Analyze cli.AnalyzeCmd `cmd:"" help:"Analyze an NC program and report motion statistics"`
	Check   cli.CheckCmd   `cmd:"" help:"Check program travel against axis limits"`
	Export  cli.ExportCmd  `cmd:"" help:"Export a per-block CSV report"`
	Version VersionCmd     `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run() error {
	fmt.Println("nccheck v0.1.0")
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)

	appCtx := &cli.Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
