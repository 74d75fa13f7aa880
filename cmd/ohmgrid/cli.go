// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/plan-systems/klog"
)

// ExitError carries the process exit status out of run.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// config is the parsed command line.
type config struct {
	N         int
	Verify    bool
	DotDir    string
	CacheDir  string
	SuitePath string
}

// parse processes args. It returns the config, whether the program should
// exit cleanly right away (help), or an *ExitError with status 2.
func parse(args []string, output io.Writer) (*config, bool, error) {
	fs := flag.NewFlagSet("ohmgrid", flag.ContinueOnError)
	fs.SetOutput(output)
	klog.InitFlags(fs)

	fs.Usage = func() {
		fmt.Fprint(output, `
ohmgrid - equivalent resistance of the 2N×2N unit resistor lattice between
(N-1,N-1) and (N,N), by symmetry folding, series/parallel and Y-Δ reduction.

Usage:
  ohmgrid [options]

Options:
`)
		fs.PrintDefaults()
	}

	cfg := &config{}
	fs.IntVar(&cfg.N, "n", 3, "Half side of the lattice (side = 2n).")
	fs.BoolVar(&cfg.Verify, "verify", false, "Cross-check the result by nodal analysis.")
	fs.StringVar(&cfg.DotDir, "dot", "", "Write one Graphviz file per reduction stage into this directory.")
	fs.StringVar(&cfg.CacheDir, "cache", "", "Directory of the persistent result cache. Empty disables it.")
	fs.StringVar(&cfg.SuitePath, "suite", "", "Run the HCL regression suite at this path instead of a single n.")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", fs.Arg(0))}
	}
	if cfg.SuitePath == "" && cfg.N < 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid -n %d: must be ≥ 1", cfg.N)}
	}

	return cfg, false, nil
}
