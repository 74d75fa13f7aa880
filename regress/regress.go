// SPDX-License-Identifier: MIT

// Package regress runs an HCL-described suite of lattice sizes against a
// solver and reports which expected resistances were reproduced.
//
// A suite file holds one block per case:
//
//	case "n2" {
//	  n         = 2
//	  expected  = 5 / 7
//	  tolerance = 1e-9 # optional, relative
//	}
//
// Expressions are plain HCL arithmetic, so exact fractions can be written
// as such.
package regress

import (
	"errors"
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultTolerance is the relative tolerance of a case without one.
const DefaultTolerance = 1e-9

// ErrEmptySuite is returned by Load for a file without case blocks.
var ErrEmptySuite = errors.New("regress: suite has no cases")

// Case is one expected result.
type Case struct {
	Name      string   `hcl:"name,label"`
	N         int      `hcl:"n"`
	Expected  float64  `hcl:"expected"`
	Tolerance *float64 `hcl:"tolerance,optional"`
}

// Suite is an ordered list of cases.
type Suite struct {
	Path  string
	Cases []Case
}

type suiteFile struct {
	Cases []Case `hcl:"case,block"`
}

// Outcome is the result of running one Case.
type Outcome struct {
	Case Case
	Got  float64
	Err  error
	Pass bool
}

// Load parses the suite at path.
func Load(path string) (*Suite, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse suite %s: %w", path, diags)
	}

	var parsed suiteFile
	if diags = gohcl.DecodeBody(f.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode suite %s: %w", path, diags)
	}
	if len(parsed.Cases) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptySuite)
	}

	return &Suite{Path: path, Cases: parsed.Cases}, nil
}

// Run solves every case in order. A case passes when solve succeeds and
// the result lies within the case tolerance of Expected (relative).
func (s *Suite) Run(solve func(n int) (float64, error)) []Outcome {
	out := make([]Outcome, 0, len(s.Cases))
	for _, c := range s.Cases {
		got, err := solve(c.N)
		out = append(out, Outcome{
			Case: c,
			Got:  got,
			Err:  err,
			Pass: err == nil && within(got, c.Expected, c.tolerance()),
		})
	}

	return out
}

// Failed returns the outcomes that did not pass.
func Failed(outcomes []Outcome) []Outcome {
	var bad []Outcome
	for _, o := range outcomes {
		if !o.Pass {
			bad = append(bad, o)
		}
	}

	return bad
}

func (c Case) tolerance() float64 {
	if c.Tolerance == nil {
		return DefaultTolerance
	}

	return *c.Tolerance
}

func within(got, want, tol float64) bool {
	if want == 0 {
		return math.Abs(got) <= tol
	}

	return math.Abs(got-want) <= tol*math.Abs(want)
}

// String renders the outcome as one report line.
func (o Outcome) String() string {
	switch {
	case o.Err != nil:
		return fmt.Sprintf("FAIL %s (n=%d): %v", o.Case.Name, o.Case.N, o.Err)
	case !o.Pass:
		return fmt.Sprintf("FAIL %s (n=%d): got %.12g, want %.12g", o.Case.Name, o.Case.N, o.Got, o.Case.Expected)
	default:
		return fmt.Sprintf("ok   %s (n=%d): %.12g", o.Case.Name, o.Case.N, o.Got)
	}
}
