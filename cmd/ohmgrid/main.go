// SPDX-License-Identifier: MIT

// Command ohmgrid prints the equivalent resistance of the 2N×2N unit
// resistor lattice between its centre diagonal terminals.
package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/ohmgrid/builder"
	"github.com/katalvlaran/ohmgrid/cache"
	"github.com/katalvlaran/ohmgrid/laplace"
	"github.com/katalvlaran/ohmgrid/reduce"
	"github.com/katalvlaran/ohmgrid/regress"
	"github.com/katalvlaran/ohmgrid/render"
)

// verifyTolerance is the relative gap allowed between the reducer and
// nodal analysis.
const verifyTolerance = 1e-9

func main() {
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	code := 0
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		code = 1
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.Code
		}
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
	}
	klog.Flush()
	os.Exit(code)
}

// run holds the whole program so tests can drive it without exiting.
func run(out io.Writer, args []string) error {
	cfg, shouldExit, err := parse(args, out)
	if err != nil || shouldExit {
		return err
	}

	var store *cache.Store
	if cfg.CacheDir != "" {
		if store, err = cache.Open(cache.Options{Dir: cfg.CacheDir}); err != nil {
			return err
		}
		defer store.Close()
	}
	s := &solver{out: out, cfg: cfg, store: store}

	if cfg.SuitePath != "" {
		return s.runSuite()
	}

	return s.runSingle()
}

type solver struct {
	out   io.Writer
	cfg   *config
	store *cache.Store
}

// solve returns the resistance for n, consulting and filling the cache.
// Stage files are written when -dot is set, also for a STUCK run.
func (s *solver) solve(n int) (float64, error) {
	if s.store != nil && s.cfg.DotDir == "" {
		r, ok, err := s.store.Get(n)
		if err != nil {
			return 0, err
		}
		if ok {
			klog.V(1).Infof("cache hit for n=%d", n)
			return r, nil
		}
	}

	var opts []reduce.Option
	if s.cfg.DotDir != "" {
		opts = append(opts, reduce.WithSnapshots())
	}
	res, err := reduce.Solve(n, opts...)
	if res != nil && s.cfg.DotDir != "" {
		paths, werr := render.WriteStages(s.cfg.DotDir, res.Stages)
		if werr != nil {
			return 0, werr
		}
		klog.V(1).Infof("wrote %d stage files to %s", len(paths), s.cfg.DotDir)
	}
	if err != nil {
		return 0, err
	}
	if s.store != nil {
		if err = s.store.Put(n, res.Resistance); err != nil {
			return 0, err
		}
	}

	return res.Resistance, nil
}

func (s *solver) runSingle() error {
	r, err := s.solve(s.cfg.N)
	switch {
	case errors.Is(err, reduce.ErrStuck), errors.Is(err, reduce.ErrDisconnected):
		klog.V(1).Infof("n=%d: %v", s.cfg.N, err)
		fmt.Fprintln(s.out, "Solution not found")
	case err != nil:
		return err
	default:
		fmt.Fprintf(s.out, "Final equivalent resistance R_eq: %.3f\n", r)
	}

	if s.cfg.Verify {
		if verr := s.verify(s.cfg.N, r, err == nil); verr != nil {
			return verr
		}
	}
	if err != nil {
		return &ExitError{Code: 1}
	}

	return nil
}

// verify recomputes R_eq on a fresh lattice by nodal analysis and, when
// the reducer succeeded, compares the two.
func (s *solver) verify(n int, got float64, solved bool) error {
	nw, err := builder.BuildLattice(n)
	if err != nil {
		return err
	}
	want, err := laplace.Resistance(nw)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Nodal analysis R_eq: %.3f\n", want)
	if solved && math.Abs(got-want) > verifyTolerance*want {
		return &ExitError{Code: 1, Message: fmt.Sprintf("verify: reduction gave %.12g, nodal analysis %.12g", got, want)}
	}

	return nil
}

func (s *solver) runSuite() error {
	suite, err := regress.Load(s.cfg.SuitePath)
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}
	outcomes := suite.Run(s.solve)
	for _, o := range outcomes {
		fmt.Fprintln(s.out, o)
	}
	if bad := regress.Failed(outcomes); len(bad) > 0 {
		return &ExitError{Code: 1, Message: fmt.Sprintf("%d of %d cases failed", len(bad), len(outcomes))}
	}

	return nil
}
