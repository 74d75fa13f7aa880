// SPDX-License-Identifier: MIT
//
// File: solver.go
// Role: Reduction orchestrator. Drives a built lattice through the state
// machine and assembles the Result.

package reduce

import (
	"errors"
	"fmt"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/ohmgrid/builder"
	"github.com/katalvlaran/ohmgrid/network"
)

// Stage labels, in pipeline order.
const (
	LabelOriginal  = "original"
	LabelFolded    = "folded graph"
	LabelContract  = "contracted graph"
	LabelSeriesPar = "simplify series and parallel"
	LabelDeltaY    = "Delta-Y Transform"
)

// Stage is a labelled snapshot of the network taken after a pipeline step.
// Network is a private deep copy; mutating it does not affect the reduction.
type Stage struct {
	Label   string
	State   State
	Network *network.Network
}

// Result is the outcome of one Reduce call.
type Result struct {
	State      State
	Resistance float64 // valid only when State == StateSolved
	Iterations [2]int  // phase A, phase B
	Stages     []Stage // empty unless WithSnapshots was given
	Final      *network.Network
}

// pass is one transform applied to the whole network.
type pass func(*network.Network) (int, error)

// foldPass is a symmetry fold for the n-lattice.
type foldPass func(*network.Network, int) (int, error)

// Solve builds the n-lattice with unit resistors and reduces it.
// Errors from the builder (builder.ErrTooSmall) are returned as is.
func Solve(n int, opts ...Option) (*Result, error) {
	nw, err := builder.BuildLattice(n)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	return Reduce(nw, n, opts...)
}

// Reduce runs the full pipeline on nw, which it mutates in place:
// fold, phase A (prune; series), phase B (Y-Δ; series), then Extract.
// A fold whose mirror symmetry does not hold for nw is skipped.
//
// On STUCK the returned Result is non-nil and holds the partial network in
// Final; the error wraps ErrStuck (or ErrDisconnected).
func Reduce(nw *network.Network, n int, opts ...Option) (*Result, error) {
	if _, _, ok := nw.Terminals(); !ok {
		return nil, fmt.Errorf("Reduce: %w", ErrNoTerminals)
	}
	cfg := newConfig(opts...)
	res := &Result{State: StateBuilt, Final: nw}
	res.record(cfg, LabelOriginal, nw)

	if err := foldIfSymmetric(nw, n, "diagonal", FoldDiagonal); err != nil {
		return res, fmt.Errorf("Reduce: %w", err)
	}
	res.record(cfg, LabelFolded, nw)
	if err := foldIfSymmetric(nw, n, "anti-diagonal", FoldAntiDiagonal); err != nil {
		return res, fmt.Errorf("Reduce: %w", err)
	}
	res.State = StateFolded
	res.record(cfg, LabelContract, nw)

	res.State = StatePhaseAIterating
	it, err := fixpoint(nw, "phase A", cfg.iterationCap, PruneLeaves, ReduceSeries)
	res.Iterations[0] = it
	if err != nil {
		return res, fmt.Errorf("Reduce: %w", err)
	}
	res.State = StatePhaseADone
	res.record(cfg, LabelSeriesPar, nw)

	res.State = StatePhaseBIterating
	it, err = fixpoint(nw, "phase B", cfg.iterationCap, TransformDeltaY, ReduceSeries)
	res.Iterations[1] = it
	if err != nil {
		return res, fmt.Errorf("Reduce: %w", err)
	}
	res.State = StatePhaseBDone
	res.record(cfg, LabelDeltaY, nw)

	r, err := Extract(nw)
	if err != nil {
		res.State = StateStuck
		if errors.Is(err, ErrStuck) || errors.Is(err, ErrDisconnected) {
			klog.V(1).Infof("reduce: n=%d stuck with %d nodes, %d edges", n, nw.NodeCount(), nw.EdgeCount())
		}
		return res, fmt.Errorf("Reduce: %w", err)
	}
	res.State = StateSolved
	res.Resistance = r
	klog.V(1).Infof("reduce: n=%d solved, R_eq=%g", n, r)

	return res, nil
}

// foldIfSymmetric runs fold and treats ErrAsymmetric as "nothing to fold":
// the network is left as built and the general transforms take over.
func foldIfSymmetric(nw *network.Network, n int, axis string, fold foldPass) error {
	_, err := fold(nw, n)
	if errors.Is(err, ErrAsymmetric) {
		klog.V(1).Infof("reduce: n=%d skipping %s fold: %v", n, axis, err)
		return nil
	}

	return err
}

// fixpoint applies the passes in order until the signature stops changing,
// one edge is left or the cap is reached. A zero cap means nodeCount+1.
// Returns the number of iterations run.
func fixpoint(nw *network.Network, name string, limit int, passes ...pass) (int, error) {
	if limit == 0 {
		limit = nw.NodeCount() + 1
	}
	for i := 1; i <= limit; i++ {
		before := nw.Signature()
		for _, p := range passes {
			if _, err := p(nw); err != nil {
				return i, fmt.Errorf("%s iteration %d: %w", name, i, err)
			}
		}
		if nw.EdgeCount() == 1 || nw.Signature() == before {
			klog.V(1).Infof("reduce: %s settled after %d iterations, %d nodes / %d edges", name, i, nw.NodeCount(), nw.EdgeCount())
			return i, nil
		}
	}
	klog.Warningf("reduce: %s hit the iteration cap %d with %d nodes / %d edges", name, limit, nw.NodeCount(), nw.EdgeCount())

	return limit, nil
}

func (r *Result) record(cfg config, label string, nw *network.Network) {
	if !cfg.recording() {
		return
	}
	st := Stage{Label: label, State: r.State, Network: nw.Clone()}
	if cfg.snapshots {
		r.Stages = append(r.Stages, st)
	}
	if cfg.observer != nil {
		cfg.observer(st)
	}
}
