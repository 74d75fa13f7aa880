// SPDX-License-Identifier: MIT

package reduce

import "fmt"

// Option customizes a Reduce or Solve call.
// Option constructors panic on invalid arguments; Reduce itself never
// panics on a well-formed network.
type Option func(*config)

type config struct {
	iterationCap int // 0 means nodeCount+1 at the start of each phase
	snapshots    bool
	observer     func(Stage)
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIterationCap fixes the per-phase iteration cap to k.
// Panics if k < 1.
func WithIterationCap(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("reduce: WithIterationCap(%d): cap must be ≥ 1", k))
	}

	return func(c *config) { c.iterationCap = k }
}

// WithSnapshots records a deep copy of the network after every stage in
// Result.Stages.
func WithSnapshots() Option {
	return func(c *config) { c.snapshots = true }
}

// WithObserver calls fn with each stage snapshot as soon as it is taken.
// Panics if fn is nil.
func WithObserver(fn func(Stage)) Option {
	if fn == nil {
		panic("reduce: WithObserver(nil)")
	}

	return func(c *config) { c.observer = fn }
}

func (c config) recording() bool {
	return c.snapshots || c.observer != nil
}
