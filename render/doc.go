// Package render writes reduction stages as Graphviz DOT files.
//
// Node positions are pinned to grid coordinates (pos="col,-row!") so that
// `neato -n` draws every stage on the same lattice layout; edges carry their
// resistance as a label and the terminal pair is filled in red.
//
// Nothing in network or reduce imports this package.
package render
