// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/emicklei/dot"

	"github.com/katalvlaran/ohmgrid/network"
	"github.com/katalvlaran/ohmgrid/reduce"
)

// ErrNilNetwork is returned for a stage without a network snapshot.
var ErrNilNetwork = errors.New("render: stage has no network")

// WriteDOT writes st as an undirected Graphviz graph to w. Nodes are pinned
// at their lattice coordinate, terminals are filled red and the open edge
// between them is dashed.
func WriteDOT(w io.Writer, st reduce.Stage) error {
	nw := st.Network
	if nw == nil {
		return fmt.Errorf("WriteDOT(%q): %w", st.Label, ErrNilNetwork)
	}
	g := dot.NewGraph(dot.Undirected)
	g.ID(strconv.Quote(st.Label))
	g.Label(fmt.Sprintf("%s [%s]", st.Label, st.State))

	nodes := make(map[network.NodeID]dot.Node, nw.NodeCount())
	for _, id := range nw.Nodes() {
		c, _ := nw.Coord(id)
		n := g.Node(c.String()).
			Attr("shape", "circle").
			Attr("fontsize", 10).
			Attr("pos", fmt.Sprintf("%d,%d!", c.Col, -c.Row))
		if nw.IsTerminal(id) {
			n.Attr("style", "filled").Attr("fillcolor", "red")
		}
		nodes[id] = n
	}
	for _, e := range nw.Edges() {
		if e.Open {
			g.Edge(nodes[e.From], nodes[e.To], "open").Dashed()
			continue
		}
		g.Edge(nodes[e.From], nodes[e.To], fmt.Sprintf("%.3f", e.Weight))
	}

	bw := bufio.NewWriter(w)
	g.Write(bw)

	return bw.Flush()
}

// FileName returns the file WriteStages uses for stage i: "NN-label.dot",
// with the label lower-cased and spaces replaced by dashes.
func FileName(i int, label string) string {
	slug := strings.ToLower(strings.Join(strings.Fields(label), "-"))

	return fmt.Sprintf("%02d-%s.dot", i, slug)
}

// WriteStages writes each stage to dir/FileName(i, label), creating dir if
// needed, and returns the written paths in stage order.
func WriteStages(dir string, stages []reduce.Stage) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("WriteStages: %w", err)
	}
	paths := make([]string, 0, len(stages))
	for i, st := range stages {
		path := filepath.Join(dir, FileName(i, st.Label))
		if err := writeFile(path, st); err != nil {
			return paths, fmt.Errorf("WriteStages: %w", err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func writeFile(path string, st reduce.Stage) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return WriteDOT(f, st)
}
