package render_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ohmgrid/builder"
	"github.com/katalvlaran/ohmgrid/reduce"
	"github.com/katalvlaran/ohmgrid/render"
)

func TestWriteDOT_Lattice(t *testing.T) {
	nw, err := builder.BuildLattice(1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.WriteDOT(&buf, reduce.Stage{Label: reduce.LabelOriginal, Network: nw}))
	out := buf.String()

	require.True(t, strings.HasPrefix(out, `graph "original" {`))
	require.Contains(t, out, `label="original [BUILT]"`)
	for _, frag := range []string{
		`[fillcolor="red",fontsize="10",label="(0,0)",pos="0,0!",shape="circle",style="filled"];`,
		`[fontsize="10",label="(0,1)",pos="1,0!",shape="circle"];`,
		`[fontsize="10",label="(1,0)",pos="0,-1!",shape="circle"];`,
		`[fillcolor="red",fontsize="10",label="(1,1)",pos="1,-1!",shape="circle",style="filled"];`,
		`[label="open",style="dashed"];`,
	} {
		require.Contains(t, out, frag)
	}
	require.Equal(t, 5, strings.Count(out, "--"))
	require.Equal(t, 4, strings.Count(out, `[label="1.000"];`))
	require.True(t, strings.HasSuffix(strings.TrimSpace(out), "}"))
}

func TestWriteDOT_NilNetwork(t *testing.T) {
	err := render.WriteDOT(&bytes.Buffer{}, reduce.Stage{Label: "x"})
	require.ErrorIs(t, err, render.ErrNilNetwork)
}

func TestFileName(t *testing.T) {
	require.Equal(t, "00-original.dot", render.FileName(0, reduce.LabelOriginal))
	require.Equal(t, "03-simplify-series-and-parallel.dot", render.FileName(3, reduce.LabelSeriesPar))
	require.Equal(t, "04-delta-y-transform.dot", render.FileName(4, reduce.LabelDeltaY))
}

func TestWriteStages(t *testing.T) {
	res, err := reduce.Solve(2, reduce.WithSnapshots())
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "stages")
	paths, err := render.WriteStages(dir, res.Stages)
	require.NoError(t, err)
	require.Len(t, paths, 5)

	last, err := os.ReadFile(paths[4])
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(last), `graph "Delta-Y Transform" {`))
	require.Contains(t, string(last), `[label="0.714"]`)
}
