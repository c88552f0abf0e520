// SPDX-License-Identifier: MIT
package aigfm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jaschutte/aigfm"
	"github.com/stretchr/testify/require"
)

const halfAdderAag = `aag 5 2 0 2 3
2
4
10
6
6 2 4
8 3 5
10 6 8
i0 a
i1 b
o0 sum
o1 carry
c
`

// TestRun_HalfAdder drives the whole pipeline through the façade the same
// way cmd/aigfm does: from a file on disk to a converged Result.
func TestRun_HalfAdder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "half_adder.aag")
	require.NoError(t, os.WriteFile(path, []byte(halfAdderAag), 0o644))

	res, err := aigfm.Run(path)
	require.NoError(t, err)
	require.NotEmpty(t, res.History)
	require.LessOrEqual(t, res.History[len(res.History)-1], 0)

	p := res.Partition
	require.Len(t, p.L(), len(p.Module.Nodes)-len(p.R()))
	require.Equal(t, 60, aigfm.Area(p)) // 3 AND2 at 18 + 2 INV at 3
	require.GreaterOrEqual(t, res.Cut(), 0)
	require.LessOrEqual(t, res.Cut(), len(p.Module.RawEdges))

	b := aigfm.Bounds(p)
	require.True(t, b.Contains(aigfm.AreaLeft(p)))
}

func TestRun_MissingFile(t *testing.T) {
	_, err := aigfm.Run(filepath.Join(t.TempDir(), "nope.aag"))
	require.Error(t, err)
}

// TestPipelineStages walks the façade stage by stage, the programmatic
// surface a front-end would consume instead of Run.
func TestPipelineStages(t *testing.T) {
	a, err := aigfm.Parse(halfAdderAag)
	require.NoError(t, err)

	nl, err := aigfm.NetlistFromAiger(a)
	require.NoError(t, err)
	require.Len(t, nl.Gates, 5)

	m, err := aigfm.ModuleFromNetlist(nl)
	require.NoError(t, err)
	require.Len(t, m.Nodes, 5)

	p, err := aigfm.InitialPartition(m)
	require.NoError(t, err)

	history := aigfm.FMAlgorithm(p)
	require.NotEmpty(t, history)
	require.Len(t, aigfm.L(p), len(m.Nodes)-len(aigfm.R(p)))
}
