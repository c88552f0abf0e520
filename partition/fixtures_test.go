// SPDX-License-Identifier: MIT
package partition_test

import (
	"testing"

	"github.com/jaschutte/aigfm/internal/fixtures"
	"github.com/jaschutte/aigfm/partition"
	"github.com/stretchr/testify/require"
)

// TestFMAlgorithm_Ring verifies FM on a synthetic ring hypergraph (builder
// topology, not an AIGER literal): a balanced ring's minimum cut is two
// nets, however it is split.
func TestFMAlgorithm_Ring(t *testing.T) {
	m, err := fixtures.Ring(8)
	require.NoError(t, err)
	require.Len(t, m.Nodes, 8)
	require.Len(t, m.RawEdges, 8)

	p, err := partition.Initial(m)
	require.NoError(t, err)

	history := partition.FMAlgorithm(p)
	require.NotEmpty(t, history)
	require.LessOrEqual(t, history[len(history)-1], 0)

	require.Len(t, p.L(), 8-len(p.R()))
}

// TestFMAlgorithm_Clique verifies FM terminates and leaves every node
// assigned on a fully connected hypergraph, where no move strictly
// improves a balanced cut.
func TestFMAlgorithm_Clique(t *testing.T) {
	m, err := fixtures.Clique(6)
	require.NoError(t, err)
	require.Len(t, m.Nodes, 6)
	require.Len(t, m.RawEdges, 15) // C(6,2)

	p, err := partition.Initial(m)
	require.NoError(t, err)

	history := partition.FMAlgorithm(p)
	require.NotEmpty(t, history)
	require.Len(t, p.L(), 6-len(p.R()))
}

// TestFMAlgorithm_Star verifies FM on a hub-and-spoke hypergraph: every
// leaf shares exactly one hypernet with the hub, so cut size equals the
// count of leaves landing on the side opposite the hub.
func TestFMAlgorithm_Star(t *testing.T) {
	m, err := fixtures.Star(6)
	require.NoError(t, err)
	require.Len(t, m.Nodes, 6)
	require.Len(t, m.RawEdges, 5)

	p, err := partition.Initial(m)
	require.NoError(t, err)

	history := partition.FMAlgorithm(p)
	require.NotEmpty(t, history)
	require.Len(t, p.L(), 6-len(p.R()))
}
