// SPDX-License-Identifier: MIT
package fixtures_test

import (
	"testing"

	"github.com/jaschutte/aigfm/internal/fixtures"
	"github.com/stretchr/testify/require"
)

func TestChain(t *testing.T) {
	m, err := fixtures.Chain(4)
	require.NoError(t, err)
	require.Len(t, m.Nodes, 4)
	require.Len(t, m.RawEdges, 3)
	require.Len(t, m.Pairwise.Vertices(), 4)
}

func TestRing(t *testing.T) {
	m, err := fixtures.Ring(5)
	require.NoError(t, err)
	require.Len(t, m.Nodes, 5)
	require.Len(t, m.RawEdges, 5)
}

func TestStarHubIsNodeZero(t *testing.T) {
	m, err := fixtures.Star(4)
	require.NoError(t, err)
	require.Len(t, m.Nodes, 4)
	require.Len(t, m.RawEdges, 3)
	require.Equal(t, "Center", m.Nodes[0].Label)
	for _, hn := range m.RawEdges {
		require.Contains(t, hn.Members, m.Nodes[0].ID)
	}
}

func TestClique(t *testing.T) {
	m, err := fixtures.Clique(4)
	require.NoError(t, err)
	require.Len(t, m.Nodes, 4)
	require.Len(t, m.RawEdges, 6) // C(4,2)
}
