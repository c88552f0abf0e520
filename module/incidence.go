// SPDX-License-Identifier: MIT
// incidence.go — a binary node×hypernet membership matrix, adapted from
// matrix.impl_incidence.go's sign-convention builder. Unlike a graph
// incidence matrix (directed ±1, undirected +1/+1), hypergraph membership
// carries no direction: an entry is 1 iff the node is a member of that
// hypernet, 0 otherwise. This is a diagnostic view only — the FM
// partitioner never consults it, walking RawEdges/Incidence directly
// instead — but it is useful for cut-count cross-checks and for exporting
// a cut matrix to external tooling.
package module

import "github.com/jaschutte/aigfm/matrix"

const memberMark = 1.0

// IncidenceMatrix builds the dense |Nodes| x |RawEdges| membership matrix:
// row i, column j is 1 iff node i participates in hypernet RawEdges[j].
func (m *Module) IncidenceMatrix() (*matrix.Dense, error) {
	rows := len(m.Nodes)
	cols := len(m.RawEdges)
	if rows == 0 || cols == 0 {
		return nil, matrix.ErrInvalidDimensions
	}

	d, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for j, hn := range m.RawEdges {
		for _, nid := range hn.Members {
			if err := d.Set(int(nid), j, memberMark); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}
