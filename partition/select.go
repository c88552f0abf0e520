// SPDX-License-Identifier: MIT
// select.go — findHighestGainCell, constrained highest-gain move
// selection with area-balance tie-breaking.
package partition

import "github.com/jaschutte/aigfm/module"

// candidate describes one node's gain and where it would leave side-L
// area if moved right now.
type candidate struct {
	id       module.NodeID
	gain     int
	areaLeft int
	found    bool
}

// findHighestGainCell returns the non-fixed node with the highest gain
// whose tentative move keeps side-L area within bounds. Ties go to the
// candidate whose resulting area is closest to bounds.Optimal(); further
// ties are broken by the lowest node ID, for determinism.
func (p *Partition) findHighestGainCell(g gainVector, bounds AreaBounds) candidate {
	var best candidate
	for _, node := range p.all {
		if node.Fixed {
			continue
		}
		areaLeft := p.tentativeAreaLeft(node.ID)
		if !bounds.Contains(areaLeft) {
			continue
		}
		gain := g[p.index[node.ID]]

		c := candidate{id: node.ID, gain: gain, areaLeft: areaLeft, found: true}
		if !best.found {
			best = c
			continue
		}
		if better(c, best, bounds) {
			best = c
		}
	}
	return best
}

// better reports whether a should replace b as the chosen candidate.
func better(a, b candidate, bounds AreaBounds) bool {
	if a.gain != b.gain {
		return a.gain > b.gain
	}
	da := abs(a.areaLeft - bounds.Optimal())
	db := abs(b.areaLeft - bounds.Optimal())
	if da != db {
		return da < db
	}
	return a.id < b.id
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
