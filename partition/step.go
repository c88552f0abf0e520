// SPDX-License-Identifier: MIT
// step.go — FMStep, one FM pass: accumulate a full candidate
// move sequence, then replay only the best-cumulative-gain prefix.
package partition

import "github.com/jaschutte/aigfm/module"

// moveRecord is one entry in a pass's attempted move sequence.
type moveRecord struct {
	node     module.NodeID
	to       Side
	gain     int
	areaLeft int
}

// FMStep runs a single FM pass over p and returns G*, the best cumulative
// gain found over any prefix of the attempted move sequence. If G* > 0, the
// partition is updated to reflect that prefix (equal-sum prefixes are
// tie-broken by cumulativeBetter); if G* == 0 it is left unchanged.
func FMStep(p *Partition) int {
	p.enterPretending()
	bounds := NewAreaBounds(p.data.areaLeft, p.Module.MaxNodeArea())

	for _, node := range p.all {
		node.Fixed = false
	}
	g := p.computeGains()

	var moves []moveRecord
	for {
		c := p.findHighestGainCell(g, bounds)
		if !c.found {
			break
		}
		idx := p.index[c.id]
		from := p.data.side[idx]
		p.moveTo(c.id, from.Other())
		p.all[idx].Fixed = true
		p.applyCriticalNetUpdate(g, c.id)

		moves = append(moves, moveRecord{node: c.id, to: from.Other(), gain: c.gain, areaLeft: c.areaLeft})
	}

	bestLen, bestSum := 0, 0
	sum := 0
	for i, mv := range moves {
		sum += mv.gain
		if cumulativeBetter(sum, bestSum, mv.areaLeft, moves, bestLen, bounds) {
			bestLen, bestSum = i+1, sum
		}
	}

	p.restore()
	for i := 0; i < bestLen; i++ {
		mv := moves[i]
		p.moveTo(mv.node, mv.to)
		p.all[p.index[mv.node]].Fixed = true
	}
	p.commit()

	return bestSum
}

// cumulativeBetter reports whether the prefix ending at the current move
// (cumulative gain sum, resulting area currentArea) should replace the
// best prefix found so far (bestSum, ending at moves[bestLen-1]). Equal
// sums are broken by closeness of resulting side-L area to
// bounds.Optimal(); the initial best (length 0, sum 0) is never beaten by
// an equal-zero prefix, so a pass that cannot improve leaves the
// partition unchanged.
func cumulativeBetter(sum, bestSum, currentArea int, moves []moveRecord, bestLen int, bounds AreaBounds) bool {
	if sum != bestSum {
		return sum > bestSum
	}
	if bestLen == 0 {
		return false
	}
	bestArea := moves[bestLen-1].areaLeft
	return abs(currentArea-bounds.Optimal()) < abs(bestArea-bounds.Optimal())
}
