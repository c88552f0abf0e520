// SPDX-License-Identifier: MIT
// gain.go — cell gain and the critical-net gain update
package partition

import "github.com/jaschutte/aigfm/module"

// gainVector holds one gain value per node, indexed the same way as
// Partition.all/PartitionData.side.
type gainVector []int

// computeGains computes the gain of every node from scratch: the gain
// vector FMStep seeds at the start of a pass.
func (p *Partition) computeGains() gainVector {
	g := make(gainVector, len(p.all))
	for i, node := range p.all {
		g[i] = p.cellGain(node.ID)
	}
	return g
}

// cellGain computes g(v) for node v on its current side: the number of
// v's incident hypernets that would become uncut if v moved (v is the
// net's only member on its side) minus the number that would become cut
// (the net lies entirely on v's side). A net with other members on both
// sides stays cut either way and contributes nothing.
func (p *Partition) cellGain(v module.NodeID) int {
	idx := p.index[v]
	side := p.data.side[idx]

	gain := 0
	for _, hn := range p.Module.Incidence[idx] {
		same, other := 0, 0
		for _, u := range hn.Members {
			if u == v {
				continue
			}
			if p.data.side[p.index[u]] == side {
				same++
			} else {
				other++
			}
		}
		if same == 0 {
			gain++
		} else if other == 0 {
			gain--
		}
	}
	return gain
}

// applyCriticalNetUpdate adjusts g in place after v has just been
// committed from its old side to its new one, keeping every unfixed
// peer's entry equal to what cellGain would recompute. Only critical
// nets can change a peer's contribution: per net incident to v, count
// the other members (v itself excluded) on each side. If the side v
// arrived on held no other member, every unfixed peer gains 1; if it
// held exactly one, that peer loses 1. Mirrored for the side v left: if
// no other member remains there, every unfixed peer loses 1; if exactly
// one does, that peer gains 1. Nets with two or more other members on
// each side are untouched.
func (p *Partition) applyCriticalNetUpdate(g gainVector, v module.NodeID) {
	idx := p.index[v]
	newSide := p.data.side[idx]

	for _, hn := range p.Module.Incidence[idx] {
		toCount, fromCount := 0, 0
		var toPeer, fromPeer module.NodeID
		for _, u := range hn.Members {
			if u == v {
				continue
			}
			if p.data.side[p.index[u]] == newSide {
				toCount++
				toPeer = u
			} else {
				fromCount++
				fromPeer = u
			}
		}

		switch toCount {
		case 0:
			p.bumpUnfixedPeers(g, hn, v, 1)
		case 1:
			p.bumpIfUnfixed(g, toPeer, -1)
		}
		switch fromCount {
		case 0:
			p.bumpUnfixedPeers(g, hn, v, -1)
		case 1:
			p.bumpIfUnfixed(g, fromPeer, 1)
		}
	}
}

func (p *Partition) bumpUnfixedPeers(g gainVector, hn *module.Hypernet, v module.NodeID, delta int) {
	for _, u := range hn.Members {
		if u == v {
			continue
		}
		p.bumpIfUnfixed(g, u, delta)
	}
}

func (p *Partition) bumpIfUnfixed(g gainVector, u module.NodeID, delta int) {
	idx := p.index[u]
	if p.all[idx].Fixed {
		return
	}
	g[idx] += delta
}
