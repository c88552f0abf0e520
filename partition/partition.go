// SPDX-License-Identifier: MIT
package partition

import "github.com/jaschutte/aigfm/module"

// PartitionData is the mutable bipartition state. side[i] holds the
// current Side of node i. areaLeft is tracked incrementally (+/- a
// node's area on every committed move) rather than recomputed from L/R —
// the delta approach the design notes recommend in place of snapshotting
// the full sets on every trial move.
//
// state/backup exist to match the documented PartitionData shape: in
// REAL state the backups are nil; entering a pass moves to PRETENDING and
// snapshots side/areaLeft so FMStep can restore to the pass's entry
// point before replaying its chosen prefix.
type PartitionData struct {
	side     []Side
	areaLeft int

	state          State
	sideBackup     []Side
	areaLeftBackup int
}

// Partition wraps PartitionData with a stable node view and the node ->
// index map used to address the per-node gain vector.
type Partition struct {
	Module *module.Module
	all    []*module.Node
	index  map[module.NodeID]int

	data PartitionData
}

// State reports whether the partition is at rest or mid-pass.
func (p *Partition) State() State { return p.data.state }

// AreaLeft returns the current side-L area.
func (p *Partition) AreaLeft() int { return p.data.areaLeft }

// Area returns the module's total area (both sides).
func (p *Partition) Area() int { return p.Module.Area() }

// Side reports which side node id currently occupies.
func (p *Partition) Side(id module.NodeID) Side {
	return p.data.side[p.index[id]]
}

// L returns the node IDs currently on the left side, ascending.
func (p *Partition) L() []module.NodeID { return p.sideMembers(SideL) }

// R returns the node IDs currently on the right side, ascending.
func (p *Partition) R() []module.NodeID { return p.sideMembers(SideR) }

func (p *Partition) sideMembers(s Side) []module.NodeID {
	out := make([]module.NodeID, 0, len(p.all))
	for _, n := range p.all {
		if p.data.side[p.index[n.ID]] == s {
			out = append(out, n.ID)
		}
	}
	return out
}

// enterPretending snapshots side/areaLeft and transitions to PRETENDING.
func (p *Partition) enterPretending() {
	p.data.sideBackup = append([]Side(nil), p.data.side...)
	p.data.areaLeftBackup = p.data.areaLeft
	p.data.state = StatePretending
}

// restore reverts to the snapshot taken by enterPretending and returns to
// REAL state. The backup slice is released (set nil) so no PRETENDING
// snapshot is ever leaked beyond its enclosing pass.
func (p *Partition) restore() {
	copy(p.data.side, p.data.sideBackup)
	p.data.areaLeft = p.data.areaLeftBackup
	p.data.sideBackup = nil
	p.data.state = StateReal
}

// commit leaves PRETENDING (without touching side/areaLeft) once a pass
// has decided to keep some or all of its provisional moves.
func (p *Partition) commit() {
	p.data.sideBackup = nil
	p.data.state = StateReal
}

// moveTo assigns node id to side s, adjusting areaLeft by the node's area.
// Callers are responsible for clearing/using gain state around this.
func (p *Partition) moveTo(id module.NodeID, s Side) {
	idx := p.index[id]
	from := p.data.side[idx]
	if from == s {
		return
	}
	area := p.all[idx].Area
	switch {
	case from == SideL && s == SideR:
		p.data.areaLeft -= area
	case from == SideR && s == SideL:
		p.data.areaLeft += area
	}
	p.data.side[idx] = s
}

// tentativeAreaLeft returns the side-L area that would result from moving
// id to its opposite side, without mutating any state. This is the core
// of the delta approach: feasibility is checked by arithmetic, never by
// performing and undoing a real move.
func (p *Partition) tentativeAreaLeft(id module.NodeID) int {
	idx := p.index[id]
	area := p.all[idx].Area
	if p.data.side[idx] == SideL {
		return p.data.areaLeft - area
	}
	return p.data.areaLeft + area
}
