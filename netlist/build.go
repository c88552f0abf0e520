// SPDX-License-Identifier: MIT
// Package: aigfm/netlist
//
// build.go — FromAiger, the AIGER → Netlist lifter.
//
// Algorithm:
//  1. For each input and output literal, intern its net by tag.
//  2. For each and-gate out = a ∧ b:
//     a. Intern nets for out, a, b.
//     b. For each of a, b used in negated polarity, materialise the single
//        INV gate between the unnegated and negated net for that
//        variable, if one does not already exist (hasInvertedNet). A
//        positive literal needs no driver for its inverse net.
//     c. Create an AND2 gate with inputs [a, b] and output [out], binding
//        all three nets.
package netlist

import (
	"fmt"

	"github.com/jaschutte/aigfm/aiger"
)

// TagForLit returns the netlist's polarity tag for a raw AIGER literal:
// the constants map directly to 0/1, everything else goes through NetTag.
func TagForLit(l aiger.Lit) uint64 {
	switch l {
	case aiger.LitFalse:
		return 0
	case aiger.LitTrue:
		return 1
	default:
		return NetTag(l.Var(), l.IsNegated())
	}
}

// FromAiger converts a parsed AIGER into a Netlist implementing its
// combinational semantics. Latches are present on the Aiger value but are
// never consulted here — sequential logic is parsed, not synthesized.
func FromAiger(a *aiger.Aiger) (*Netlist, error) {
	if a == nil {
		return nil, ErrNilAiger
	}

	nl := NewNetlist()

	for i, lit := range a.Inputs {
		label := a.InputLabels[i]
		if label == "" {
			label = fmt.Sprintf("in%d", i)
		}
		nl.addOrGetNet(TagForLit(lit), label)
	}
	for i, lit := range a.Outputs {
		label := a.OutputLabels[i]
		if label == "" {
			label = fmt.Sprintf("out%d", i)
		}
		nl.addOrGetNet(TagForLit(lit), label)
	}

	for _, ag := range a.Ands {
		outID := nl.addOrGetNet(TagForLit(ag.Out), defaultLabel(ag.Out))
		aID := nl.addOrGetNet(TagForLit(ag.A), defaultLabel(ag.A))
		bID := nl.addOrGetNet(TagForLit(ag.B), defaultLabel(ag.B))

		nl.addNegatedNet(ag.A)
		nl.addNegatedNet(ag.B)

		gate := nl.newGate(KindAnd2, defaultGateLabel(ag.Out))
		gate.Inputs = []NetID{aID, bID}
		gate.Outputs = []NetID{outID}
		nl.bind(gate.ID, aID)
		nl.bind(gate.ID, bID)
		nl.bind(gate.ID, outID)
	}

	return nl, nil
}

func defaultLabel(l aiger.Lit) string {
	if l.IsNegated() {
		return fmt.Sprintf("~v%d", l.Var())
	}
	return fmt.Sprintf("v%d", l.Var())
}

func defaultGateLabel(out aiger.Lit) string {
	return fmt.Sprintf("and_v%d", out.Var())
}

// addOrGetNet interns the net for tag, creating it with label if absent.
// Returns its handle. Complexity: O(1) amortized.
func (nl *Netlist) addOrGetNet(tag uint64, label string) NetID {
	if id, ok := nl.netsCheck[tag]; ok {
		return id
	}
	id := NetID(len(nl.Nets))
	nl.Nets = append(nl.Nets, &Net{ID: id, Tag: tag, Label: label})
	nl.netsCheck[tag] = id
	return id
}

// addNegatedNet gives a negated literal a concrete driver: it interns both
// polarity nets for lit's variable and, iff no inverter has yet been
// materialised for this variable, creates the single INV gate from the
// unnegated net to the negated net. Constants are not invertible, and a
// literal used in positive polarity needs no inverter; both are skipped.
func (nl *Netlist) addNegatedNet(lit aiger.Lit) {
	if lit.IsConstant() || !lit.IsNegated() {
		return
	}
	v := lit.Var()
	unnegID := nl.addOrGetNet(NetTag(v, false), fmt.Sprintf("v%d", v))
	negID := nl.addOrGetNet(NetTag(v, true), fmt.Sprintf("~v%d", v))

	unnegNet := nl.Nets[unnegID]
	if unnegNet.hasInvertedNet {
		return
	}

	gate := nl.newGate(KindInv, fmt.Sprintf("inv_v%d", v))
	gate.Inputs = []NetID{unnegID}
	gate.Outputs = []NetID{negID}
	nl.bind(gate.ID, unnegID)
	nl.bind(gate.ID, negID)
	unnegNet.hasInvertedNet = true
}

// newGate appends a new gate of the given kind and returns it.
func (nl *Netlist) newGate(kind Kind, label string) *Gate {
	g := &Gate{ID: GateID(len(nl.Gates)), Kind: kind, Label: label}
	nl.Gates = append(nl.Gates, g)
	return g
}

// bind records that gate g is incident on net n (gate and net must agree on incidence:
// incidence symmetry). The gate's Inputs/Outputs slices are populated by
// the caller before bind is invoked; bind only updates the net's side.
func (nl *Netlist) bind(g GateID, n NetID) {
	nl.Nets[n].Binds = append(nl.Nets[n].Binds, g)
}
