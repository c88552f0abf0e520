// SPDX-License-Identifier: MIT
// Package partition implements the Fiduccia-Mattheyses hypergraph
// bipartitioner: PartitionData (the mutable L/R assignment), the cell gain
// model over hypernets, constrained highest-gain move selection, and the
// FMStep/FMAlgorithm pass driver. It is the one package in this module
// where a correctness mistake is costly: the gain updates only ever touch
// critical nets, fixed-cell discipline is scoped to a single pass, and the
// balance bounds are fixed at pass entry, not recomputed per move.
package partition

import "fmt"

// Side identifies which half of the bipartition a node currently occupies.
type Side int

const (
	SideL Side = iota
	SideR
)

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == SideL {
		return SideR
	}
	return SideL
}

func (s Side) String() string {
	switch s {
	case SideL:
		return "L"
	case SideR:
		return "R"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// State distinguishes a partition at rest (REAL) from one mid-pass, where
// the committed move sequence is still provisional until FMStep decides
// how much of it to keep (PRETENDING).
type State int

const (
	StateReal State = iota
	StatePretending
)

func (s State) String() string {
	switch s {
	case StateReal:
		return "REAL"
	case StatePretending:
		return "PRETENDING"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// AreaBounds is the balance window computed once at pass entry. Incoming
// is the side-L area at the moment the pass started — named for what it
// actually is: not an independently chosen target, simply the area the
// pass inherited.
type AreaBounds struct {
	Incoming int
	Lower    int
	Upper    int
}

// Optimal is a read-only alias for Incoming, kept for callers that think
// in terms of the pass's balance target rather than its entry area; both
// names refer to the same value.
func (b AreaBounds) Optimal() int { return b.Incoming }

// Contains reports whether area lies within [Lower, Upper], inclusive.
func (b AreaBounds) Contains(area int) bool {
	return area >= b.Lower && area <= b.Upper
}

// NewAreaBounds derives the balance window from the current side-L area
// and the module's largest single node area: [areaLeft - maxNodeArea,
// areaLeft + maxNodeArea].
func NewAreaBounds(areaLeft, maxNodeArea int) AreaBounds {
	return AreaBounds{
		Incoming: areaLeft,
		Lower:    areaLeft - maxNodeArea,
		Upper:    areaLeft + maxNodeArea,
	}
}
