// SPDX-License-Identifier: MIT
package aigfm

import (
	"fmt"
	"os"

	"github.com/jaschutte/aigfm/aiger"
	"github.com/jaschutte/aigfm/module"
	"github.com/jaschutte/aigfm/netlist"
	"github.com/jaschutte/aigfm/partition"
)

// Parse reads AIGER ASCII text into an aiger.Aiger value.
func Parse(content string) (*aiger.Aiger, error) {
	return aiger.Parse(content)
}

// NetlistFromAiger lifts a parsed Aiger into a gate/net Netlist.
func NetlistFromAiger(a *aiger.Aiger) (*netlist.Netlist, error) {
	return netlist.FromAiger(a)
}

// ModuleFromNetlist flattens a Netlist into a partitioner-ready Module.
func ModuleFromNetlist(nl *netlist.Netlist) (*module.Module, error) {
	return module.FromNetlist(nl)
}

// InitialPartition builds the BFS/DFS-seeded starting bipartition for m.
func InitialPartition(m *module.Module) (*partition.Partition, error) {
	return partition.Initial(m)
}

// FMAlgorithm runs FM passes over p until one yields no further gain,
// mutating p in place and returning the per-pass gain history.
func FMAlgorithm(p *partition.Partition) []int {
	return partition.FMAlgorithm(p)
}

// Area returns the total module area represented by p.
func Area(p *partition.Partition) int {
	return p.Area()
}

// AreaLeft returns the area currently assigned to the left side of p.
func AreaLeft(p *partition.Partition) int {
	return p.AreaLeft()
}

// Bounds returns the balance-tolerance window p's next FM pass must
// respect, derived from the module's current area split and its largest
// single node.
func Bounds(p *partition.Partition) partition.AreaBounds {
	return partition.NewAreaBounds(p.AreaLeft(), p.Module.MaxNodeArea())
}

// L returns the node IDs currently assigned to the left side.
func L(p *partition.Partition) []module.NodeID {
	return p.L()
}

// R returns the node IDs currently assigned to the right side.
func R(p *partition.Partition) []module.NodeID {
	return p.R()
}

// Result summarizes one end-to-end Run: the final partition plus the
// per-pass gain history that produced it.
type Result struct {
	Partition *partition.Partition
	History   []int
}

// Cut returns the number of hypernets left straddling both sides after
// FM converges.
func (r *Result) Cut() int {
	cut := 0
	for _, hn := range r.Partition.Module.RawEdges {
		seenL, seenR := false, false
		for _, id := range hn.Members {
			if r.Partition.Side(id) == partition.SideL {
				seenL = true
			} else {
				seenR = true
			}
			if seenL && seenR {
				break
			}
		}
		if seenL && seenR {
			cut++
		}
	}
	return cut
}

// Run reads path as AIGER ASCII, runs the full parse→netlist→module→
// partition→FM pipeline, and returns the converged Result.
func Run(path string) (*Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("aigfm: reading %s: %w", path, err)
	}

	a, err := Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("aigfm: parsing %s: %w", path, err)
	}

	nl, err := NetlistFromAiger(a)
	if err != nil {
		return nil, fmt.Errorf("aigfm: building netlist for %s: %w", path, err)
	}

	m, err := ModuleFromNetlist(nl)
	if err != nil {
		return nil, fmt.Errorf("aigfm: building module for %s: %w", path, err)
	}

	p, err := InitialPartition(m)
	if err != nil {
		return nil, fmt.Errorf("aigfm: seeding partition for %s: %w", path, err)
	}

	history := FMAlgorithm(p)

	return &Result{Partition: p, History: history}, nil
}
