// Package aigfm parses AIGER ASCII circuits, lifts them into a gate-level
// netlist, flattens the netlist into a hypergraph module, and bipartitions
// that module with the Fiduccia–Mattheyses heuristic.
//
// The pipeline is four packages deep, one stage per package:
//
//	aiger/     — parses "aag ..." text into a literal-indexed Aiger value
//	netlist/   — lifts an Aiger into gates (INV/AND2) and polarity-tagged nets
//	module/    — flattens a Netlist into FM's view: nodes, pairwise
//	             adjacency (BFS/DFS seeding), and hypernet incidence
//	partition/ — seeds an initial bipartition and runs FM passes to a local
//	             cut minimum
//
// This package is the thin façade over all four: Parse, NetlistFromAiger,
// ModuleFromNetlist, InitialPartition, and FMAlgorithm each call straight
// through to the matching stage, and Run chains all four for callers (the
// cmd/aigfm CLI) that just want a final cut count and side assignment from
// a file path.
package aigfm
