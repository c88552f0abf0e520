// SPDX-License-Identifier: MIT
//
// Both dumps are deliberately flat: no layout, no styling, no attempt to
// mirror any particular Graphviz or graph-editor convention. They exist so
// a user can eyeball the result of a run, not as a supported interchange
// format.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jaschutte/aigfm"
)

// writeDOT dumps result's pairwise adjacency graph as an undirected
// Graphviz graph, one node per module node labeled with its side.
func writeDOT(path string, result *aigfm.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("aigfm: creating %s: %w", path, err)
	}
	defer f.Close()

	p := result.Partition
	fmt.Fprintln(f, "graph aigfm {")
	for _, n := range p.Module.Nodes {
		fmt.Fprintf(f, "  n%d [label=\"%s\" side=\"%s\"];\n", n.ID, n.Label, p.Side(n.ID))
	}
	for _, e := range p.Module.Pairwise.Edges() {
		fmt.Fprintf(f, "  n%s -- n%s;\n", e.From, e.To)
	}
	fmt.Fprintln(f, "}")
	return nil
}

// jsonDump is the flat structure written by writeJSON.
type jsonDump struct {
	Nodes []jsonNode `json:"nodes"`
	Nets  []jsonNet  `json:"nets"`
	Cut   int        `json:"cut"`
}

type jsonNode struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Area  int    `json:"area"`
	Side  string `json:"side"`
}

type jsonNet struct {
	ID      int   `json:"id"`
	Members []int `json:"members"`
}

// writeJSON dumps result as a flat node/hypernet structure for external
// tooling to visualize.
func writeJSON(path string, result *aigfm.Result) error {
	p := result.Partition
	dump := jsonDump{Cut: result.Cut()}
	for _, n := range p.Module.Nodes {
		dump.Nodes = append(dump.Nodes, jsonNode{
			ID:    int(n.ID),
			Label: n.Label,
			Area:  n.Area,
			Side:  p.Side(n.ID).String(),
		})
	}
	for _, hn := range p.Module.RawEdges {
		members := make([]int, len(hn.Members))
		for i, m := range hn.Members {
			members[i] = int(m)
		}
		dump.Nets = append(dump.Nets, jsonNet{ID: hn.ID, Members: members})
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("aigfm: creating %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(dump)
}
