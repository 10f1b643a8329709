package goban

import (
	"fmt"

	"github.com/awalterschulze/gographviz"

	"github.com/kansuji/tengen/game"
)

// ToDot renders the board's chains and their adjacency as a graphviz
// digraph. Each chain becomes a node labelled with its colour, stone count
// and liberty count; edges connect orthogonally adjacent chains. Chains must
// be current. Debug aid only.
func (b *Board) ToDot() string {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		panic(err)
	}
	g.SetDir(true)

	name := func(id string) string { return fmt.Sprintf("%q", "chain "+id) }

	chains := b.Chains()
	for _, c := range chains {
		attrs := map[string]string{
			"fontname": "Monaco",
			"shape":    "box",
			"label":    fmt.Sprintf("%q", fmt.Sprintf("%v %s|stones %d|libs %d", c.Colour, c.ID, len(c.Points), len(c.Liberties))),
		}
		if c.Colour == game.Empty {
			attrs["style"] = "dashed"
		}
		g.AddNode("G", name(c.ID), attrs)
	}
	seen := make(map[string]bool)
	for _, c := range chains {
		for _, n := range b.NeighbouringChainIDs(c.Points) {
			key := c.ID + "→" + n
			rkey := n + "→" + c.ID
			if seen[key] || seen[rkey] {
				continue
			}
			seen[key] = true
			g.AddEdge(name(c.ID), name(n), true, nil)
		}
	}
	return g.String()
}
