package pajek

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/ergm/graph"
)

// Write serializes g in Pajek format: a *vertices header (two counts for
// bipartite graphs), placeholder vertex lines, and an *arcs or *edges
// section with 1-based ids.
func Write(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)

	if g.Mode() == graph.Bipartite {
		if _, err := fmt.Fprintf(bw, "*vertices %d %d\n", g.N(), g.NA()); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(bw, "*vertices %d\n", g.N()); err != nil {
			return err
		}
	}
	for v := 1; v <= g.N(); v++ {
		if _, err := fmt.Fprintf(bw, "%d \"%d\"\n", v, v); err != nil {
			return err
		}
	}

	if g.Mode() == graph.Directed {
		if _, err := bw.WriteString("*arcs\n"); err != nil {
			return err
		}
		for _, a := range g.AllArcs() {
			if _, err := fmt.Fprintf(bw, "%d %d\n", a.I+1, a.J+1); err != nil {
				return err
			}
		}
	} else {
		if _, err := bw.WriteString("*edges\n"); err != nil {
			return err
		}
		for _, e := range g.AllEdges() {
			if _, err := fmt.Fprintf(bw, "%d %d\n", e.I+1, e.J+1); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
