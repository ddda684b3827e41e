package pajek

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/ergm/graph"
)

// Sentinel errors for malformed Pajek input.
var (
	ErrMissingVertices = errors.New("pajek: missing *vertices header")
	ErrMalformedTie    = errors.New("pajek: malformed arc/edge line")
)

// Read parses a Pajek graph file into a graph.Graph of the given mode,
// applying opts to graph.NewDirected/NewUndirected/NewBipartite. For
// Bipartite mode the header's second vertex count becomes N_A.
func Read(r io.Reader, mode graph.Mode, opts ...graph.Option) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)
	n, nA, ok := 0, 0, false
	inTies := false
	var g *graph.Graph

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		lower := strings.ToLower(line)

		switch {
		case strings.HasPrefix(lower, "*vertices"):
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return nil, ErrMissingVertices
			}
			var err error
			n, err = strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("pajek: %w", err)
			}
			if len(fields) >= 3 {
				nA, err = strconv.Atoi(fields[2])
				if err != nil {
					return nil, fmt.Errorf("pajek: %w", err)
				}
			}
			ok = true
			g = newGraph(mode, n, nA, opts)

		case strings.HasPrefix(lower, "*arcs"), strings.HasPrefix(lower, "*edges"):
			if !ok {
				return nil, ErrMissingVertices
			}
			inTies = true
			// Remaining non-header lines are ties until the next section
			// or EOF; handled by fallthrough to the default case below
			// via the loop's next iterations.

		default:
			if !inTies {
				// Vertex listing line before any *arcs/*edges section;
				// vertex labels/coordinates are ignored per spec.md §6.
				continue
			}
			i, j, err := parseTie(line)
			if err != nil {
				return nil, err
			}
			if mode == graph.Directed {
				if err := g.InsertArc(i, j); err != nil {
					return nil, err
				}
			} else {
				if err := g.InsertEdge(i, j); err != nil {
					return nil, err
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrMissingVertices
	}
	return g, nil
}

// VertexCount scans only the "*vertices N [N_A]" header, for callers that
// need N to build node-indexed graph.Option values (snowball zones,
// cERGM terms) before the full Read pass that consumes those options.
func VertexCount(r io.Reader) (n, nA int, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(strings.ToLower(line), "*vertices") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, 0, ErrMissingVertices
		}
		if n, err = strconv.Atoi(fields[1]); err != nil {
			return 0, 0, fmt.Errorf("pajek: %w", err)
		}
		if len(fields) >= 3 {
			if nA, err = strconv.Atoi(fields[2]); err != nil {
				return 0, 0, fmt.Errorf("pajek: %w", err)
			}
		}
		return n, nA, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, err
	}
	return 0, 0, ErrMissingVertices
}

func newGraph(mode graph.Mode, n, nA int, opts []graph.Option) *graph.Graph {
	switch mode {
	case graph.Directed:
		return graph.NewDirected(n, opts...)
	case graph.Bipartite:
		return graph.NewBipartite(n, nA, opts...)
	default:
		return graph.NewUndirected(n, opts...)
	}
}

// parseTie parses a 1-based "i j [weight]" line into 0-based node ids.
func parseTie(line string) (i, j int, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, ErrMalformedTie
	}
	oneI, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformedTie, err)
	}
	oneJ, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformedTie, err)
	}
	return oneI - 1, oneJ - 1, nil
}
