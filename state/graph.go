package state

// Edge is one adjacency entry: a neighboring AS and this AS's relation to it.
type Edge struct {
	Neighbor ASN
	Relation Relation
}

// ASGraph is the AS topology, stored as a symmetric adjacency list keyed
// by ASN. Both ASNs and each AS's neighbor list preserve first-seen
// insertion order, which the propagation engine relies on for
// deterministic output.
type ASGraph struct {
	asns      []ASN
	seen      map[ASN]bool
	adjacency map[ASN][]Edge
}

// NewASGraph returns an empty graph.
func NewASGraph() *ASGraph {
	return &ASGraph{
		seen:      make(map[ASN]bool),
		adjacency: make(map[ASN][]Edge),
	}
}

func (g *ASGraph) touch(asn ASN) {
	if !g.seen[asn] {
		g.seen[asn] = true
		g.asns = append(g.asns, asn)
	}
}

// AddRelationship inserts the forward edge (a, rel, b) and the mirrored
// inverse edge (b, rel.Inverse(), a). Repeated calls with the same pair
// append duplicate adjacency entries rather than deduplicating; a
// relationship file with a repeated line is not this graph's problem to
// silently fix.
func (g *ASGraph) AddRelationship(a, b ASN, rel Relation) {
	g.touch(a)
	g.touch(b)
	g.adjacency[a] = append(g.adjacency[a], Edge{Neighbor: b, Relation: rel})
	g.adjacency[b] = append(g.adjacency[b], Edge{Neighbor: a, Relation: rel.Inverse()})
}

// Neighbors returns asn's adjacency list in insertion order. Unknown ASNs
// yield an empty (nil) slice.
func (g *ASGraph) Neighbors(asn ASN) []Edge {
	return g.adjacency[asn]
}

// ASNs returns every AS in the graph, in first-seen order.
func (g *ASGraph) ASNs() []ASN {
	return g.asns
}

type dfsColor int

const (
	white dfsColor = iota
	gray
	black
)

// HasCustomerProviderCycle walks customer-to-provider edges only, looking
// for a cycle, via an iterative three-color DFS with an explicit stack
// (recursion depth would otherwise track graph depth, which is
// attacker/input controlled). It returns the AS at which the back edge
// was found.
func (g *ASGraph) HasCustomerProviderCycle() (ASN, bool) {
	colors := make(map[ASN]dfsColor, len(g.asns))

	type frame struct {
		asn   ASN
		edges []Edge
		idx   int
	}

	for _, start := range g.asns {
		if colors[start] != white {
			continue
		}
		colors[start] = gray
		stack := []frame{{asn: start, edges: g.adjacency[start]}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			descended := false
			for top.idx < len(top.edges) {
				edge := top.edges[top.idx]
				top.idx++
				if edge.Relation != CustomerToProvider {
					continue
				}
				switch colors[edge.Neighbor] {
				case gray:
					return edge.Neighbor, true
				case white:
					colors[edge.Neighbor] = gray
					stack = append(stack, frame{asn: edge.Neighbor, edges: g.adjacency[edge.Neighbor]})
					descended = true
				}
				if descended {
					break
				}
			}
			if !descended {
				colors[top.asn] = black
				stack = stack[:len(stack)-1]
			}
		}
	}
	return 0, false
}
