package state

// MockGraph returns a small fixed topology for engine tests: two tier-1
// ASes peering with each other, each with one single-homed customer.
// Grounded on the teacher's MockCfg fixture topology builder, adapted from
// a weighted mesh of named nodes to a Gao-Rexford AS graph.
func MockGraph() *ASGraph {
	g := NewASGraph()
	g.AddRelationship(100, 200, PeerToPeer)
	g.AddRelationship(100, 10, ProviderToCustomer)
	g.AddRelationship(200, 20, ProviderToCustomer)
	return g
}
