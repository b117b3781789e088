package state

// RankIndex partitions the AS graph into customer-to-provider levels.
// Rank 0 holds the ASes with no customers; each successive rank sits one
// level up the customer-provider DAG. Groups preserve the order in which
// the flattening wave discovered each AS, which the propagation engine
// relies on for deterministic output.
type RankIndex struct {
	RankOf map[ASN]int
	Groups [][]ASN
}

// FlattenGraph computes a RankIndex via a Kahn-style wave BFS over each
// AS's customer count. Callers must run HasCustomerProviderCycle first: an
// AS on a customer-provider cycle never reaches a customer count of zero
// and is silently absent from every group.
func FlattenGraph(g *ASGraph) *RankIndex {
	customerCount := make(map[ASN]int, len(g.ASNs()))
	for _, asn := range g.ASNs() {
		count := 0
		for _, e := range g.Neighbors(asn) {
			if e.Relation == ProviderToCustomer {
				count++
			}
		}
		customerCount[asn] = count
	}

	var wave []ASN
	for _, asn := range g.ASNs() {
		if customerCount[asn] == 0 {
			wave = append(wave, asn)
		}
	}

	idx := &RankIndex{RankOf: make(map[ASN]int)}
	for rank := 0; len(wave) > 0; rank++ {
		idx.Groups = append(idx.Groups, wave)
		var next []ASN
		for _, asn := range wave {
			idx.RankOf[asn] = rank
			for _, e := range g.Neighbors(asn) {
				if e.Relation == CustomerToProvider {
					customerCount[e.Neighbor]--
					if customerCount[e.Neighbor] == 0 {
						next = append(next, e.Neighbor)
					}
				}
			}
		}
		wave = next
	}
	return idx
}
