package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenGraph_SimpleHierarchy(t *testing.T) {
	g := NewASGraph()
	g.AddRelationship(1, 2, ProviderToCustomer)
	g.AddRelationship(1, 3, ProviderToCustomer)
	idx := FlattenGraph(g)

	assert.Equal(t, 0, idx.RankOf[2])
	assert.Equal(t, 0, idx.RankOf[3])
	assert.Equal(t, 1, idx.RankOf[1])
	require.Len(t, idx.Groups, 2)
	assert.ElementsMatch(t, []ASN{2, 3}, idx.Groups[0])
	assert.Equal(t, []ASN{1}, idx.Groups[1])
}

func TestFlattenGraph_PeerEdgesDoNotAffectRank(t *testing.T) {
	g := NewASGraph()
	g.AddRelationship(1, 2, PeerToPeer)
	idx := FlattenGraph(g)
	assert.Equal(t, 0, idx.RankOf[1])
	assert.Equal(t, 0, idx.RankOf[2])
	require.Len(t, idx.Groups, 1)
}

func TestFlattenGraph_RankWellFormedness(t *testing.T) {
	g := NewASGraph()
	g.AddRelationship(1, 2, ProviderToCustomer)
	g.AddRelationship(2, 3, ProviderToCustomer)
	idx := FlattenGraph(g)
	for _, asn := range g.ASNs() {
		for _, edge := range g.Neighbors(asn) {
			if edge.Relation == ProviderToCustomer {
				assert.Less(t, idx.RankOf[edge.Neighbor], idx.RankOf[asn])
			}
		}
	}
}
