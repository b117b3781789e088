package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRelationships_SkipsCommentsBlankLinesAndUnknownCodes(t *testing.T) {
	g, err := ParseRelationships(strings.NewReader("# comment\n\n1|2|-1\n3|4|0\n5|6|7\n"), nil)
	require.NoError(t, err)
	assert.Len(t, g.Neighbors(1), 1)
	assert.Len(t, g.Neighbors(3), 1)
	assert.Empty(t, g.Neighbors(5))
	assert.Empty(t, g.Neighbors(6))
}

func TestParseAnnouncements_TruthyDetection(t *testing.T) {
	csv := "origin_asn,prefix,rov_invalid\n1,p,True\n2,q,false\n3,r,1\n4,s,no\n"
	anns, err := ParseAnnouncements(strings.NewReader(csv), nil)
	require.NoError(t, err)
	require.Len(t, anns, 4)
	assert.True(t, anns[0].ROVInvalid)
	assert.False(t, anns[1].ROVInvalid)
	assert.True(t, anns[2].ROVInvalid)
	assert.False(t, anns[3].ROVInvalid)
}

func TestParseAnnouncements_SkipsShortRows(t *testing.T) {
	anns, err := ParseAnnouncements(strings.NewReader("origin_asn,prefix,rov_invalid\n1,p\n2,q,True\n"), nil)
	require.NoError(t, err)
	require.Len(t, anns, 1)
	assert.Equal(t, "q", anns[0].Prefix)
}

func TestParseROVASNs_SkipsCommentsAndUnparseableLines(t *testing.T) {
	rov, err := ParseROVASNs(strings.NewReader("# comment\n\n123\nabc\n456\n"), nil)
	require.NoError(t, err)
	assert.True(t, rov[123])
	assert.True(t, rov[456])
	assert.Len(t, rov, 2)
}
