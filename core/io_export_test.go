package core

import (
	"bytes"
	"testing"

	"github.com/routesim/gaorex/state"
	"github.com/stretchr/testify/require"
)

func TestWriteRIBCSV_SortedAndQuoted(t *testing.T) {
	rs := state.NewRoutingState(nil)
	rs.Seed(2, "10.0.0.0/24", false)
	rs.Seed(1, "10.0.0.0/24", false)
	var buf bytes.Buffer
	require.NoError(t, WriteRIBCSV(&buf, rs))
	require.Equal(t, "asn,prefix,as_path\n1,10.0.0.0/24,\"(1,)\"\n2,10.0.0.0/24,\"(2,)\"\n", buf.String())
}
