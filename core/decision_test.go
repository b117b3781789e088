package core

import (
	"testing"

	"github.com/routesim/gaorex/state"
	"github.com/stretchr/testify/assert"
)

func route(path []state.ASN, at state.AnnouncementType, rov bool) state.Route {
	return state.Route{Prefix: "p", ASPath: path, AnnouncementType: at, ROVInvalid: rov}
}

func TestShouldReplace_ROVWinsWhenEnabled(t *testing.T) {
	incumbent := route([]state.ASN{1, 2}, state.LearnedFromProvider, true)
	candidate := route([]state.ASN{1, 3}, state.LearnedFromProvider, false)
	assert.True(t, ShouldReplace(candidate, incumbent, true))
	assert.False(t, ShouldReplace(incumbent, candidate, true))
}

func TestShouldReplace_ROVIgnoredWhenNotEnabled(t *testing.T) {
	incumbent := route([]state.ASN{1, 2}, state.LearnedFromProvider, true)
	candidate := route([]state.ASN{1, 2, 3}, state.LearnedFromProvider, false)
	assert.False(t, ShouldReplace(candidate, incumbent, false))
}

func TestShouldReplace_PreferenceBeatsPathLength(t *testing.T) {
	incumbent := route([]state.ASN{1, 2}, state.LearnedFromProvider, false)
	candidate := route([]state.ASN{1, 2, 3, 4}, state.LearnedFromCustomer, false)
	assert.True(t, ShouldReplace(candidate, incumbent, false))
}

func TestShouldReplace_ShorterPathWins(t *testing.T) {
	incumbent := route([]state.ASN{1, 2, 3}, state.LearnedFromPeer, false)
	candidate := route([]state.ASN{1, 4}, state.LearnedFromPeer, false)
	assert.True(t, ShouldReplace(candidate, incumbent, false))
}

func TestShouldReplace_TieBreakOnNextHop(t *testing.T) {
	incumbent := route([]state.ASN{30, 20, 40}, state.LearnedFromProvider, false)
	candidate := route([]state.ASN{30, 10, 40}, state.LearnedFromProvider, false)
	assert.True(t, ShouldReplace(candidate, incumbent, false))
}

func TestShouldReplace_ExactTieKeepsIncumbent(t *testing.T) {
	incumbent := route([]state.ASN{30, 10, 40}, state.LearnedFromProvider, false)
	candidate := route([]state.ASN{30, 10, 40}, state.LearnedFromProvider, false)
	assert.False(t, ShouldReplace(candidate, incumbent, false))
}

func TestCanExport_CustomerLearnedExportsEverywhere(t *testing.T) {
	customer := route([]state.ASN{1}, state.LearnedFromCustomer, false)
	for _, rel := range []state.Relation{state.ProviderToCustomer, state.PeerToPeer, state.CustomerToProvider} {
		assert.True(t, CanExport(customer, rel))
	}
}

func TestCanExport_PeerAndProviderLearnedOnlyExportToCustomers(t *testing.T) {
	peer := route([]state.ASN{1}, state.LearnedFromPeer, false)
	provider := route([]state.ASN{1}, state.LearnedFromProvider, false)

	assert.True(t, CanExport(peer, state.ProviderToCustomer))
	assert.False(t, CanExport(peer, state.PeerToPeer))
	assert.False(t, CanExport(peer, state.CustomerToProvider))

	assert.True(t, CanExport(provider, state.ProviderToCustomer))
	assert.False(t, CanExport(provider, state.PeerToPeer))
	assert.False(t, CanExport(provider, state.CustomerToProvider))
}
