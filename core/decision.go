package core

import "github.com/routesim/gaorex/state"

// preference maps a route's learned source to Gao-Rexford local
// preference; higher wins.
func preference(at state.AnnouncementType) int {
	switch at {
	case state.LearnedFromCustomer:
		return 2
	case state.LearnedFromPeer:
		return 1
	default:
		return 0
	}
}

// ShouldReplace applies the four-criterion decision process, in strict
// order, to decide whether candidate must replace incumbent in a Local-RIB:
// ROV validity (only when rovEnabled), local preference by learned source,
// AS-path length, and finally next-hop ASN as a tie-break. Every
// comparison is strict; a full tie leaves the incumbent in place.
func ShouldReplace(candidate, incumbent state.Route, rovEnabled bool) bool {
	if rovEnabled && candidate.ROVInvalid != incumbent.ROVInvalid {
		return !candidate.ROVInvalid
	}

	if cp, ip := preference(candidate.AnnouncementType), preference(incumbent.AnnouncementType); cp != ip {
		return cp > ip
	}

	if len(candidate.ASPath) != len(incumbent.ASPath) {
		return len(candidate.ASPath) < len(incumbent.ASPath)
	}

	return candidate.NextHop() < incumbent.NextHop()
}

// CanExport applies the Gao-Rexford export policy for a route being
// re-advertised across an edge typed relSelfToNeighbor: routes learned
// from a customer export everywhere; routes learned from a peer or a
// provider export only down to customers.
func CanExport(route state.Route, relSelfToNeighbor state.Relation) bool {
	if route.AnnouncementType == state.LearnedFromCustomer {
		return true
	}
	return relSelfToNeighbor == state.ProviderToCustomer
}
