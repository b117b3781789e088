package state

import (
	"fmt"
	"strconv"
	"strings"
)

// Route is a single BGP announcement, as held in a Local-RIB or in flight
// on a message queue. ASPath is ordered most-recent-hop-first; the tail is
// the originating AS.
type Route struct {
	Prefix           string
	ASPath           []ASN
	AnnouncementType AnnouncementType
	ROVInvalid       bool
}

// NewSeedRoute builds the single-hop route an origin AS installs directly
// into its own Local-RIB before propagation starts.
func NewSeedRoute(origin ASN, prefix string, rovInvalid bool) Route {
	return Route{
		Prefix:           prefix,
		ASPath:           []ASN{origin},
		AnnouncementType: LearnedFromCustomer,
		ROVInvalid:       rovInvalid,
	}
}

// Origin returns the AS that first announced the route.
func (r Route) Origin() ASN {
	return r.ASPath[len(r.ASPath)-1]
}

// NextHop returns the second-most-recent hop, or the sole hop of a
// single-element path.
func (r Route) NextHop() ASN {
	if len(r.ASPath) >= 2 {
		return r.ASPath[1]
	}
	return r.ASPath[0]
}

// Contains reports whether asn already appears in the AS path.
func (r Route) Contains(asn ASN) bool {
	for _, hop := range r.ASPath {
		if hop == asn {
			return true
		}
	}
	return false
}

// WithHop returns a route ready to enqueue at a receiving AS: asn
// prepended to a fresh copy of the path, with announcement type at.
func (r Route) WithHop(asn ASN, at AnnouncementType) Route {
	path := make([]ASN, 0, len(r.ASPath)+1)
	path = append(path, asn)
	path = append(path, r.ASPath...)
	return Route{
		Prefix:           r.Prefix,
		ASPath:           path,
		AnnouncementType: at,
		ROVInvalid:       r.ROVInvalid,
	}
}

// RenderPath renders the AS path as the Python tuple literal used in
// ribs.csv: "(a1, a2, ..., ak)", with the one-element special case
// "(a1,)".
func (r Route) RenderPath() string {
	if len(r.ASPath) == 1 {
		return fmt.Sprintf("(%d,)", r.ASPath[0])
	}
	parts := make([]string, len(r.ASPath))
	for i, asn := range r.ASPath {
		parts[i] = strconv.Itoa(int(asn))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
