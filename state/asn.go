package state

// ASN identifies an Autonomous System. It is a defined int rather than a
// type alias so it can't be silently mixed with other integers at
// compile time; the wire/CSV representation stays plain decimal.
type ASN int

// Relation describes a commercial relationship edge from the point of
// view of the AS that owns the adjacency entry.
type Relation int

const (
	ProviderToCustomer Relation = iota
	CustomerToProvider
	PeerToPeer
)

func (r Relation) String() string {
	switch r {
	case ProviderToCustomer:
		return "provider-to-customer"
	case CustomerToProvider:
		return "customer-to-provider"
	case PeerToPeer:
		return "peer-to-peer"
	default:
		return "unknown"
	}
}

// Inverse returns the relation as seen from the other endpoint of the edge.
func (r Relation) Inverse() Relation {
	switch r {
	case ProviderToCustomer:
		return CustomerToProvider
	case CustomerToProvider:
		return ProviderToCustomer
	default:
		return PeerToPeer
	}
}

// AnnouncementType is the receiving AS's view of how a route was learned.
type AnnouncementType int

const (
	LearnedFromCustomer AnnouncementType = iota
	LearnedFromPeer
	LearnedFromProvider
)

func (a AnnouncementType) String() string {
	switch a {
	case LearnedFromCustomer:
		return "customer"
	case LearnedFromPeer:
		return "peer"
	case LearnedFromProvider:
		return "provider"
	default:
		return "unknown"
	}
}

// AnnouncementTypeFromRelation derives the receiver's announcement type
// for an edge typed rel, where rel is the sender's relation to the
// receiver: a customer-to-provider edge is learned-from-customer at the
// receiver, a provider-to-customer edge is learned-from-provider, and a
// peer edge is learned-from-peer.
func AnnouncementTypeFromRelation(rel Relation) AnnouncementType {
	switch rel {
	case CustomerToProvider:
		return LearnedFromCustomer
	case ProviderToCustomer:
		return LearnedFromProvider
	default:
		return LearnedFromPeer
	}
}
