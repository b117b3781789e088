package state

// MaxIterations bounds the propagation loop: if the RIB entry count has
// not stabilized after this many full up/peer/down iterations, the run is
// declared non-convergent.
const MaxIterations = 20

// LocalRIB is an AS's best-route table, keyed by prefix.
type LocalRIB map[string]Route

// MessageQueue holds routes an AS has received but not yet processed,
// keyed by prefix, in receipt order.
type MessageQueue map[string][]Route

// RoutingState holds every AS's Local-RIB and inbound message queue for a
// single simulation run, plus the set of ASes that apply Route Origin
// Validation.
type RoutingState struct {
	RIBs    map[ASN]LocalRIB
	Queues  map[ASN]MessageQueue
	ROVASNs map[ASN]bool
}

// NewRoutingState returns an empty routing state. A nil rov map means no
// AS applies ROV.
func NewRoutingState(rov map[ASN]bool) *RoutingState {
	if rov == nil {
		rov = make(map[ASN]bool)
	}
	return &RoutingState{
		RIBs:    make(map[ASN]LocalRIB),
		Queues:  make(map[ASN]MessageQueue),
		ROVASNs: rov,
	}
}

// RIB returns asn's Local-RIB, creating it on first access.
func (rs *RoutingState) RIB(asn ASN) LocalRIB {
	rib, ok := rs.RIBs[asn]
	if !ok {
		rib = make(LocalRIB)
		rs.RIBs[asn] = rib
	}
	return rib
}

// Queue returns asn's message queue, creating it on first access.
func (rs *RoutingState) Queue(asn ASN) MessageQueue {
	q, ok := rs.Queues[asn]
	if !ok {
		q = make(MessageQueue)
		rs.Queues[asn] = q
	}
	return q
}

// ClearQueue empties asn's message queue; called once Process has drained it.
func (rs *RoutingState) ClearQueue(asn ASN) {
	rs.Queues[asn] = make(MessageQueue)
}

// Enqueue appends route to asn's message queue under route.Prefix.
func (rs *RoutingState) Enqueue(asn ASN, route Route) {
	q := rs.Queue(asn)
	q[route.Prefix] = append(q[route.Prefix], route)
}

// Seed installs a single-hop origin route directly into origin's
// Local-RIB. Re-seeding the same (origin, prefix, rovInvalid) is
// idempotent: it overwrites with an identical entry.
func (rs *RoutingState) Seed(origin ASN, prefix string, rovInvalid bool) {
	rs.RIB(origin)[prefix] = NewSeedRoute(origin, prefix, rovInvalid)
}

// IsROVEnabled reports whether asn applies Route Origin Validation.
func (rs *RoutingState) IsROVEnabled(asn ASN) bool {
	return rs.ROVASNs[asn]
}

// TotalRoutes returns the total RIB entry count across every AS, used as
// the propagation loop's convergence signal.
func (rs *RoutingState) TotalRoutes() int {
	total := 0
	for _, rib := range rs.RIBs {
		total += len(rib)
	}
	return total
}
