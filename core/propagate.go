package core

import "github.com/routesim/gaorex/state"

// Send attempts to advertise route from sender to receiver across the
// edge typed rel (sender's relation to receiver). It applies loop
// prevention (never send a route back to an AS already on its path) and
// the Gao-Rexford export policy; on success it enqueues a new route at
// the receiver with receiver prepended and the announcement type
// recomputed for that edge.
func Send(rs *state.RoutingState, receiver state.ASN, route state.Route, rel state.Relation) {
	if route.Contains(receiver) {
		return
	}
	if !CanExport(route, rel) {
		return
	}
	rs.Enqueue(receiver, route.WithHop(receiver, state.AnnouncementTypeFromRelation(rel)))
}

// Process ingests every route queued at asn: a Route Origin Validation-
// enabled AS drops ROV-invalid candidates on ingress; otherwise a
// candidate installs if the prefix has no incumbent, or replaces the
// incumbent iff ShouldReplace reports it strictly better. The queue is
// cleared once every prefix has been processed.
func Process(rs *state.RoutingState, asn state.ASN) {
	rovEnabled := rs.IsROVEnabled(asn)
	rib := rs.RIB(asn)
	for prefix, candidates := range rs.Queue(asn) {
		for _, candidate := range candidates {
			if rovEnabled && candidate.ROVInvalid {
				continue
			}
			incumbent, ok := rib[prefix]
			if !ok || ShouldReplace(candidate, incumbent, rovEnabled) {
				rib[prefix] = candidate
			}
		}
	}
	rs.ClearQueue(asn)
}

// Engine drives the three-phase propagation loop over a fixed AS graph
// and rank index against a shared RoutingState.
type Engine struct {
	Graph *state.ASGraph
	Ranks *state.RankIndex
	State *state.RoutingState
}

// NewEngine checks for a customer-provider cycle, flattens the graph into
// ranks, and returns an Engine ready to run. Announcements must already be
// seeded into state before calling Run.
func NewEngine(g *state.ASGraph, rs *state.RoutingState) (*Engine, error) {
	if at, cyclic := g.HasCustomerProviderCycle(); cyclic {
		return nil, ErrCycleDetected{At: at}
	}
	return &Engine{
		Graph: g,
		Ranks: state.FlattenGraph(g),
		State: rs,
	}, nil
}

// sendAlong sends every route in asn's Local-RIB across every neighbor
// edge of type want.
func (e *Engine) sendAlong(asn state.ASN, want state.Relation) {
	for _, route := range e.State.RIB(asn) {
		for _, edge := range e.Graph.Neighbors(asn) {
			if edge.Relation == want {
				Send(e.State, edge.Neighbor, route, edge.Relation)
			}
		}
	}
}

// upPhase sends customer routes toward providers, one rank at a time,
// processing each rank's inbox as soon as the rank below it has sent.
func (e *Engine) upPhase() {
	groups := e.Ranks.Groups
	for r := 0; r < len(groups); r++ {
		for _, asn := range groups[r] {
			e.sendAlong(asn, state.CustomerToProvider)
		}
		if r+1 < len(groups) {
			for _, asn := range groups[r+1] {
				Process(e.State, asn)
			}
		}
	}
}

// peerPhase sends routes across every peer edge, one rank at a time, and
// processes that same rank's inbox right after it has sent. A peer at a
// different rank ingests the route at its own rank's step or in a later
// phase.
func (e *Engine) peerPhase() {
	groups := e.Ranks.Groups
	for r := 0; r < len(groups); r++ {
		for _, asn := range groups[r] {
			e.sendAlong(asn, state.PeerToPeer)
		}
		for _, asn := range groups[r] {
			Process(e.State, asn)
		}
	}
}

// downPhase sends provider routes toward customers, one rank at a time
// from the top down.
func (e *Engine) downPhase() {
	groups := e.Ranks.Groups
	for r := len(groups) - 1; r >= 0; r-- {
		for _, asn := range groups[r] {
			e.sendAlong(asn, state.ProviderToCustomer)
		}
		if r > 0 {
			for _, asn := range groups[r-1] {
				Process(e.State, asn)
			}
		}
	}
}

// IterationReport is one row of the convergence trace: the RIB entry
// count after a full up/peer/down iteration, and its change from the
// prior iteration.
type IterationReport struct {
	Iteration int
	Total     int
	Delta     int
}

// Run iterates up/peer/down phases until the total RIB entry count is
// stable across a full iteration, or the iteration cap is exceeded.
// Callers must seed announcements into the Engine's RoutingState before
// calling Run.
func (e *Engine) Run() ([]IterationReport, error) {
	var reports []IterationReport
	prevTotal := 0
	for iteration := 1; iteration <= state.MaxIterations; iteration++ {
		e.upPhase()
		e.peerPhase()
		e.downPhase()

		total := e.State.TotalRoutes()
		reports = append(reports, IterationReport{
			Iteration: iteration,
			Total:     total,
			Delta:     total - prevTotal,
		})

		if total == prevTotal {
			return reports, nil
		}
		prevTotal = total
	}
	return reports, ErrNonConvergent{Iterations: state.MaxIterations}
}
