package core

import (
	"fmt"

	"github.com/routesim/gaorex/state"
)

// ErrCycleDetected is returned when the AS graph contains a
// customer-provider cycle; propagation never starts. At names the AS the
// cycle-check DFS found the back edge at, since the original simulator
// reports the offending AS rather than just failing generically.
type ErrCycleDetected struct {
	At state.ASN
}

func (e ErrCycleDetected) Error() string {
	return fmt.Sprintf("customer-provider cycle detected at AS %d", e.At)
}

// ErrNonConvergent is returned when the propagation loop exceeds the
// iteration cap without the RIB entry count stabilizing.
type ErrNonConvergent struct {
	Iterations int
}

func (e ErrNonConvergent) Error() string {
	return fmt.Sprintf("propagation did not converge after %d iterations", e.Iterations)
}
