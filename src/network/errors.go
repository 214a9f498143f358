package network

import "fmt"

// NeighborUnreachableError signals that a node referenced a neighbor address
// for which it holds no connection. It is a wiring defect, not a transient
// network condition: callers are expected to abort the simulation step.
type NeighborUnreachableError struct {
	Node     string
	Neighbor string
}

// NewNeighborUnreachableError ...
func NewNeighborUnreachableError(node, neighbor string) NeighborUnreachableError {
	return NeighborUnreachableError{
		Node:     node,
		Neighbor: neighbor,
	}
}

// Error ...
func (e NeighborUnreachableError) Error() string {
	return fmt.Sprintf("Neighbor %s not reachable by node %s", e.Neighbor, e.Node)
}

// IsNeighborUnreachable checks that an error is of type
// NeighborUnreachableError.
func IsNeighborUnreachable(err error) bool {
	_, ok := err.(NeighborUnreachableError)
	return ok
}
