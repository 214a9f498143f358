package network

// Envelope is the timed wrapper around a gossip message. It is produced by
// the sender once the simulated upload completes, and consumed exactly once
// by the destination's listening task.
type Envelope struct {
	Msg         interface{}
	Timestamp   float64
	Destination *Node
	Origin      *Node
}
