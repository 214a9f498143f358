package network

import (
	"github.com/blocksimlabs/blocksim/src/simulation"
)

// Connection is a directed communication edge between two nodes. The origin
// deposits envelopes with Put; only the destination consumes them with Get.
// The queue is unbounded and FIFO, so Put never blocks and envelopes are
// never reordered, duplicated, or dropped. Both endpoint nodes share the
// connection for the lifetime of the topology.
type Connection struct {
	env         *simulation.Env
	origin      *Node
	destination *Node
	queue       []Envelope
	waiter      *simulation.Task
}

// NewConnection creates the edge from origin to destination.
func NewConnection(env *simulation.Env, origin, destination *Node) *Connection {
	return &Connection{
		env:         env,
		origin:      origin,
		destination: destination,
	}
}

// Origin returns the sending endpoint.
func (c *Connection) Origin() *Node {
	return c.origin
}

// Destination returns the consuming endpoint.
func (c *Connection) Destination() *Node {
	return c.destination
}

// Put enqueues an envelope for the destination. It never blocks. If the
// destination's listening task is parked on an empty queue, it is woken at
// the current virtual time.
func (c *Connection) Put(envelope Envelope) {
	c.queue = append(c.queue, envelope)

	if c.waiter != nil {
		waiter := c.waiter
		c.waiter = nil
		c.env.Wake(waiter)
	}
}

// Get returns the next envelope, suspending the calling task until one is
// available. A connection has a single consumer, so at most one task can be
// parked here at a time.
func (c *Connection) Get(t *simulation.Task) Envelope {
	for len(c.queue) == 0 {
		c.waiter = t
		t.Park()
	}

	envelope := c.queue[0]
	c.queue = c.queue[1:]

	return envelope
}

// Pending returns the number of envelopes waiting to be consumed.
func (c *Connection) Pending() int {
	return len(c.queue)
}
