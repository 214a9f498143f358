package network

import (
	"fmt"
	"sort"

	"github.com/blocksimlabs/blocksim/src/chain"
	"github.com/blocksimlabs/blocksim/src/common"
	"github.com/blocksimlabs/blocksim/src/simulation"
	"github.com/sirupsen/logrus"
)

const (
	// MaxKnownTxs is the maximum number of transaction hashes to keep in a
	// neighbor's known list (prevent DOS).
	MaxKnownTxs = 30000

	// MaxKnownBlocks is the maximum number of block hashes to keep in a
	// neighbor's known list (prevent DOS).
	MaxKnownBlocks = 1024

	// HandshakeDelay is the fixed virtual-time cost of establishing a
	// connection before an upload starts.
	HandshakeDelay float64 = 3
)

// NeighborState is the bookkeeping a node keeps about one directly
// connected peer. It is mutated only by the owning node's tasks.
type NeighborState struct {
	// Connection is the outbound edge used to send to this neighbor.
	Connection *Connection

	// Head is the last observed chain-head hash of the neighbor. It is
	// advisory and may be stale.
	Head string

	// Location of the neighbor, kept for transmission-parameter lookups.
	Location string

	// KnownTxs and KnownBlocks record the item hashes already exchanged
	// with this neighbor, so they are never re-relayed to it. Both are
	// bounded; when full an arbitrary member is evicted.
	KnownTxs    *common.BoundedSet
	KnownBlocks *common.BoundedSet
}

// Node is the core actor of the simulation. Each node starts with a clean,
// genesis-seeded chain and joins the network on construction. Neighbors
// must then be added explicitly; there is no discovery mechanism. The
// geographic location and transmission speed exist so the surrounding
// tooling can model real-world propagation delays.
type Node struct {
	env               *simulation.Env
	network           *Network
	transmissionSpeed float64
	location          string
	address           string
	neighbors         map[string]*NeighborState
	inbound           map[string]*Connection
	chain             *chain.Chain
	logger            *logrus.Entry
}

// NewNode creates a node with a fresh chain seeded from a genesis block,
// backed by the given store (in-memory if nil), and joins it to the
// network.
func NewNode(
	env *simulation.Env,
	network *Network,
	store chain.Store,
	transmissionSpeed float64,
	location string,
	address string,
	logger *logrus.Entry,
) (*Node, error) {
	if store == nil {
		store = chain.NewInmemStore()
	}

	nodeChain, err := chain.NewChain(store, chain.NewGenesisBlock())
	if err != nil {
		return nil, err
	}

	node := &Node{
		env:               env,
		network:           network,
		transmissionSpeed: transmissionSpeed,
		location:          location,
		address:           address,
		neighbors:         make(map[string]*NeighborState),
		inbound:           make(map[string]*Connection),
		chain:             nodeChain,
		logger:            logger.WithField("node", address),
	}

	network.AddNode(node)

	return node, nil
}

// Address returns the node's unique address.
func (n *Node) Address() string {
	return n.address
}

// Location returns the node's geographic tag.
func (n *Node) Location() string {
	return n.location
}

// TransmissionSpeed returns the node's configured transmission speed.
func (n *Node) TransmissionSpeed() float64 {
	return n.transmissionSpeed
}

// Chain returns the node's own chain.
func (n *Node) Chain() *chain.Chain {
	return n.chain
}

// AddNeighbors wires the given nodes as neighbors. For each one, a fresh
// connection is created and the neighbor state is replaced wholesale: known
// sets come back empty and the head is re-read from the neighbor's chain.
// Re-adding an existing neighbor therefore resets its anti-replay
// bookkeeping; there is deliberately no merge.
func (n *Node) AddNeighbors(nodes ...*Node) {
	for _, node := range nodes {
		connection := NewConnection(n.env, n, node)

		n.neighbors[node.address] = &NeighborState{
			Connection:  connection,
			Head:        node.chain.HeadHash(),
			Location:    node.location,
			KnownTxs:    common.NewBoundedSet(MaxKnownTxs),
			KnownBlocks: common.NewBoundedSet(MaxKnownBlocks),
		}

		// The destination consumes from the connection, so hand it the
		// inbound side. This happens only at wiring time, before any task
		// runs.
		node.inbound[n.address] = connection

		n.logger.WithField("neighbor", node.address).Debug("Added neighbor")
	}
}

// NeighborAddresses returns the addresses of all wired neighbors, sorted so
// relay policies iterate them deterministically.
func (n *Node) NeighborAddresses() []string {
	addresses := make([]string, 0, len(n.neighbors))
	for address := range n.neighbors {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)
	return addresses
}

// Neighbor returns the state kept for the given neighbor, or a
// NeighborUnreachableError if the address was never wired.
func (n *Node) Neighbor(address string) (*NeighborState, error) {
	neighbor, ok := n.neighbors[address]
	if !ok {
		return nil, NewNeighborUnreachableError(n.address, address)
	}
	return neighbor, nil
}

// MarkBlock marks a block as known for the neighbor, ensuring that it will
// never be propagated to this particular neighbor again.
func (n *Node) MarkBlock(blockHash string, neighborAddress string) error {
	neighbor, err := n.Neighbor(neighborAddress)
	if err != nil {
		return err
	}
	neighbor.KnownBlocks.Add(blockHash)
	return nil
}

// MarkTransaction marks a transaction as known for the neighbor, ensuring
// that it will never be propagated to this particular neighbor again.
func (n *Node) MarkTransaction(txHash string, neighborAddress string) error {
	neighbor, err := n.Neighbor(neighborAddress)
	if err != nil {
		return err
	}
	neighbor.KnownTxs.Add(txHash)
	return nil
}

// KnownBlock reports whether the block was already exchanged with the
// neighbor. The relay decision belongs to the caller: Send does not consult
// this.
func (n *Node) KnownBlock(blockHash string, neighborAddress string) (bool, error) {
	neighbor, err := n.Neighbor(neighborAddress)
	if err != nil {
		return false, err
	}
	return neighbor.KnownBlocks.Contains(blockHash), nil
}

// KnownTransaction reports whether the transaction was already exchanged
// with the neighbor.
func (n *Node) KnownTransaction(txHash string, neighborAddress string) (bool, error) {
	neighbor, err := n.Neighbor(neighborAddress)
	if err != nil {
		return false, err
	}
	return neighbor.KnownTxs.Contains(txHash), nil
}

// Send transmits a message to a neighbor. The calling task suspends for the
// handshake delay and then for uploadRate virtual-time units before the
// envelope is deposited on the connection. If the destination is not a
// wired neighbor, it fails with NeighborUnreachableError before the clock
// advances.
//
// Send does not touch the known sets: marking is a separate step so a
// higher gossip policy can decide whether to relay before paying the
// transmission cost.
func (n *Node) Send(t *simulation.Task, destinationAddress string, uploadRate float64, msg interface{}) error {
	neighbor, err := n.Neighbor(destinationAddress)
	if err != nil {
		return err
	}

	t.Sleep(HandshakeDelay)
	t.Sleep(uploadRate)

	connection := neighbor.Connection
	envelope := Envelope{
		Msg:         msg,
		Timestamp:   n.env.Now(),
		Destination: connection.Destination(),
		Origin:      connection.Origin(),
	}
	connection.Put(envelope)

	n.logger.WithFields(logrus.Fields{
		"time":        n.env.Now(),
		"destination": destinationAddress,
		"msg":         msg,
	}).Debug("Sent message")

	return nil
}

// Listening consumes inbound envelopes from the given neighbor, forever.
// Each receipt is followed by a suspension of downloadRate virtual-time
// units simulating the download. It only returns on setup failure, when no
// inbound connection from originAddress exists.
func (n *Node) Listening(t *simulation.Task, originAddress string, downloadRate float64) error {
	connection, ok := n.inbound[originAddress]
	if !ok {
		return NewNeighborUnreachableError(n.address, originAddress)
	}

	n.logger.WithFields(logrus.Fields{
		"time": n.env.Now(),
		"from": originAddress,
	}).Debug("Listening for inbound connections")

	for {
		envelope := connection.Get(t)

		n.logger.WithFields(logrus.Fields{
			"time":      n.env.Now(),
			"msg":       envelope.Msg,
			"timestamp": envelope.Timestamp,
			"from":      envelope.Origin.address,
		}).Debug("Received message")

		t.Sleep(downloadRate)
	}
}

// StartListening spawns one listening task per inbound connection. It is
// meant to be called once at setup time, after the topology is wired. Tasks
// are spawned in sorted origin order so runs stay reproducible.
func (n *Node) StartListening(downloadRate float64) {
	origins := make([]string, 0, len(n.inbound))
	for origin := range n.inbound {
		origins = append(origins, origin)
	}
	sort.Strings(origins)

	for _, origin := range origins {
		origin := origin
		name := fmt.Sprintf("%s<-%s", n.address, origin)
		n.env.Spawn(name, func(t *simulation.Task) {
			if err := n.Listening(t, origin, downloadRate); err != nil {
				n.logger.WithField("error", err).Error("Listening aborted")
			}
		})
	}
}
