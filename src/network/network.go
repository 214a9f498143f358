package network

import (
	"github.com/sirupsen/logrus"
)

// Network is the registry of all simulated nodes. Nodes join it on
// construction; the topology itself lives in the nodes' neighbor state.
// Registering two nodes under the same address is a caller error and is not
// validated here.
type Network struct {
	nodes  map[string]*Node
	logger *logrus.Entry
}

// NewNetwork ...
func NewNetwork(logger *logrus.Entry) *Network {
	return &Network{
		nodes:  make(map[string]*Node),
		logger: logger.WithField("component", "network"),
	}
}

// AddNode registers a node.
func (n *Network) AddNode(node *Node) {
	n.nodes[node.Address()] = node

	n.logger.WithFields(logrus.Fields{
		"address":  node.Address(),
		"location": node.Location(),
	}).Debug("Node joined the network")
}

// GetNode returns the node registered under address, or nil.
func (n *Network) GetNode(address string) *Node {
	return n.nodes[address]
}

// Len returns the number of registered nodes.
func (n *Network) Len() int {
	return len(n.nodes)
}

// Nodes returns all registered nodes, in no particular order.
func (n *Network) Nodes() []*Node {
	nodes := make([]*Node, 0, len(n.nodes))
	for _, node := range n.nodes {
		nodes = append(nodes, node)
	}
	return nodes
}
