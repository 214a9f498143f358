package factory

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/blocksimlabs/blocksim/src/chain"
	"github.com/blocksimlabs/blocksim/src/config"
	"github.com/blocksimlabs/blocksim/src/network"
	"github.com/blocksimlabs/blocksim/src/simulation"
	"github.com/sirupsen/logrus"
)

// NodeFactory builds node populations and wires them into a full mesh. It
// is the only place nodes are created: it validates the requested locations
// against the measurement table before any node exists, so an unmeasured
// location aborts construction with no partial topology.
type NodeFactory struct {
	config  *config.Config
	env     *simulation.Env
	network *network.Network
	logger  *logrus.Entry
}

// NewNodeFactory ...
func NewNodeFactory(cfg *config.Config, env *simulation.Env, net *network.Network, logger *logrus.Entry) *NodeFactory {
	return &NodeFactory{
		config:  cfg,
		env:     env,
		network: net,
		logger:  logger.WithField("component", "factory"),
	}
}

// CreateNodes builds the population described by the per-location miner and
// non-miner counts, fully connects it, and starts the listening tasks. The
// blockchain selector from the config picks the population builder; an
// unrecognized selector is an error.
func (f *NodeFactory) CreateNodes(miners map[string]int, nonMiners map[string]int) ([]*network.Node, error) {
	if err := f.checkLocations(miners, nonMiners); err != nil {
		return nil, err
	}

	switch f.config.Blockchain {
	case "bitcoin", "ethereum":
		return f.createNodes(f.config.Blockchain, miners, nonMiners)
	default:
		return nil, fmt.Errorf("unknown blockchain %q", f.config.Blockchain)
	}
}

func (f *NodeFactory) createNodes(blockchain string, miners map[string]int, nonMiners map[string]int) ([]*network.Node, error) {
	nodeID := 0 // unique ID for each node

	var nodes []*network.Node

	for _, counts := range []map[string]int{miners, nonMiners} {
		for _, location := range sortedKeys(counts) {
			loc, err := f.config.FindLocation(location)
			if err != nil {
				return nil, err
			}

			for i := 0; i < counts[location]; i++ {
				nodeID++
				address := fmt.Sprintf("%s-%d", strings.ToLower(location), nodeID)

				store, err := f.nodeStore(address)
				if err != nil {
					return nil, err
				}

				node, err := network.NewNode(
					f.env,
					f.network,
					store,
					loc.UploadRate,
					location,
					address,
					f.logger,
				)
				if err != nil {
					return nil, err
				}

				nodes = append(nodes, node)
			}
		}
	}

	f.logger.WithFields(logrus.Fields{
		"blockchain": blockchain,
		"nodes":      len(nodes),
	}).Debug("Created nodes")

	f.connect(nodes)

	return nodes, nil
}

// connect fully connects the population and spawns the listening tasks, one
// per node and inbound neighbor.
func (f *NodeFactory) connect(nodes []*network.Node) {
	for _, node := range nodes {
		for _, other := range nodes {
			if other != node {
				node.AddNeighbors(other)
			}
		}
	}

	for _, node := range nodes {
		loc, err := f.config.FindLocation(node.Location())
		if err != nil {
			// locations were validated before construction
			continue
		}
		node.StartListening(loc.DownloadRate)
	}
}

// nodeStore returns the chain store for a node: badger under the database
// dir when persistence is on, in-memory otherwise.
func (f *NodeFactory) nodeStore(address string) (chain.Store, error) {
	if !f.config.Store {
		return chain.NewInmemStore(), nil
	}
	return chain.NewBadgerStore(filepath.Join(f.config.DatabaseDir, address), f.logger)
}

// checkLocations validates every requested location before any node is
// created.
func (f *NodeFactory) checkLocations(miners map[string]int, nonMiners map[string]int) error {
	var locations []string
	for location := range miners {
		locations = append(locations, location)
	}
	for location := range nonMiners {
		locations = append(locations, location)
	}
	return f.config.ValidateLocations(locations)
}

// sortedKeys fixes the iteration order of a counts map so that node
// addresses are assigned deterministically.
func sortedKeys(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
