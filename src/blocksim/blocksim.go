package blocksim

import (
	"fmt"

	"github.com/blocksimlabs/blocksim/src/chain"
	"github.com/blocksimlabs/blocksim/src/config"
	"github.com/blocksimlabs/blocksim/src/factory"
	"github.com/blocksimlabs/blocksim/src/network"
	"github.com/blocksimlabs/blocksim/src/simulation"
	"github.com/sirupsen/logrus"
)

// Blocksim is the simulation engine. It assembles the virtual-time
// environment, the network, and the node population, schedules gossip
// workloads, and drives the clock.
type Blocksim struct {
	Config  *config.Config
	Env     *simulation.Env
	Network *network.Network
	Factory *factory.NodeFactory
	Nodes   []*network.Node

	logger *logrus.Entry
}

// NewBlocksim ...
func NewBlocksim(cfg *config.Config) *Blocksim {
	return &Blocksim{
		Config: cfg,
		logger: cfg.Logger(),
	}
}

// Init builds the environment and the node population described by the
// per-location miner and non-miner counts.
func (b *Blocksim) Init(miners map[string]int, nonMiners map[string]int) error {
	b.Env = simulation.NewEnv(b.logger)
	b.Network = network.NewNetwork(b.logger)
	b.Factory = factory.NewNodeFactory(b.Config, b.Env, b.Network, b.logger)

	nodes, err := b.Factory.CreateNodes(miners, nonMiners)
	if err != nil {
		return err
	}
	b.Nodes = nodes

	b.logger.WithFields(logrus.Fields{
		"blockchain": b.Config.Blockchain,
		"nodes":      len(nodes),
	}).Debug("Init")

	return nil
}

// BroadcastTransaction schedules a gossip task that relays the transaction
// from origin to every neighbor that has not seen it yet. This is the relay
// policy layer: it consults the known sets before paying the transmission
// cost, and marks after sending. The node core itself never gates delivery.
func (b *Blocksim) BroadcastTransaction(origin *network.Node, tx *chain.Transaction) error {
	hash, err := tx.Hash()
	if err != nil {
		return err
	}
	return b.broadcast(origin, hash, tx, origin.MarkTransaction, origin.KnownTransaction)
}

// BroadcastBlock schedules a gossip task that relays the block from origin
// to every neighbor that has not seen it yet.
func (b *Blocksim) BroadcastBlock(origin *network.Node, block *chain.Block) error {
	hash, err := block.Hash()
	if err != nil {
		return err
	}
	return b.broadcast(origin, hash, block, origin.MarkBlock, origin.KnownBlock)
}

func (b *Blocksim) broadcast(
	origin *network.Node,
	hash string,
	msg interface{},
	mark func(string, string) error,
	known func(string, string) (bool, error),
) error {
	loc, err := b.Config.FindLocation(origin.Location())
	if err != nil {
		return err
	}

	name := fmt.Sprintf("broadcast-%s", origin.Address())
	b.Env.Spawn(name, func(t *simulation.Task) {
		for _, address := range origin.NeighborAddresses() {
			seen, err := known(hash, address)
			if err != nil {
				b.logger.WithField("error", err).Error("Broadcast aborted")
				return
			}
			if seen {
				continue
			}

			if err := origin.Send(t, address, loc.UploadRate, msg); err != nil {
				b.logger.WithField("error", err).Error("Broadcast aborted")
				return
			}
			if err := mark(hash, address); err != nil {
				b.logger.WithField("error", err).Error("Broadcast aborted")
				return
			}
		}
	})

	return nil
}

// Run drives the virtual clock until the configured simulation duration.
func (b *Blocksim) Run() {
	b.logger.WithField("duration", b.Config.SimDuration).Debug("Run")
	b.Env.RunUntil(b.Config.SimDuration)
	b.logger.WithField("time", b.Env.Now()).Debug("Simulation finished")
}
