package factory

import (
	"testing"

	"github.com/blocksimlabs/blocksim/src/config"
	"github.com/blocksimlabs/blocksim/src/network"
	"github.com/blocksimlabs/blocksim/src/simulation"
	"github.com/sirupsen/logrus"
)

func newTestFactory(t *testing.T) *NodeFactory {
	cfg := config.NewTestConfig(t, logrus.DebugLevel)
	logger := cfg.Logger()
	env := simulation.NewEnv(logger)
	net := network.NewNetwork(logger)
	return NewNodeFactory(cfg, env, net, logger)
}

func TestCreateNodes(t *testing.T) {
	f := newTestFactory(t)

	miners := map[string]int{"ohio": 2}
	nonMiners := map[string]int{"ireland": 3}

	nodes, err := f.CreateNodes(miners, nonMiners)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	if len(nodes) != 5 {
		t.Fatalf("expected 5 nodes, got %d", len(nodes))
	}
	if f.network.Len() != 5 {
		t.Fatalf("all nodes should have joined the network")
	}

	// Full mesh: every node has every other node as a neighbor.
	for _, node := range nodes {
		for _, other := range nodes {
			if other == node {
				continue
			}
			if _, err := node.Neighbor(other.Address()); err != nil {
				t.Fatalf("%s should have neighbor %s: %v", node.Address(), other.Address(), err)
			}
		}
	}
}

func TestCreateNodesAddresses(t *testing.T) {
	f := newTestFactory(t)

	nodes, err := f.CreateNodes(map[string]int{"ohio": 2}, map[string]int{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	if nodes[0].Address() != "ohio-1" || nodes[1].Address() != "ohio-2" {
		t.Fatalf("addresses should be ohio-1, ohio-2; got %s, %s",
			nodes[0].Address(), nodes[1].Address())
	}
}

func TestCreateNodesUnknownLocation(t *testing.T) {
	f := newTestFactory(t)

	_, err := f.CreateNodes(map[string]int{"atlantis": 1}, map[string]int{"ohio": 2})
	if err == nil {
		t.Fatalf("CreateNodes should generate an error")
	}
	if !config.IsUnknownLocation(err) {
		t.Fatalf("expected UnknownLocationError, got %v", err)
	}

	// Fail fast: no partial topology.
	if f.network.Len() != 0 {
		t.Fatalf("no node should have been created, found %d", f.network.Len())
	}
}

func TestCreateNodesUnknownBlockchain(t *testing.T) {
	f := newTestFactory(t)
	f.config.Blockchain = "tangle"

	_, err := f.CreateNodes(map[string]int{"ohio": 1}, map[string]int{})
	if err == nil {
		t.Fatalf("CreateNodes should generate an error")
	}
	if f.network.Len() != 0 {
		t.Fatalf("no node should have been created, found %d", f.network.Len())
	}
}

func TestCreatedNodesGossip(t *testing.T) {
	f := newTestFactory(t)

	nodes, err := f.CreateNodes(map[string]int{"ohio": 1}, map[string]int{"ireland": 1})
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	a, b := nodes[0], nodes[1]

	var sendErr error
	f.env.Spawn("send", func(task *simulation.Task) {
		sendErr = a.Send(task, b.Address(), 5, "block1")
	})

	f.env.RunUntil(100)

	if sendErr != nil {
		t.Fatalf("err: %v", sendErr)
	}
}
