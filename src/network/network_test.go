package network

import (
	"testing"
)

func TestNetworkRegistry(t *testing.T) {
	f := newTestFixture(t)

	a := f.newNode(t, "a")
	b := f.newNode(t, "b")

	// Nodes join the network on construction.
	if l := f.network.Len(); l != 2 {
		t.Fatalf("network should have 2 nodes, not %d", l)
	}
	if got := f.network.GetNode("a"); got != a {
		t.Fatalf("GetNode(a) returned %v", got)
	}
	if got := f.network.GetNode("b"); got != b {
		t.Fatalf("GetNode(b) returned %v", got)
	}
	if got := f.network.GetNode("c"); got != nil {
		t.Fatalf("GetNode(c) should be nil, not %v", got)
	}
	if l := len(f.network.Nodes()); l != 2 {
		t.Fatalf("Nodes() should have 2 entries, not %d", l)
	}
}
