package network

import (
	"testing"

	"github.com/blocksimlabs/blocksim/src/simulation"
)

func TestConnectionPutBeforeGet(t *testing.T) {
	f := newTestFixture(t)
	a := f.newNode(t, "a")
	b := f.newNode(t, "b")

	conn := NewConnection(f.env, a, b)

	conn.Put(Envelope{Msg: "m1", Origin: a, Destination: b})
	conn.Put(Envelope{Msg: "m2", Origin: a, Destination: b})

	if p := conn.Pending(); p != 2 {
		t.Fatalf("pending should be 2, not %d", p)
	}

	var got []interface{}
	f.env.Spawn("recv", func(task *simulation.Task) {
		got = append(got, conn.Get(task).Msg)
		got = append(got, conn.Get(task).Msg)
	})

	f.env.Run()

	if len(got) != 2 || got[0] != "m1" || got[1] != "m2" {
		t.Fatalf("expected [m1 m2], got %v", got)
	}
	if p := conn.Pending(); p != 0 {
		t.Fatalf("pending should be 0, not %d", p)
	}
}

func TestConnectionGetParksUntilPut(t *testing.T) {
	f := newTestFixture(t)
	a := f.newNode(t, "a")
	b := f.newNode(t, "b")

	conn := NewConnection(f.env, a, b)

	var receivedAt float64
	f.env.Spawn("recv", func(task *simulation.Task) {
		conn.Get(task)
		receivedAt = f.env.Now()
	})

	f.env.Spawn("put", func(task *simulation.Task) {
		task.Sleep(7)
		conn.Put(Envelope{Msg: "m1", Origin: a, Destination: b})
	})

	f.env.Run()

	if receivedAt != 7 {
		t.Fatalf("envelope should be received at 7, not %v", receivedAt)
	}
}

func TestConnectionEndpoints(t *testing.T) {
	f := newTestFixture(t)
	a := f.newNode(t, "a")
	b := f.newNode(t, "b")

	conn := NewConnection(f.env, a, b)

	if conn.Origin() != a || conn.Destination() != b {
		t.Fatalf("endpoints should be a -> b")
	}
}
