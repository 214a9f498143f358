// Package network implements the node communication core of the blocksim
// simulator.
//
// Nodes exchange gossip messages over Connections, which are directed edges
// with an unbounded FIFO queue of timed envelopes. A node sends by paying a
// simulated handshake and upload delay on the virtual clock, then
// depositing an Envelope on the connection; the destination's listening
// task wakes, pays a download delay, and loops. Per neighbor, a node keeps
// bounded known-transaction and known-block sets so a higher relay policy
// can avoid re-propagating items a neighbor has already seen: the core
// records and answers those bookkeeping queries but never gates delivery
// itself.
//
// Nothing here touches a real network; all delivery is driven by the
// simulation package's virtual-time scheduler.
package network
