package chain

import (
	"crypto/sha256"

	"github.com/blocksimlabs/blocksim/src/common"
)

// Hashes in the simulation are SHA256 digests encoded with the common hex
// convention. They identify blocks and transactions for gossip bookkeeping;
// nothing verifies them cryptographically.

func hashBytes(data []byte) []byte {
	hasher := sha256.New()
	hasher.Write(data)
	return hasher.Sum(nil)
}

func hashPair(left []byte, right []byte) []byte {
	hasher := sha256.New()
	hasher.Write(left)
	hasher.Write(right)
	return hasher.Sum(nil)
}

func hashToString(digest []byte) string {
	return common.EncodeToString(digest)
}
