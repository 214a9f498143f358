package chain

import (
	"fmt"
)

// Chain is a node's local copy of the blockchain. It is seeded with a
// genesis block at construction and tracks the head as blocks are appended.
// Fork choice and validation are out of scope: the simulation only measures
// how blocks travel, so AddBlock appends whatever it is given.
type Chain struct {
	store    Store
	head     *Block
	headHash string
}

// NewChain creates a chain seeded with the given genesis block.
func NewChain(store Store, genesis *Block) (*Chain, error) {
	hash, err := genesis.Hash()
	if err != nil {
		return nil, err
	}

	if err := store.SetBlock(genesis); err != nil {
		return nil, err
	}
	if err := store.SetHead(hash); err != nil {
		return nil, err
	}

	return &Chain{
		store:    store,
		head:     genesis,
		headHash: hash,
	}, nil
}

// Head returns the current head block.
func (c *Chain) Head() *Block {
	return c.head
}

// HeadHash returns the hash of the current head block.
func (c *Chain) HeadHash() string {
	return c.headHash
}

// Height returns the number of the head block.
func (c *Chain) Height() int64 {
	return c.head.Header.Number
}

// GetBlock retrieves a block by hash.
func (c *Chain) GetBlock(hash string) (*Block, error) {
	return c.store.GetBlock(hash)
}

// AddBlock appends a block and makes it the new head. The block must extend
// the current head.
func (c *Chain) AddBlock(block *Block) error {
	if block.Header.ParentHash != c.headHash {
		return fmt.Errorf("block %d does not extend head %s", block.Header.Number, c.headHash)
	}

	hash, err := block.Hash()
	if err != nil {
		return err
	}

	if err := c.store.SetBlock(block); err != nil {
		return err
	}
	if err := c.store.SetHead(hash); err != nil {
		return err
	}

	c.head = block
	c.headHash = hash

	return nil
}
