package chain

import (
	cm "github.com/blocksimlabs/blocksim/src/common"
)

// InmemStore implements the Store interface with plain maps.
type InmemStore struct {
	blocks map[string]*Block
	head   string
}

// NewInmemStore ...
func NewInmemStore() *InmemStore {
	return &InmemStore{
		blocks: make(map[string]*Block),
	}
}

// GetBlock ...
func (s *InmemStore) GetBlock(hash string) (*Block, error) {
	block, ok := s.blocks[hash]
	if !ok {
		return nil, cm.NewStoreErr("Block", cm.KeyNotFound, hash)
	}
	return block, nil
}

// SetBlock ...
func (s *InmemStore) SetBlock(block *Block) error {
	hash, err := block.Hash()
	if err != nil {
		return err
	}
	s.blocks[hash] = block
	return nil
}

// Head ...
func (s *InmemStore) Head() (string, error) {
	if s.head == "" {
		return "", cm.NewStoreErr("Head", cm.NoHead, "")
	}
	return s.head, nil
}

// SetHead ...
func (s *InmemStore) SetHead(hash string) error {
	s.head = hash
	return nil
}

// Close ...
func (s *InmemStore) Close() error {
	return nil
}
