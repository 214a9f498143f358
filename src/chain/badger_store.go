package chain

import (
	cm "github.com/blocksimlabs/blocksim/src/common"
	"github.com/dgraph-io/badger"
	"github.com/sirupsen/logrus"
)

const (
	blockPrefix = "block"
	headKey     = "head"
)

// BadgerStore implements the Store interface on top of a badger database,
// writing through an InmemStore so reads stay cheap during the run.
type BadgerStore struct {
	inmemStore *InmemStore
	db         *badger.DB
	path       string
}

// NewBadgerStore opens, or creates, a badger database in path.
func NewBadgerStore(path string, logger *logrus.Entry) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).
		WithSyncWrites(false).
		WithTruncate(true)

	if logger != nil {
		opts = opts.WithLogger(logger.WithField("ns", "badger"))
	}

	handle, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &BadgerStore{
		inmemStore: NewInmemStore(),
		db:         handle,
		path:       path,
	}, nil
}

// Path returns the database directory.
func (s *BadgerStore) Path() string {
	return s.path
}

// GetBlock ...
func (s *BadgerStore) GetBlock(hash string) (*Block, error) {
	block, err := s.inmemStore.GetBlock(hash)
	if err != nil {
		block, err = s.dbGetBlock(hash)
	}
	return block, err
}

// SetBlock ...
func (s *BadgerStore) SetBlock(block *Block) error {
	if err := s.inmemStore.SetBlock(block); err != nil {
		return err
	}
	return s.dbSetBlock(block)
}

// Head ...
func (s *BadgerStore) Head() (string, error) {
	head, err := s.inmemStore.Head()
	if err != nil {
		head, err = s.dbGetHead()
	}
	return head, err
}

// SetHead ...
func (s *BadgerStore) SetHead(hash string) error {
	if err := s.inmemStore.SetHead(hash); err != nil {
		return err
	}
	return s.dbSetHead(hash)
}

// Close ...
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

/*******************************************************************************
DB Methods
*******************************************************************************/

func blockKey(hash string) []byte {
	return []byte(blockPrefix + "_" + hash)
}

func (s *BadgerStore) dbGetBlock(hash string) (*Block, error) {
	var blockBytes []byte
	key := blockKey(hash)
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		blockBytes, err = item.ValueCopy(nil)
		return err
	})

	if err != nil {
		return nil, cm.NewStoreErr("Block", cm.KeyNotFound, hash)
	}

	block := new(Block)
	if err := block.Unmarshal(blockBytes); err != nil {
		return nil, err
	}

	return block, nil
}

func (s *BadgerStore) dbSetBlock(block *Block) error {
	tx := s.db.NewTransaction(true)
	defer tx.Discard()

	hash, err := block.Hash()
	if err != nil {
		return err
	}

	val, err := block.Marshal()
	if err != nil {
		return err
	}

	//insert [block_hash] => [block bytes]
	if err := tx.Set(blockKey(hash), val); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *BadgerStore) dbGetHead() (string, error) {
	var head []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(headKey))
		if err != nil {
			return err
		}
		head, err = item.ValueCopy(nil)
		return err
	})

	if err != nil {
		return "", cm.NewStoreErr("Head", cm.NoHead, "")
	}

	return string(head), nil
}

func (s *BadgerStore) dbSetHead(hash string) error {
	tx := s.db.NewTransaction(true)
	defer tx.Discard()

	if err := tx.Set([]byte(headKey), []byte(hash)); err != nil {
		return err
	}

	return tx.Commit()
}
