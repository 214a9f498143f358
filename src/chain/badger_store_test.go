package chain

import (
	"io/ioutil"
	"os"
	"testing"

	cm "github.com/blocksimlabs/blocksim/src/common"
	"github.com/sirupsen/logrus"
)

func initBadgerStore(t *testing.T) (*BadgerStore, string) {
	dir, err := ioutil.TempDir("", "blocksim")
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	logger := cm.NewTestEntry(t, "chain", logrus.ErrorLevel)

	store, err := NewBadgerStore(dir, logger)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	return store, dir
}

func TestBadgerStoreBlocks(t *testing.T) {
	store, dir := initBadgerStore(t)
	defer os.RemoveAll(dir)
	defer store.Close()

	genesis := NewGenesisBlock()
	hash, err := genesis.Hash()
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	// Try a read, should get nothing
	if _, err := store.GetBlock(hash); !cm.IsStore(err, cm.KeyNotFound) {
		t.Fatalf("expected KeyNotFound, got %v", err)
	}

	if err := store.SetBlock(genesis); err != nil {
		t.Fatalf("err: %v", err)
	}

	got, err := store.GetBlock(hash)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	gotHash, err := got.Hash()
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if gotHash != hash {
		t.Fatalf("retrieved block hash mismatch")
	}

	// The badger layer must hold the block too, not just the write-through
	// cache.
	fromDB, err := store.dbGetBlock(hash)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	dbHash, err := fromDB.Hash()
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if dbHash != hash {
		t.Fatalf("db block hash mismatch")
	}
}

func TestBadgerStoreHead(t *testing.T) {
	store, dir := initBadgerStore(t)
	defer os.RemoveAll(dir)
	defer store.Close()

	if _, err := store.Head(); !cm.IsStore(err, cm.NoHead) {
		t.Fatalf("expected NoHead, got %v", err)
	}

	if err := store.SetHead("0Xabcd"); err != nil {
		t.Fatalf("err: %v", err)
	}

	head, err := store.Head()
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if head != "0Xabcd" {
		t.Fatalf("head should be 0Xabcd, not %s", head)
	}

	if dbHead, err := store.dbGetHead(); err != nil || dbHead != "0Xabcd" {
		t.Fatalf("db head should be 0Xabcd, got %s (%v)", dbHead, err)
	}
}

func TestInmemStoreBlocks(t *testing.T) {
	store := NewInmemStore()

	if _, err := store.GetBlock("0X00"); !cm.IsStore(err, cm.KeyNotFound) {
		t.Fatalf("expected KeyNotFound, got %v", err)
	}

	genesis := NewGenesisBlock()
	if err := store.SetBlock(genesis); err != nil {
		t.Fatalf("err: %v", err)
	}

	hash, _ := genesis.Hash()
	if got, err := store.GetBlock(hash); err != nil || got != genesis {
		t.Fatalf("expected genesis back, got %v (%v)", got, err)
	}
}
