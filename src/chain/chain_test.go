package chain

import (
	"testing"
)

func TestNewChainSeedsGenesis(t *testing.T) {
	c, err := NewChain(NewInmemStore(), NewGenesisBlock())
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	if c.Height() != 0 {
		t.Fatalf("genesis height should be 0, not %d", c.Height())
	}
	if c.HeadHash() == "" {
		t.Fatalf("head hash should not be empty")
	}

	head, err := c.GetBlock(c.HeadHash())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if head != c.Head() {
		t.Fatalf("stored head should be the genesis block")
	}
}

func TestAddBlock(t *testing.T) {
	c, err := NewChain(NewInmemStore(), NewGenesisBlock())
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	txs := Transactions{
		NewTransaction("to1", "from1", 100, "sig1", 0, 5),
	}
	block, err := NewBlock(&BlockHeader{
		ParentHash: c.HeadHash(),
		Number:     1,
		Timestamp:  42,
		GasLimit:   GenesisGasLimit,
	}, txs)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	if err := c.AddBlock(block); err != nil {
		t.Fatalf("err: %v", err)
	}
	if c.Height() != 1 {
		t.Fatalf("height should be 1, not %d", c.Height())
	}
	if c.Head() != block {
		t.Fatalf("head should be the new block")
	}
}

func TestAddBlockWrongParent(t *testing.T) {
	c, err := NewChain(NewInmemStore(), NewGenesisBlock())
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	block, err := NewBlock(&BlockHeader{
		ParentHash: "0Xdeadbeef",
		Number:     1,
	}, nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	if err := c.AddBlock(block); err == nil {
		t.Fatalf("AddBlock should generate an error")
	}
	if c.Height() != 0 {
		t.Fatalf("head should not have moved")
	}
}

func TestBlockHashCommitsToTransactions(t *testing.T) {
	header := func() *BlockHeader {
		return &BlockHeader{ParentHash: "0X00", Number: 1}
	}

	b1, err := NewBlock(header(), Transactions{
		NewTransaction("to1", "from1", 100, "sig1", 0, 5),
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	b2, err := NewBlock(header(), Transactions{
		NewTransaction("to2", "from2", 200, "sig2", 1, 7),
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	h1, err := b1.Hash()
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	h2, err := b2.Hash()
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("blocks with different transactions should not collide")
	}
}
