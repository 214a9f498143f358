package chain

import (
	"bytes"

	"github.com/ugorji/go/codec"
)

// GenesisGasLimit is the gas limit of the genesis block.
const GenesisGasLimit int64 = 8000000

// BlockHeader carries the block metadata that determines the block hash.
type BlockHeader struct {
	ParentHash string
	Number     int64
	Timestamp  float64
	Coinbase   string
	Difficulty int64
	GasLimit   int64
	GasUsed    int64
	Nonce      int64
	TxRoot     string
}

// Block is a header plus the transactions it seals.
type Block struct {
	Header       *BlockHeader
	Transactions Transactions
}

// NewBlock seals the given transactions under the header, filling in the
// header's TxRoot.
func NewBlock(header *BlockHeader, txs Transactions) (*Block, error) {
	root, err := txRoot(txs)
	if err != nil {
		return nil, err
	}
	header.TxRoot = root

	return &Block{
		Header:       header,
		Transactions: txs,
	}, nil
}

// NewGenesisBlock returns the block every node's chain starts with.
func NewGenesisBlock() *Block {
	return &Block{
		Header: &BlockHeader{
			Number:   0,
			GasLimit: GenesisGasLimit,
		},
	}
}

// Marshal - canonical json encoding of Block
func (b *Block) Marshal() ([]byte, error) {
	buf := new(bytes.Buffer)
	jh := new(codec.JsonHandle)
	jh.Canonical = true
	enc := codec.NewEncoder(buf, jh)

	if err := enc.Encode(b); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal ...
func (b *Block) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	jh := new(codec.JsonHandle)
	jh.Canonical = true
	dec := codec.NewDecoder(buf, jh)

	return dec.Decode(b)
}

// Hash returns the block hash, computed over the header only; the
// transactions are committed to through the header's TxRoot.
func (b *Block) Hash() (string, error) {
	buf := new(bytes.Buffer)
	jh := new(codec.JsonHandle)
	jh.Canonical = true
	enc := codec.NewEncoder(buf, jh)

	if err := enc.Encode(b.Header); err != nil {
		return "", err
	}

	return hashToString(hashBytes(buf.Bytes())), nil
}

// txRoot folds the transaction hashes pairwise into a single digest.
func txRoot(txs Transactions) (string, error) {
	root := []byte{}
	for _, tx := range txs {
		data, err := tx.Marshal()
		if err != nil {
			return "", err
		}
		root = hashPair(root, hashBytes(data))
	}
	return hashToString(root), nil
}
