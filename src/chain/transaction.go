package chain

import (
	"bytes"

	"github.com/ugorji/go/codec"
)

// TxBaseGasCost is the intrinsic gas cost of a plain value transfer, used as
// the default startgas.
const TxBaseGasCost int64 = 21000

// Transaction is a simple value-transfer transaction. The signature is an
// opaque string: the simulation measures propagation, it does not verify.
type Transaction struct {
	To        string
	Sender    string
	Value     int64
	Signature string
	Nonce     int64
	Gasprice  int64
	Startgas  int64
}

// NewTransaction returns a transaction with the default startgas.
func NewTransaction(to, sender string, value int64, signature string, nonce, gasprice int64) *Transaction {
	return &Transaction{
		To:        to,
		Sender:    sender,
		Value:     value,
		Signature: signature,
		Nonce:     nonce,
		Gasprice:  gasprice,
		Startgas:  TxBaseGasCost,
	}
}

// Fee is the total fee the originator is willing to pay.
func (t *Transaction) Fee() int64 {
	return t.Gasprice * t.Startgas
}

// Marshal - canonical json encoding of Transaction
func (t *Transaction) Marshal() ([]byte, error) {
	b := new(bytes.Buffer)
	jh := new(codec.JsonHandle)
	jh.Canonical = true
	enc := codec.NewEncoder(b, jh)

	if err := enc.Encode(t); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// Unmarshal ...
func (t *Transaction) Unmarshal(data []byte) error {
	b := bytes.NewBuffer(data)
	jh := new(codec.JsonHandle)
	jh.Canonical = true
	dec := codec.NewDecoder(b, jh)

	return dec.Decode(t)
}

// Hash returns the transaction hash.
func (t *Transaction) Hash() (string, error) {
	data, err := t.Marshal()
	if err != nil {
		return "", err
	}
	return hashToString(hashBytes(data)), nil
}

// Transactions is a sortable list of transactions, ordered by gasprice. Use
// sort.Reverse for highest-paying first.
type Transactions []*Transaction

func (txs Transactions) Len() int           { return len(txs) }
func (txs Transactions) Less(i, j int) bool { return txs[i].Gasprice < txs[j].Gasprice }
func (txs Transactions) Swap(i, j int)      { txs[i], txs[j] = txs[j], txs[i] }
