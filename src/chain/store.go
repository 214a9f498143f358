package chain

// Store is the persistence interface for blocks. The simulation normally
// runs on the in-memory implementation; the badger implementation keeps the
// chain on disk so a run's output can be inspected afterwards.
type Store interface {
	GetBlock(hash string) (*Block, error)
	SetBlock(block *Block) error
	Head() (string, error)
	SetHead(hash string) error
	Close() error
}
