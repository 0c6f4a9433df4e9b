package chain

import "github.com/holiman/uint256"

// Block is a block as served by the chain.
type Block struct {
	Number       uint64
	Hash         string
	ParentHash   string
	Timestamp    uint64
	Author       string
	Seal         [][]byte
	Transactions []Transaction
}

// PrecommitBitset returns the last seal field, the participation bitset of the previous block.
func (b *Block) PrecommitBitset() []byte {
	if len(b.Seal) == 0 {
		return nil
	}
	return b.Seal[len(b.Seal)-1]
}

// Transaction is a signed transaction. FeePayer is filled by the indexer after resolving
// regular keys; it is empty when served by the chain.
//
// Failed is set for block transactions the node could not apply. Their action moved
// nothing but their fee was still paid. Pending transactions are never marked failed.
type Transaction struct {
	Hash         string
	Index        uint32
	Signer       string
	SignerPublic string
	FeePayer     string
	Seq          uint64
	Fee          *uint256.Int
	NetworkID    string
	Action       Action
	Failed       bool
	ErrorHint    string
}

// Payer returns the resolved fee payer, falling back to the signer.
func (t *Transaction) Payer() string {
	if t.FeePayer != "" {
		return t.FeePayer
	}
	return t.Signer
}

// Tracker returns the asset lineage id of asset transactions and "" otherwise.
func (t *Transaction) Tracker() string {
	if a, ok := t.Action.(AssetAction); ok {
		return a.AssetTracker()
	}
	return ""
}
