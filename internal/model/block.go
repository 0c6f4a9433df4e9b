package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Block is an ingested chain block.
type Block struct {
	Number              uint64
	Hash                string
	ParentHash          string
	Timestamp           uint64
	Author              string
	TransactionsCount   uint32
	MissedSignersOfPrev []string
	// IntermediateRewards is the part of the mining reward deferred to term settlement.
	IntermediateRewards decimal.Decimal
	CreatedAt           time.Time
}

// Missed reports whether address is listed as a missed signer of the previous block.
func (b Block) Missed(address string) bool {
	for _, a := range b.MissedSignersOfPrev {
		if a == address {
			return true
		}
	}
	return false
}
