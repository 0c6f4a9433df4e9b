package chain

import (
	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/holiman/uint256"
)

// CommonParams are the consensus parameters in effect at a block.
type CommonParams struct {
	TermSeconds uint64
	MinFees     map[model.TransactionType]*uint256.Int
}

// MinFee returns the minimum fee required for a transaction type.
func (p *CommonParams) MinFee(t model.TransactionType) *uint256.Int {
	if p == nil {
		return new(uint256.Int)
	}
	if fee, ok := p.MinFees[t]; ok && fee != nil {
		return fee
	}
	return new(uint256.Int)
}

// TermID returns the term a timestamp belongs to, 0 when terms are disabled.
func (p *CommonParams) TermID(timestamp uint64) uint64 {
	if p == nil || p.TermSeconds == 0 {
		return 0
	}
	return timestamp / p.TermSeconds
}

// TermMetadata tracks term progression at a block.
type TermMetadata struct {
	LastTermFinishedBlockNumber uint64
	CurrentTermID               uint64
}
