// Package utxo keeps the asset output ledger: outputs are recorded when produced and
// marked used exactly once when consumed.
package utxo

import (
	"context"

	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Output is an asset output produced by a transaction.
type Output struct {
	Owner              string
	AssetType          string
	ShardID            uint16
	Quantity           *uint256.Int
	OrderHash          string
	TransactionHash    string
	TransactionTracker string
	OutputIndex        uint32
	TransactionIndex   uint32
	BlockNumber        uint64
}

// Input spends the output at PrevOutputIndex of the latest transaction carrying PrevTracker.
type Input struct {
	PrevTracker              string
	PrevOutputIndex          uint32
	ConsumingTransactionHash string
	BlockNumber              uint64
}

// Ledger applies transactions to the UTXO set.
type Ledger struct {
	metrics Metrics
	logger  *zap.Logger
}

// NewLedger builds a Ledger. metrics may be nil.
func NewLedger(metrics Metrics, logger *zap.Logger) *Ledger {
	return &Ledger{
		metrics: metrics,
		logger:  logger.Named("utxo_ledger"),
	}
}

// RecordOutput inserts the output. It fails with model.ErrInvalidTransaction when the asset
// type has no scheme.
func (l *Ledger) RecordOutput(ctx context.Context, repo Repository, out Output) error {
	scheme, err := repo.AssetScheme(ctx, out.AssetType)
	if err != nil {
		return errors.Wrapf(err, "load asset scheme %s", out.AssetType)
	}
	if scheme == nil {
		return errors.Wrapf(model.ErrInvalidTransaction, "no asset scheme %s for output %s:%d",
			out.AssetType, out.TransactionHash, out.OutputIndex)
	}

	err = repo.InsertUTXO(ctx, model.UTXO{
		Address:                out.Owner,
		AssetType:              out.AssetType,
		ShardID:                out.ShardID,
		Quantity:               model.DecimalFromUint256(out.Quantity),
		OrderHash:              out.OrderHash,
		TransactionHash:        out.TransactionHash,
		TransactionTracker:     out.TransactionTracker,
		TransactionOutputIndex: out.OutputIndex,
		TransactionIndex:       out.TransactionIndex,
		BlockNumber:            out.BlockNumber,
	})
	if err != nil {
		return errors.Wrapf(err, "insert utxo %s:%d", out.TransactionHash, out.OutputIndex)
	}
	return nil
}

// ConsumeInput marks the referenced output used and returns it as it was before the spend.
// It fails with model.ErrInvalidUTXO when the tracker or the output cannot be resolved or
// the output is already used.
func (l *Ledger) ConsumeInput(ctx context.Context, repo Repository, in Input) (*model.UTXO, error) {
	prev, err := repo.LatestTransactionByTracker(ctx, in.PrevTracker)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve tracker %s", in.PrevTracker)
	}
	if prev == nil {
		return nil, errors.Wrapf(model.ErrInvalidUTXO, "no transaction for tracker %s", in.PrevTracker)
	}

	u, err := repo.UTXO(ctx, prev.Hash, in.PrevOutputIndex)
	if err != nil {
		return nil, errors.Wrapf(err, "load utxo %s:%d", prev.Hash, in.PrevOutputIndex)
	}
	if u == nil {
		return nil, errors.Wrapf(model.ErrInvalidUTXO, "utxo %s:%d not found", prev.Hash, in.PrevOutputIndex)
	}
	if u.Used != nil {
		return nil, errors.Wrapf(model.ErrInvalidUTXO, "utxo %s:%d already used by %s",
			prev.Hash, in.PrevOutputIndex, u.Used.TransactionHash)
	}

	spend := model.UTXOSpend{TransactionHash: in.ConsumingTransactionHash, BlockNumber: in.BlockNumber}
	if err := repo.MarkUTXOUsed(ctx, prev.Hash, in.PrevOutputIndex, spend); err != nil {
		return nil, errors.Wrapf(err, "mark utxo %s:%d used", prev.Hash, in.PrevOutputIndex)
	}
	return u, nil
}
