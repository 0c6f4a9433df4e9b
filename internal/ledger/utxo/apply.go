package utxo

import (
	"context"
	"time"

	"github.com/goodnatureofminers/codechain-indexer/internal/chain"
	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/goodnatureofminers/codechain-indexer/pkg/safe"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ApplyTransaction records the outputs and consumes the inputs of an asset transaction.
// Non-asset transactions are ignored.
func (l *Ledger) ApplyTransaction(ctx context.Context, repo Repository, block *chain.Block, tx *chain.Transaction) (err error) {
	started := time.Now()
	defer func() {
		if l.metrics != nil {
			l.metrics.ObserveApply(err, tx.Action.Type(), started)
		}
	}()

	a := &applier{ctx: ctx, ledger: l, repo: repo, block: block, tx: tx}
	if err := tx.Action.Accept(a); err != nil {
		l.logger.Debug("apply transaction failed",
			zap.Uint64("block", block.Number),
			zap.String("tx", tx.Hash),
			zap.Error(err))
		return err
	}
	return nil
}

type applier struct {
	ctx    context.Context
	ledger *Ledger
	repo   Repository
	block  *chain.Block
	tx     *chain.Transaction
}

var _ chain.ActionVisitor = (*applier)(nil)

func (a *applier) output(index uint32, out chain.AssetOutput) error {
	return a.ledger.RecordOutput(a.ctx, a.repo, Output{
		Owner:              out.Owner,
		AssetType:          out.AssetType,
		ShardID:            out.ShardID,
		Quantity:           out.Quantity,
		OrderHash:          out.OrderHash,
		TransactionHash:    a.tx.Hash,
		TransactionTracker: a.tx.Tracker(),
		OutputIndex:        index,
		TransactionIndex:   a.tx.Index,
		BlockNumber:        a.block.Number,
	})
}

func (a *applier) indexedOutput(i int, out chain.AssetOutput) error {
	index, err := safe.Uint32(i)
	if err != nil {
		return errors.Wrapf(model.ErrInvalidTransaction, "output index of %s: %v", a.tx.Hash, err)
	}
	return a.output(index, out)
}

func (a *applier) input(in chain.AssetInput) (*model.UTXO, error) {
	return a.ledger.ConsumeInput(a.ctx, a.repo, Input{
		PrevTracker:              in.PrevOut.Tracker,
		PrevOutputIndex:          in.PrevOut.Index,
		ConsumingTransactionHash: a.tx.Hash,
		BlockNumber:              a.block.Number,
	})
}

func (a *applier) createScheme(assetType string, params chain.AssetSchemeParams, supply decimal.Decimal) error {
	err := a.repo.InsertAssetScheme(a.ctx, model.AssetScheme{
		AssetType:           assetType,
		ShardID:             params.ShardID,
		Supply:              supply,
		Approver:            params.Approver,
		Registrar:           params.Registrar,
		AllowedScriptHashes: params.AllowedScriptHashes,
		Metadata:            params.Metadata,
		TransactionHash:     a.tx.Hash,
		BlockNumber:         a.block.Number,
	})
	if errors.Is(err, model.ErrAlreadyExists) {
		return errors.Wrapf(model.ErrInvalidTransaction, "asset scheme %s already exists", assetType)
	}
	if err != nil {
		return errors.Wrapf(err, "insert asset scheme %s", assetType)
	}
	return nil
}

func (a *applier) VisitMintAsset(m *chain.MintAsset) error {
	if err := a.createScheme(m.AssetType, m.Scheme, model.DecimalFromUint256(m.Output.Quantity)); err != nil {
		return err
	}
	return a.output(0, m.Output)
}

func (a *applier) VisitTransferAsset(t *chain.TransferAsset) error {
	consumed := make(map[string]decimal.Decimal)
	for _, in := range t.Inputs {
		u, err := a.input(in)
		if err != nil {
			return err
		}
		consumed[u.AssetType] = consumed[u.AssetType].Add(u.Quantity)
	}
	for _, burn := range t.Burns {
		if _, err := a.input(burn); err != nil {
			return err
		}
	}

	produced := make(map[string]decimal.Decimal)
	for i, out := range t.Outputs {
		if err := a.indexedOutput(i, out); err != nil {
			return err
		}
		produced[out.AssetType] = produced[out.AssetType].Add(model.DecimalFromUint256(out.Quantity))
	}
	return checkConservation(a.tx.Hash, consumed, produced)
}

// VisitComposeAsset turns the inputs into one output of a new asset type. There is no
// per-type quantity to conserve, so unlike transfers no conservation check applies.
func (a *applier) VisitComposeAsset(c *chain.ComposeAsset) error {
	for _, in := range c.Inputs {
		if _, err := a.input(in); err != nil {
			return err
		}
	}
	if err := a.createScheme(c.AssetType, c.Scheme, model.DecimalFromUint256(c.Output.Quantity)); err != nil {
		return err
	}
	return a.output(0, c.Output)
}

// VisitDecomposeAsset splits a composed output back into its parts. Input and outputs
// differ in asset type, so no conservation check applies here either.
func (a *applier) VisitDecomposeAsset(d *chain.DecomposeAsset) error {
	if _, err := a.input(d.Input); err != nil {
		return err
	}
	for i, out := range d.Outputs {
		if err := a.indexedOutput(i, out); err != nil {
			return err
		}
	}
	return nil
}

func (a *applier) VisitIncreaseAssetSupply(s *chain.IncreaseAssetSupply) error {
	scheme, err := a.repo.AssetScheme(a.ctx, s.AssetType)
	if err != nil {
		return errors.Wrapf(err, "load asset scheme %s", s.AssetType)
	}
	if scheme == nil {
		return errors.Wrapf(model.ErrInvalidTransaction, "increase supply of unknown asset %s", s.AssetType)
	}
	if err := a.repo.IncreaseAssetSupply(a.ctx, s.AssetType, model.DecimalFromUint256(s.Output.Quantity)); err != nil {
		return errors.Wrapf(err, "increase supply of %s", s.AssetType)
	}
	return a.output(0, s.Output)
}

func (a *applier) VisitWrapCCC(w *chain.WrapCCC) error {
	quantity := model.DecimalFromUint256(w.Output.Quantity)
	scheme, err := a.repo.AssetScheme(a.ctx, w.Output.AssetType)
	if err != nil {
		return errors.Wrapf(err, "load asset scheme %s", w.Output.AssetType)
	}
	if scheme == nil {
		err = a.createScheme(w.Output.AssetType, chain.AssetSchemeParams{ShardID: w.Output.ShardID}, quantity)
	} else {
		err = a.repo.IncreaseAssetSupply(a.ctx, w.Output.AssetType, quantity)
	}
	if err != nil {
		return errors.Wrapf(err, "wrap ccc into %s", w.Output.AssetType)
	}
	return a.output(0, w.Output)
}

func (a *applier) VisitUnwrapCCC(u *chain.UnwrapCCC) error {
	_, err := a.input(u.Burn)
	return err
}

func (a *applier) VisitPay(*chain.Pay) error                       { return nil }
func (a *applier) VisitSetRegularKey(*chain.SetRegularKey) error   { return nil }
func (a *applier) VisitCreateShard(*chain.CreateShard) error       { return nil }
func (a *applier) VisitSetShardOwners(*chain.SetShardOwners) error { return nil }
func (a *applier) VisitSetShardUsers(*chain.SetShardUsers) error   { return nil }
func (a *applier) VisitStore(*chain.Store) error                   { return nil }
func (a *applier) VisitRemove(*chain.Remove) error                 { return nil }
func (a *applier) VisitCustom(*chain.Custom) error                 { return nil }

func checkConservation(txHash string, consumed, produced map[string]decimal.Decimal) error {
	for assetType, in := range consumed {
		if !in.Equal(produced[assetType]) {
			return errors.Wrapf(model.ErrInvalidTransaction, "transfer %s consumes %s of %s but produces %s",
				txHash, in.String(), assetType, produced[assetType].String())
		}
	}
	for assetType, out := range produced {
		if _, ok := consumed[assetType]; !ok {
			return errors.Wrapf(model.ErrInvalidTransaction, "transfer %s produces %s of unconsumed %s",
				txHash, out.String(), assetType)
		}
	}
	return nil
}
