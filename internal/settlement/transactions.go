package settlement

import (
	"context"

	"github.com/goodnatureofminers/codechain-indexer/internal/chain"
	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (e *Engine) trackBalanceChange(ctx context.Context, l *ledger, parent *model.Block, tx *chain.Transaction) error {
	t := &balanceTracker{ctx: ctx, engine: e, ledger: l, parent: parent, tx: tx}
	if err := tx.Action.Accept(t); err != nil {
		return errors.Wrapf(err, "track balance change of %s", tx.Hash)
	}
	return nil
}

// balanceTracker moves CCC for the actions that carry value.
type balanceTracker struct {
	ctx    context.Context
	engine *Engine
	ledger *ledger
	parent *model.Block
	tx     *chain.Transaction
}

var _ chain.ActionVisitor = (*balanceTracker)(nil)

func (t *balanceTracker) VisitPay(p *chain.Pay) error {
	t.ledger.debit(t.tx.Payer(), p.Quantity, model.ReasonTx, t.tx.Hash)
	t.ledger.credit(p.Receiver, p.Quantity, model.ReasonTx, t.tx.Hash)
	return nil
}

func (t *balanceTracker) VisitWrapCCC(w *chain.WrapCCC) error {
	payer := w.Payer
	if payer == "" {
		payer = t.tx.Payer()
	}
	t.ledger.debit(payer, w.Output.Quantity, model.ReasonTx, t.tx.Hash)
	return nil
}

func (t *balanceTracker) VisitUnwrapCCC(u *chain.UnwrapCCC) error {
	t.ledger.credit(u.Receiver, u.Burn.PrevOut.Quantity, model.ReasonTx, t.tx.Hash)
	return nil
}

func (t *balanceTracker) VisitCustom(c *chain.Custom) error {
	switch action := c.Stake.(type) {
	case chain.SelfNominate:
		t.ledger.debit(t.tx.Payer(), action.Deposit, model.ReasonDeposit, t.tx.Hash)
	case chain.ReportDoubleVote:
		criminal, deposit, err := t.engine.forfeitedDeposit(t.ctx, t.parent, action)
		if err != nil {
			return err
		}
		if deposit == nil {
			t.engine.logger.Warn("double vote criminal without deposit",
				zap.String("criminal", criminal),
				zap.String("tx", t.tx.Hash))
			return nil
		}
		t.ledger.credit(t.tx.Payer(), deposit, model.ReasonReport, t.tx.Hash)
	}
	return nil
}

func (t *balanceTracker) VisitMintAsset(*chain.MintAsset) error                     { return nil }
func (t *balanceTracker) VisitTransferAsset(*chain.TransferAsset) error             { return nil }
func (t *balanceTracker) VisitComposeAsset(*chain.ComposeAsset) error               { return nil }
func (t *balanceTracker) VisitDecomposeAsset(*chain.DecomposeAsset) error           { return nil }
func (t *balanceTracker) VisitIncreaseAssetSupply(*chain.IncreaseAssetSupply) error { return nil }
func (t *balanceTracker) VisitSetRegularKey(*chain.SetRegularKey) error             { return nil }
func (t *balanceTracker) VisitCreateShard(*chain.CreateShard) error                 { return nil }
func (t *balanceTracker) VisitSetShardOwners(*chain.SetShardOwners) error           { return nil }
func (t *balanceTracker) VisitSetShardUsers(*chain.SetShardUsers) error             { return nil }
func (t *balanceTracker) VisitStore(*chain.Store) error                             { return nil }
func (t *balanceTracker) VisitRemove(*chain.Remove) error                           { return nil }

// forfeitedDeposit resolves the signer of a double vote and its deposit at parent.
func (e *Engine) forfeitedDeposit(ctx context.Context, parent *model.Block, report chain.ReportDoubleVote) (string, *uint256.Int, error) {
	authors, err := e.chain.PossibleAuthors(ctx, report.Height)
	if err != nil {
		return "", nil, errors.Wrapf(err, "possible authors at %d", report.Height)
	}
	if report.SignerIndex >= uint64(len(authors)) {
		return "", nil, errors.Wrapf(model.ErrInvalidTransaction, "double vote signer index %d of %d validators",
			report.SignerIndex, len(authors))
	}
	criminal := authors[report.SignerIndex]

	deposits, err := e.deposits(ctx, parent.Number, false)
	if err != nil {
		return "", nil, err
	}
	return criminal, deposits[criminal], nil
}

// deposits maps candidates and jailed addresses to their deposit at blockNumber. With
// withBanned, banned addresses are included with a nil deposit.
func (e *Engine) deposits(ctx context.Context, blockNumber uint64, withBanned bool) (map[string]*uint256.Int, error) {
	candidates, err := e.stake.Candidates(ctx, blockNumber)
	if err != nil {
		return nil, errors.Wrapf(err, "candidates at %d", blockNumber)
	}
	jailed, err := e.stake.Jailed(ctx, blockNumber)
	if err != nil {
		return nil, errors.Wrapf(err, "jailed at %d", blockNumber)
	}
	out := make(map[string]*uint256.Int, len(candidates)+len(jailed))
	for _, c := range candidates {
		out[c.Address] = c.Deposit
	}
	for _, p := range jailed {
		out[p.Address] = p.Deposit
	}
	if withBanned {
		banned, err := e.stake.Banned(ctx, blockNumber)
		if err != nil {
			return nil, errors.Wrapf(err, "banned at %d", blockNumber)
		}
		for _, b := range banned {
			if _, ok := out[b]; !ok {
				out[b] = nil
			}
		}
	}
	return out, nil
}
