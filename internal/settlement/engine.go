// Package settlement computes the CCC balance changes of a block: fee payment, value moved
// by transactions, stake distribution, block and validator rewards.
package settlement

import (
	"context"
	"time"

	"github.com/goodnatureofminers/codechain-indexer/internal/chain"
	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/goodnatureofminers/codechain-indexer/pkg/workerpool"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Mode is the consensus mode a block is settled under.
type Mode string

const (
	ModeStatic  Mode = "static"
	ModeDynamic Mode = "dynamic"
)

// Result is what Settle persisted for a block.
type Result struct {
	Mode                Mode
	Changes             []model.CCCChange
	IntermediateRewards *uint256.Int
	TermClosed          bool
	// Addresses lists the changed addresses plus, in dynamic mode, every stakeholder.
	Addresses []string
}

// Engine settles blocks.
type Engine struct {
	chain       ChainClient
	stake       StakeOracle
	holders     StakeholderSource
	concurrency int
	metrics     Metrics
	logger      *zap.Logger
}

// NewEngine builds an Engine. metrics may be nil.
func NewEngine(
	chain ChainClient,
	stake StakeOracle,
	holders StakeholderSource,
	concurrency int,
	metrics Metrics,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		chain:       chain,
		stake:       stake,
		holders:     holders,
		concurrency: concurrency,
		metrics:     metrics,
		logger:      logger.Named("settlement"),
	}
}

// MissedSigners returns the validators of the previous block whose precommit is absent
// from the block seal.
func (e *Engine) MissedSigners(ctx context.Context, block *chain.Block) ([]string, error) {
	if block.Number == 0 {
		return nil, nil
	}
	bitset := block.PrecommitBitset()
	if bitset == nil {
		return nil, nil
	}
	authors, err := e.chain.PossibleAuthors(ctx, block.Number-1)
	if err != nil {
		return nil, errors.Wrapf(err, "possible authors at %d", block.Number-1)
	}
	indices := unsetBitIndices(bitset, len(authors))
	missed := make([]string, 0, len(indices))
	for _, i := range indices {
		missed = append(missed, authors[i])
	}
	return missed, nil
}

// InitialDistribution records the genesis balances of addresses.
func (e *Engine) InitialDistribution(ctx context.Context, repo Repository, block *chain.Block, addresses []string) ([]model.CCCChange, error) {
	balances, err := workerpool.Map(ctx, e.concurrency, addresses, func(ctx context.Context, address string) (*uint256.Int, error) {
		balance, err := e.chain.Balance(ctx, address, block.Number)
		if err != nil {
			return nil, errors.Wrapf(err, "genesis balance of %s", address)
		}
		return balance, nil
	})
	if err != nil {
		return nil, err
	}

	l := newLedger(block.Number)
	for i, address := range addresses {
		l.credit(address, balances[i], model.ReasonInitialDistribution, "")
	}
	if len(l.changes) == 0 {
		return nil, nil
	}
	if err := repo.InsertCCCChanges(ctx, l.changes); err != nil {
		return nil, errors.Wrapf(err, "insert initial distribution of block %d", block.Number)
	}
	return l.changes, nil
}

// Settle computes and stores the changes of a non-genesis block. The block row must already
// exist in repo, since dynamic mode records the deferred reward on it.
func (e *Engine) Settle(ctx context.Context, repo Repository, block *chain.Block, parent *model.Block) (res *Result, err error) {
	started := time.Now()
	var mode Mode
	defer func() {
		if e.metrics != nil {
			e.metrics.ObserveSettle(err, string(mode), started)
		}
	}()
	if parent == nil {
		return nil, errors.Wrapf(model.ErrInvalidBlockNumber, "settle block %d without parent", block.Number)
	}

	term, err := e.chain.TermMetadata(ctx, parent.Number)
	if err != nil {
		return nil, errors.Wrapf(err, "term metadata at %d", parent.Number)
	}
	mode = ModeStatic
	if term != nil && term.CurrentTermID > 0 {
		mode = ModeDynamic
	}
	params, err := e.chain.CommonParams(ctx, parent.Number)
	if err != nil {
		return nil, errors.Wrapf(err, "common params at %d", parent.Number)
	}
	reward, err := e.chain.MiningReward(ctx, block.Number)
	if err != nil {
		return nil, errors.Wrapf(err, "mining reward of %d", block.Number)
	}
	holders, err := e.holders.Stakeholders(ctx, parent.Number)
	if err != nil {
		return nil, errors.Wrapf(err, "stakeholders at %d", parent.Number)
	}

	l := newLedger(block.Number)
	distributed := distributeStake(l, holders, minFeeTotal(params, block.Transactions))
	if distributed.Gt(reward) {
		return nil, errors.Errorf("block %d: stake share %s exceeds mining reward %s", block.Number, distributed.Dec(), reward.Dec())
	}
	rest := new(uint256.Int).Sub(reward, distributed)

	res = &Result{Mode: mode, IntermediateRewards: new(uint256.Int)}
	if mode == ModeStatic {
		l.credit(block.Author, rest, model.ReasonAuthor, "")
	} else {
		res.IntermediateRewards = rest
		if err := repo.SetIntermediateRewards(ctx, block.Number, model.DecimalFromUint256(rest)); err != nil {
			return nil, errors.Wrapf(err, "store intermediate rewards of %d", block.Number)
		}
	}

	for i := range block.Transactions {
		tx := &block.Transactions[i]
		l.debit(tx.Payer(), tx.Fee, model.ReasonFee, tx.Hash)
		if tx.Failed {
			continue
		}
		if err := e.trackBalanceChange(ctx, l, parent, tx); err != nil {
			return nil, err
		}
	}

	if mode == ModeDynamic && closesTerm(params, block, parent) {
		res.TermClosed = true
		if err := e.closeTerm(ctx, repo, l, block, parent, term); err != nil {
			return nil, err
		}
	}

	if len(l.changes) > 0 {
		if err := repo.InsertCCCChanges(ctx, l.changes); err != nil {
			return nil, errors.Wrapf(err, "insert ccc changes of %d", block.Number)
		}
	}
	res.Changes = l.changes
	res.Addresses = l.addresses()
	if mode == ModeDynamic {
		for _, h := range holders {
			res.Addresses = append(res.Addresses, h.Address)
		}
	}

	e.logger.Debug("block settled",
		zap.Uint64("block", block.Number),
		zap.String("mode", string(mode)),
		zap.Int("changes", len(l.changes)),
		zap.Bool("term_closed", res.TermClosed))
	return res, nil
}

// closesTerm reports whether block is the last block of its term.
func closesTerm(params *chain.CommonParams, block *chain.Block, parent *model.Block) bool {
	if params == nil || params.TermSeconds == 0 {
		return false
	}
	return params.TermID(block.Timestamp) != params.TermID(parent.Timestamp)
}

func minFeeTotal(params *chain.CommonParams, txs []chain.Transaction) *uint256.Int {
	total := new(uint256.Int)
	for i := range txs {
		total.Add(total, params.MinFee(txs[i].Action.Type()))
	}
	return total
}

// distributeStake credits each holder floor(total * stake / totalStake) and returns the
// credited sum.
func distributeStake(l *ledger, holders []chain.Stakeholder, total *uint256.Int) *uint256.Int {
	distributed := new(uint256.Int)
	if total.IsZero() {
		return distributed
	}
	stakes := make([]*uint256.Int, 0, len(holders))
	for _, h := range holders {
		stakes = append(stakes, h.Stake)
	}
	totalStake := sum(stakes...)
	if totalStake.IsZero() {
		return distributed
	}
	for _, h := range holders {
		if h.Stake == nil {
			continue
		}
		share, overflow := new(uint256.Int).MulDivOverflow(total, h.Stake, totalStake)
		if overflow {
			continue
		}
		l.credit(h.Address, share, model.ReasonStake, "")
		distributed.Add(distributed, share)
	}
	return distributed
}
