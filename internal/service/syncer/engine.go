// Package syncer keeps the store in step with the chain: it ingests new blocks, retracts
// blocks orphaned by reorganizations and mirrors the pending transaction pool.
package syncer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/codechain-indexer/internal/chain"
	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/goodnatureofminers/codechain-indexer/internal/store"
	"github.com/goodnatureofminers/codechain-indexer/pkg/workerpool"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// State is the phase of the engine.
type State string

const (
	StateIdle       State = "idle"
	StateAdvancing  State = "advancing"
	StateRetracting State = "retracting"
	StateSynced     State = "synced"
)

// Engine applies and retracts blocks one at a time, each inside its own store transaction.
type Engine struct {
	store       store.Store
	chain       ChainClient
	utxo        UTXOLedger
	accounts    AccountLedger
	settlement  FeeSettlement
	metrics     EngineMetrics
	concurrency int
	logger      *zap.Logger

	running *atomic.Bool
	state   *atomic.String
}

// NewEngine builds an Engine. A concurrency below one selects the default fan-out.
func NewEngine(
	st store.Store,
	chainClient ChainClient,
	utxoLedger UTXOLedger,
	accountLedger AccountLedger,
	feeSettlement FeeSettlement,
	metrics EngineMetrics,
	concurrency int,
	logger *zap.Logger,
) (*Engine, error) {
	if metrics == nil {
		return nil, errors.New("sync engine metrics is required")
	}
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}
	return &Engine{
		store:       st,
		chain:       chainClient,
		utxo:        utxoLedger,
		accounts:    accountLedger,
		settlement:  feeSettlement,
		metrics:     metrics,
		concurrency: concurrency,
		logger:      logger.Named("sync_engine"),
		running:     atomic.NewBool(false),
		state:       atomic.NewString(string(StateIdle)),
	}, nil
}

// State reports the current phase.
func (e *Engine) State() State {
	return State(e.state.Load())
}

// Sync advances the store to the chain's best block, retracting orphaned blocks on the way.
// A call made while another Sync or SyncPending runs is dropped with model.ErrSyncInProgress.
func (e *Engine) Sync(ctx context.Context) (err error) {
	if !e.running.CompareAndSwap(false, true) {
		e.logger.Debug("sync already running, dropping request")
		return model.ErrSyncInProgress
	}
	defer e.running.Store(false)

	started := time.Now()
	defer func() {
		e.metrics.ObserveSync(err, started)
		if err != nil {
			e.state.Store(string(StateIdle))
		}
	}()
	return e.sync(ctx)
}

func (e *Engine) sync(ctx context.Context) error {
	tip, err := e.store.LatestBlock(ctx)
	if err != nil {
		return errors.Wrap(err, "load local tip")
	}
	best, err := e.chain.BestBlockNumber(ctx)
	if err != nil {
		return errors.Wrap(err, "load best block number")
	}

	if tip != nil && tip.Number >= best {
		if tip, err = e.retract(ctx, tip, best); err != nil {
			return err
		}
	}

	for tip == nil || tip.Number < best {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.state.Store(string(StateAdvancing))

		var next uint64
		if tip != nil {
			next = tip.Number + 1
		}
		block, err := e.chain.BlockByNumber(ctx, next)
		if err != nil {
			return errors.Wrapf(err, "fetch block %d", next)
		}
		if block == nil {
			return errors.Wrapf(model.ErrInvalidBlockNumber, "chain has no block %d", next)
		}

		if tip != nil && block.ParentHash != tip.Hash {
			e.logger.Warn("parent hash mismatch",
				zap.Uint64("block", block.Number),
				zap.String("parent_hash", block.ParentHash),
				zap.String("local_hash", tip.Hash))
			if tip, err = e.retract(ctx, tip, best); err != nil {
				return err
			}
			continue
		}

		if tip, err = e.ingest(ctx, block, tip); err != nil {
			return err
		}
	}

	e.state.Store(string(StateSynced))
	e.metrics.SetTip(tip.Number)
	return nil
}

// retract walks down from tip deleting blocks until the stored hash matches the chain.
// Heights above best are orphaned without asking the chain. It returns the common
// ancestor, nil when even the genesis block was retracted.
func (e *Engine) retract(ctx context.Context, tip *model.Block, best uint64) (*model.Block, error) {
	current := tip
	for current != nil {
		chainHash := ""
		if current.Number <= best {
			hash, err := e.chain.BlockHash(ctx, current.Number)
			if err != nil {
				return nil, errors.Wrapf(err, "fetch hash of block %d", current.Number)
			}
			if hash == "" {
				return nil, errors.Wrapf(model.ErrInvalidBlockHash, "chain has no hash for block %d", current.Number)
			}
			if hash == current.Hash {
				return current, nil
			}
			chainHash = hash
		}

		e.state.Store(string(StateRetracting))
		e.logger.Warn("retracting block",
			zap.Uint64("block", current.Number),
			zap.String("local_hash", current.Hash),
			zap.String("chain_hash", chainHash))
		if err := e.retractBlock(ctx, current.Number); err != nil {
			return nil, err
		}
		if current.Number == 0 {
			return nil, nil
		}

		prev, err := e.store.BlockByNumber(ctx, current.Number-1)
		if err != nil {
			return nil, errors.Wrapf(err, "load block %d", current.Number-1)
		}
		if prev == nil {
			return nil, errors.Wrapf(model.ErrInvalidBlockNumber, "block %d missing below retracted block", current.Number-1)
		}
		current = prev
	}
	return nil, nil
}

func (e *Engine) retractBlock(ctx context.Context, number uint64) error {
	err := e.store.WithTx(ctx, func(tx store.Tx) error {
		touched, err := tx.TouchedAddresses(ctx, number)
		if err != nil {
			return errors.Wrapf(err, "touched addresses of block %d", number)
		}
		if err := tx.DeleteBlock(ctx, number); err != nil {
			return errors.Wrapf(err, "delete block %d", number)
		}
		if number == 0 {
			return e.accounts.Reset(ctx, tx, touched)
		}
		return e.accounts.Recompute(ctx, tx, touched, number-1)
	})
	if err != nil {
		e.logger.Error("retract block failed", zap.Uint64("block", number), zap.Error(err))
		return err
	}
	e.metrics.ObserveRetraction(number)
	return nil
}

// ingest applies block on top of parent in one store transaction.
func (e *Engine) ingest(ctx context.Context, block *chain.Block, parent *model.Block) (_ *model.Block, err error) {
	started := time.Now()
	logger := e.logger.With(zap.Uint64("block", block.Number), zap.String("hash", block.Hash))
	defer func() {
		e.metrics.ObserveBlock(err, block.Number, started)
		if err != nil {
			logger.Error("ingest block failed", zap.Error(err))
		}
	}()

	missed, err := e.settlement.MissedSigners(ctx, block)
	if err != nil {
		return nil, errors.Wrapf(err, "missed signers of block %d", block.Number)
	}
	if err := e.resolvePayers(ctx, block.Transactions, block.Number); err != nil {
		return nil, err
	}
	var genesis []string
	if block.Number == 0 {
		if genesis, err = e.chain.GenesisAccounts(ctx); err != nil {
			return nil, errors.Wrap(err, "load genesis accounts")
		}
	}

	row := blockRow(block, missed)
	err = e.store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.InsertBlock(ctx, row); err != nil {
			return errors.Wrapf(err, "insert block %d", block.Number)
		}

		touched := []string{block.Author}
		for i := range block.Transactions {
			logs, err := e.storeTransaction(ctx, tx, block, &block.Transactions[i])
			if err != nil {
				return err
			}
			touched = append(touched, platformAddresses(logs)...)
		}
		for i := range block.Transactions {
			t := &block.Transactions[i]
			if t.Failed {
				logger.Debug("skipping failed transaction",
					zap.String("tx", t.Hash),
					zap.String("error_hint", t.ErrorHint))
				continue
			}
			if err := e.utxo.ApplyTransaction(ctx, tx, block, t); err != nil {
				return errors.Wrapf(err, "apply transaction %s of block %d", t.Hash, block.Number)
			}
		}

		if block.Number == 0 {
			if _, err := e.settlement.InitialDistribution(ctx, tx, block, genesis); err != nil {
				return errors.Wrap(err, "initial distribution")
			}
			touched = append(touched, genesis...)
		} else {
			res, err := e.settlement.Settle(ctx, tx, block, parent)
			if err != nil {
				return errors.Wrapf(err, "settle block %d", block.Number)
			}
			row.IntermediateRewards = model.DecimalFromUint256(res.IntermediateRewards)
			touched = append(touched, res.Addresses...)
		}

		return e.accounts.Recompute(ctx, tx, touched, block.Number)
	})
	if err != nil {
		return nil, err
	}

	e.metrics.SetTip(block.Number)
	logger.Debug("block ingested", zap.Int("transactions", len(block.Transactions)))
	return &row, nil
}

func (e *Engine) storeTransaction(ctx context.Context, tx store.Tx, block *chain.Block, t *chain.Transaction) ([]model.AddressLog, error) {
	number := block.Number
	row, err := transactionRow(t, &number, block.Hash, block.Timestamp)
	if err != nil {
		return nil, err
	}

	err = tx.InsertTransaction(ctx, row)
	switch {
	case errors.Is(err, model.ErrAlreadyExists):
		existing, getErr := tx.Transaction(ctx, t.Hash)
		if getErr != nil {
			return nil, errors.Wrapf(getErr, "load transaction %s", t.Hash)
		}
		if existing == nil || !existing.Pending {
			return nil, errors.Wrapf(err, "transaction %s of block %d", t.Hash, block.Number)
		}
		if err := tx.ConfirmPendingTransaction(ctx, row); err != nil {
			return nil, errors.Wrapf(err, "confirm pending transaction %s", t.Hash)
		}
		e.logger.Debug("pending transaction confirmed", zap.String("tx", t.Hash), zap.Uint64("block", block.Number))
	case err != nil:
		return nil, errors.Wrapf(err, "insert transaction %s", t.Hash)
	}

	logs := addressLogs(t, &number, false)
	if err := tx.InsertAddressLogs(ctx, logs); err != nil {
		return nil, errors.Wrapf(err, "insert address logs of %s", t.Hash)
	}
	return logs, nil
}

// resolvePayers fills FeePayer of transactions signed with a regular key.
func (e *Engine) resolvePayers(ctx context.Context, txs []chain.Transaction, blockNumber uint64) error {
	owners, err := workerpool.Map(ctx, e.concurrency, txs, func(ctx context.Context, t chain.Transaction) (string, error) {
		if t.SignerPublic == "" {
			return "", nil
		}
		owner, err := e.chain.RegularKeyOwner(ctx, t.SignerPublic, blockNumber)
		if err != nil {
			return "", errors.Wrapf(err, "regular key owner of %s", t.Hash)
		}
		return owner, nil
	})
	if err != nil {
		return err
	}
	for i, owner := range owners {
		txs[i].FeePayer = owner
	}
	return nil
}
