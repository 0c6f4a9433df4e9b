package syncer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/goodnatureofminers/codechain-indexer/internal/store"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SyncPending mirrors the chain's pending pool: unseen transactions are stored as pending
// and pending rows that left the pool are dropped. Nothing happens before the first block
// is indexed.
func (e *Engine) SyncPending(ctx context.Context) (err error) {
	if !e.running.CompareAndSwap(false, true) {
		return model.ErrSyncInProgress
	}
	defer e.running.Store(false)

	tip, err := e.store.LatestBlock(ctx)
	if err != nil {
		return errors.Wrap(err, "load local tip")
	}
	if tip == nil {
		return nil
	}

	started := time.Now()
	count := 0
	defer func() {
		e.metrics.ObservePending(err, count, started)
	}()

	txs, err := e.chain.PendingTransactions(ctx)
	if err != nil {
		return errors.Wrap(err, "fetch pending transactions")
	}
	count = len(txs)
	if err := e.resolvePayers(ctx, txs, tip.Number); err != nil {
		return err
	}

	return e.store.WithTx(ctx, func(tx store.Tx) error {
		known, err := tx.PendingTransactionHashes(ctx)
		if err != nil {
			return errors.Wrap(err, "load pending hashes")
		}
		inPool := make(map[string]struct{}, len(txs))
		for i := range txs {
			inPool[txs[i].Hash] = struct{}{}
		}
		stored := make(map[string]struct{}, len(known))
		var stale []string
		for _, hash := range known {
			stored[hash] = struct{}{}
			if _, ok := inPool[hash]; !ok {
				stale = append(stale, hash)
			}
		}
		if len(stale) > 0 {
			if err := tx.DeletePendingTransactions(ctx, stale); err != nil {
				return errors.Wrap(err, "delete stale pending transactions")
			}
		}

		added := 0
		for i := range txs {
			t := &txs[i]
			if _, ok := stored[t.Hash]; ok {
				continue
			}
			row, err := transactionRow(t, nil, "", 0)
			if err != nil {
				return err
			}
			err = tx.InsertTransaction(ctx, row)
			if errors.Is(err, model.ErrAlreadyExists) {
				// already included in an indexed block
				continue
			}
			if err != nil {
				return errors.Wrapf(err, "insert pending transaction %s", t.Hash)
			}
			if err := tx.InsertAddressLogs(ctx, addressLogs(t, nil, true)); err != nil {
				return errors.Wrapf(err, "insert pending address logs of %s", t.Hash)
			}
			added++
		}

		e.logger.Debug("pending pool synced",
			zap.Int("pool", len(txs)),
			zap.Int("added", added),
			zap.Int("dropped", len(stale)))
		return nil
	})
}
