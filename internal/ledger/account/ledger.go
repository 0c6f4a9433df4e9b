// Package account keeps balance and seq snapshots of platform addresses in line with the chain.
package account

import (
	"context"
	"sort"
	"time"

	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/goodnatureofminers/codechain-indexer/pkg/workerpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Ledger recomputes Account rows from chain state.
type Ledger struct {
	chain       ChainClient
	concurrency int
	metrics     Metrics
	logger      *zap.Logger
}

// NewLedger builds a Ledger issuing at most concurrency chain calls at once.
func NewLedger(chain ChainClient, concurrency int, metrics Metrics, logger *zap.Logger) *Ledger {
	return &Ledger{
		chain:       chain,
		concurrency: concurrency,
		metrics:     metrics,
		logger:      logger.Named("account_ledger"),
	}
}

// Recompute fetches balance and seq of every address as of atBlock and upserts them.
// Only chain calls run concurrently; writes go through repo sequentially.
func (l *Ledger) Recompute(ctx context.Context, repo Repository, addresses []string, atBlock uint64) (err error) {
	started := time.Now()
	addresses = dedupe(addresses)
	defer func() {
		if l.metrics != nil {
			l.metrics.ObserveRecompute(err, len(addresses), started)
		}
	}()
	if len(addresses) == 0 {
		return nil
	}

	accounts, err := workerpool.Map(ctx, l.concurrency, addresses, func(ctx context.Context, address string) (model.Account, error) {
		balance, err := l.chain.Balance(ctx, address, atBlock)
		if err != nil {
			return model.Account{}, errors.Wrapf(err, "balance of %s at %d", address, atBlock)
		}
		seq, err := l.chain.Seq(ctx, address, atBlock)
		if err != nil {
			return model.Account{}, errors.Wrapf(err, "seq of %s at %d", address, atBlock)
		}
		return model.Account{
			Address:     address,
			Balance:     model.DecimalFromUint256(balance),
			Seq:         seq,
			BlockNumber: atBlock,
		}, nil
	})
	if err != nil {
		return err
	}

	if err := repo.UpsertAccounts(ctx, accounts); err != nil {
		return errors.Wrapf(err, "upsert %d accounts at %d", len(accounts), atBlock)
	}
	l.logger.Debug("accounts recomputed", zap.Int("accounts", len(accounts)), zap.Uint64("block", atBlock))
	return nil
}

// Reset drops the snapshots of addresses, used when the genesis block itself is retracted.
func (l *Ledger) Reset(ctx context.Context, repo Repository, addresses []string) error {
	addresses = dedupe(addresses)
	if len(addresses) == 0 {
		return nil
	}
	if err := repo.DeleteAccounts(ctx, addresses); err != nil {
		return errors.Wrapf(err, "delete %d accounts", len(addresses))
	}
	return nil
}

func dedupe(addresses []string) []string {
	seen := make(map[string]struct{}, len(addresses))
	out := make([]string, 0, len(addresses))
	for _, a := range addresses {
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}
