package syncer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/codechain-indexer/internal/chain"
	"github.com/goodnatureofminers/codechain-indexer/internal/ledger/account"
	"github.com/goodnatureofminers/codechain-indexer/internal/ledger/utxo"
	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/goodnatureofminers/codechain-indexer/internal/settlement"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainClient interface {
		BestBlockNumber(ctx context.Context) (uint64, error)
		BlockByNumber(ctx context.Context, number uint64) (*chain.Block, error)
		BlockHash(ctx context.Context, number uint64) (string, error)
		RegularKeyOwner(ctx context.Context, publicKey string, blockNumber uint64) (string, error)
		GenesisAccounts(ctx context.Context) ([]string, error)
		PendingTransactions(ctx context.Context) ([]chain.Transaction, error)
	}

	UTXOLedger interface {
		ApplyTransaction(ctx context.Context, repo utxo.Repository, block *chain.Block, tx *chain.Transaction) error
	}

	AccountLedger interface {
		Recompute(ctx context.Context, repo account.Repository, addresses []string, atBlock uint64) error
		Reset(ctx context.Context, repo account.Repository, addresses []string) error
	}

	FeeSettlement interface {
		MissedSigners(ctx context.Context, block *chain.Block) ([]string, error)
		Settle(ctx context.Context, repo settlement.Repository, block *chain.Block, parent *model.Block) (*settlement.Result, error)
		InitialDistribution(ctx context.Context, repo settlement.Repository, block *chain.Block, addresses []string) ([]model.CCCChange, error)
	}

	EngineMetrics interface {
		ObserveSync(err error, started time.Time)
		ObserveBlock(err error, number uint64, started time.Time)
		ObserveRetraction(number uint64)
		ObservePending(err error, count int, started time.Time)
		SetTip(number uint64)
	}

	// Syncer is what the scheduler drives.
	Syncer interface {
		Sync(ctx context.Context) error
		SyncPending(ctx context.Context) error
	}
)
