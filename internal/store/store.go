// Package store declares the transactional persistence contract shared by the sync engine,
// the ledgers and the storage backends.
package store

import (
	"context"

	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/shopspring/decimal"
)

type (
	// Store is the non-transactional entry point. All block mutations go through WithTx.
	Store interface {
		Reader
		// WithTx runs fn in one transaction, committing when fn returns nil and rolling
		// back otherwise.
		WithTx(ctx context.Context, fn func(Tx) error) error
	}

	// Reader exposes the read accessors.
	Reader interface {
		// LatestBlock returns nil when nothing is indexed.
		LatestBlock(ctx context.Context) (*model.Block, error)
		// BlockByNumber returns nil when the block is not indexed.
		BlockByNumber(ctx context.Context, number uint64) (*model.Block, error)
		ListUTXOs(ctx context.Context, filter model.UTXOFilter) ([]model.UTXO, error)
		// Account returns nil for unknown addresses.
		Account(ctx context.Context, address string) (*model.Account, error)
		CCCChanges(ctx context.Context, address string, limit int) ([]model.CCCChange, error)
	}

	// Tx is a unit of work over every entity.
	Tx interface {
		BlockByNumber(ctx context.Context, number uint64) (*model.Block, error)
		// InsertBlock fails with model.ErrAlreadyExists for a duplicate number or hash.
		InsertBlock(ctx context.Context, block model.Block) error
		// DeleteBlock removes the block and every row it produced, reverting supply
		// increases and spends made by it.
		DeleteBlock(ctx context.Context, number uint64) error
		BlocksInRange(ctx context.Context, from, to uint64) ([]model.Block, error)
		SetIntermediateRewards(ctx context.Context, number uint64, amount decimal.Decimal) error

		// InsertTransaction fails with model.ErrAlreadyExists for a known hash and leaves
		// the transaction usable.
		InsertTransaction(ctx context.Context, tx model.Transaction) error
		// Transaction returns nil for unknown hashes.
		Transaction(ctx context.Context, hash string) (*model.Transaction, error)
		// ConfirmPendingTransaction attaches block data to a pending row and drops its
		// pending address logs.
		ConfirmPendingTransaction(ctx context.Context, tx model.Transaction) error
		// LatestTransactionByTracker returns the most recent successful, non-pending
		// transaction carrying tracker, nil when there is none.
		LatestTransactionByTracker(ctx context.Context, tracker string) (*model.Transaction, error)
		PendingTransactionHashes(ctx context.Context) ([]string, error)
		DeletePendingTransactions(ctx context.Context, hashes []string) error
		InsertAddressLogs(ctx context.Context, logs []model.AddressLog) error
		// TouchedAddresses lists addresses touched by a block: address logs, CCC changes
		// and the author.
		TouchedAddresses(ctx context.Context, number uint64) ([]string, error)

		// AssetScheme returns nil when assetType is unknown.
		AssetScheme(ctx context.Context, assetType string) (*model.AssetScheme, error)
		InsertAssetScheme(ctx context.Context, scheme model.AssetScheme) error
		IncreaseAssetSupply(ctx context.Context, assetType string, quantity decimal.Decimal) error

		InsertUTXO(ctx context.Context, utxo model.UTXO) error
		// UTXO returns nil when the output is unknown.
		UTXO(ctx context.Context, transactionHash string, outputIndex uint32) (*model.UTXO, error)
		// MarkUTXOUsed sets the spend of an unused output, failing with model.ErrInvalidUTXO
		// when it is already used.
		MarkUTXOUsed(ctx context.Context, transactionHash string, outputIndex uint32, spend model.UTXOSpend) error

		InsertCCCChanges(ctx context.Context, changes []model.CCCChange) error
		UpsertAccounts(ctx context.Context, accounts []model.Account) error
		DeleteAccounts(ctx context.Context, addresses []string) error
	}
)
