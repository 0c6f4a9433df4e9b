package utxo

import (
	"context"
	"time"

	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Repository is the part of store.Tx the ledger writes through.
	Repository interface {
		AssetScheme(ctx context.Context, assetType string) (*model.AssetScheme, error)
		InsertAssetScheme(ctx context.Context, scheme model.AssetScheme) error
		IncreaseAssetSupply(ctx context.Context, assetType string, quantity decimal.Decimal) error
		InsertUTXO(ctx context.Context, utxo model.UTXO) error
		UTXO(ctx context.Context, transactionHash string, outputIndex uint32) (*model.UTXO, error)
		MarkUTXOUsed(ctx context.Context, transactionHash string, outputIndex uint32, spend model.UTXOSpend) error
		LatestTransactionByTracker(ctx context.Context, tracker string) (*model.Transaction, error)
	}

	Metrics interface {
		ObserveApply(err error, txType model.TransactionType, started time.Time)
	}
)
