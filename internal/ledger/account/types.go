package account

import (
	"context"
	"time"

	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/holiman/uint256"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		UpsertAccounts(ctx context.Context, accounts []model.Account) error
		DeleteAccounts(ctx context.Context, addresses []string) error
	}

	ChainClient interface {
		Balance(ctx context.Context, address string, blockNumber uint64) (*uint256.Int, error)
		Seq(ctx context.Context, address string, blockNumber uint64) (uint64, error)
	}

	Metrics interface {
		ObserveRecompute(err error, accounts int, started time.Time)
	}
)
