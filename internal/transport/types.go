package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/goodnatureofminers/codechain-indexer/internal/service/syncer"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Syncer interface {
		Sync(ctx context.Context) error
		State() syncer.State
	}

	TipReader interface {
		LatestBlock(ctx context.Context) (*model.Block, error)
	}

	ChainClient interface {
		BestBlockNumber(ctx context.Context) (uint64, error)
	}

	Metrics interface {
		ObserveRequest(handler string, code int, started time.Time)
	}
)
