package settlement

import (
	"context"
	"time"

	"github.com/goodnatureofminers/codechain-indexer/internal/chain"
	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainClient interface {
		MiningReward(ctx context.Context, blockNumber uint64) (*uint256.Int, error)
		CommonParams(ctx context.Context, blockNumber uint64) (*chain.CommonParams, error)
		TermMetadata(ctx context.Context, blockNumber uint64) (*chain.TermMetadata, error)
		PossibleAuthors(ctx context.Context, blockNumber uint64) ([]string, error)
		Balance(ctx context.Context, address string, blockNumber uint64) (*uint256.Int, error)
	}

	StakeOracle interface {
		Candidates(ctx context.Context, blockNumber uint64) ([]chain.Candidate, error)
		Jailed(ctx context.Context, blockNumber uint64) ([]chain.Prisoner, error)
		Banned(ctx context.Context, blockNumber uint64) ([]string, error)
		Validators(ctx context.Context, blockNumber uint64) ([]chain.Validator, error)
	}

	StakeholderSource interface {
		Stakeholders(ctx context.Context, blockNumber uint64) ([]chain.Stakeholder, error)
	}

	Repository interface {
		BlocksInRange(ctx context.Context, from, to uint64) ([]model.Block, error)
		SetIntermediateRewards(ctx context.Context, number uint64, amount decimal.Decimal) error
		InsertCCCChanges(ctx context.Context, changes []model.CCCChange) error
	}

	Metrics interface {
		ObserveSettle(err error, mode string, started time.Time)
		ObserveTermClose(err error, started time.Time)
	}
)
