package chain

import (
	"context"

	"github.com/holiman/uint256"
)

type (
	// Client is read-only access to chain state. Missing blocks and hashes are reported
	// as nil or "" without an error.
	Client interface {
		BestBlockNumber(ctx context.Context) (uint64, error)
		BlockByNumber(ctx context.Context, number uint64) (*Block, error)
		BlockHash(ctx context.Context, number uint64) (string, error)
		Balance(ctx context.Context, address string, blockNumber uint64) (*uint256.Int, error)
		Seq(ctx context.Context, address string, blockNumber uint64) (uint64, error)
		CommonParams(ctx context.Context, blockNumber uint64) (*CommonParams, error)
		// TermMetadata returns nil when the chain has no term support.
		TermMetadata(ctx context.Context, blockNumber uint64) (*TermMetadata, error)
		PossibleAuthors(ctx context.Context, blockNumber uint64) ([]string, error)
		MiningReward(ctx context.Context, blockNumber uint64) (*uint256.Int, error)
		// RegularKeyOwner returns "" when publicKey is not registered as a regular key.
		RegularKeyOwner(ctx context.Context, publicKey string, blockNumber uint64) (string, error)
		GenesisAccounts(ctx context.Context) ([]string, error)
		PendingTransactions(ctx context.Context) ([]Transaction, error)
	}

	// StakeOracle answers staking-state queries at a block.
	StakeOracle interface {
		Candidates(ctx context.Context, blockNumber uint64) ([]Candidate, error)
		Jailed(ctx context.Context, blockNumber uint64) ([]Prisoner, error)
		Banned(ctx context.Context, blockNumber uint64) ([]string, error)
		Validators(ctx context.Context, blockNumber uint64) ([]Validator, error)
	}

	// StakeholderSource lists stake token holders with undelegated plus delegated balances.
	StakeholderSource interface {
		Stakeholders(ctx context.Context, blockNumber uint64) ([]Stakeholder, error)
	}
)
