package syncer

import (
	"context"
	"sync"

	"github.com/goodnatureofminers/codechain-indexer/internal/chain"
	"github.com/holiman/uint256"
)

// fakeChain serves a scripted canonical chain. Balances are looked up at the highest
// block at or below the requested one that sets the address.
type fakeChain struct {
	mu          sync.Mutex
	blocks      []*chain.Block
	best        *uint64
	balances    map[uint64]map[string]uint64
	genesis     []string
	pending     []chain.Transaction
	reward      uint64
	regularKeys map[string]string
}

func newFakeChain(genesis map[string]uint64) *fakeChain {
	c := &fakeChain{
		balances:    map[uint64]map[string]uint64{0: {}},
		regularKeys: map[string]string{},
	}
	for address, balance := range genesis {
		c.genesis = append(c.genesis, address)
		c.balances[0][address] = balance
	}
	return c
}

// setBlock places b at its height, dropping every block above it.
func (c *fakeChain) setBlock(b *chain.Block, balances map[string]uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if int(b.Number) < len(c.blocks) {
		c.blocks = c.blocks[:b.Number]
	}
	c.blocks = append(c.blocks, b)
	if balances != nil {
		c.balances[b.Number] = balances
	}
}

func (c *fakeChain) BestBlockNumber(context.Context) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.best != nil {
		return *c.best, nil
	}
	return uint64(len(c.blocks) - 1), nil
}

func (c *fakeChain) BlockByNumber(_ context.Context, number uint64) (*chain.Block, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if number >= uint64(len(c.blocks)) {
		return nil, nil
	}
	b := *c.blocks[number]
	b.Transactions = append([]chain.Transaction(nil), b.Transactions...)
	return &b, nil
}

func (c *fakeChain) BlockHash(_ context.Context, number uint64) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if number >= uint64(len(c.blocks)) {
		return "", nil
	}
	return c.blocks[number].Hash, nil
}

func (c *fakeChain) Balance(_ context.Context, address string, blockNumber uint64) (*uint256.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for n := int64(blockNumber); n >= 0; n-- {
		if balance, ok := c.balances[uint64(n)][address]; ok {
			return uint256.NewInt(balance), nil
		}
	}
	return new(uint256.Int), nil
}

func (c *fakeChain) Seq(context.Context, string, uint64) (uint64, error) { return 0, nil }

func (c *fakeChain) CommonParams(context.Context, uint64) (*chain.CommonParams, error) {
	return &chain.CommonParams{}, nil
}

func (c *fakeChain) TermMetadata(context.Context, uint64) (*chain.TermMetadata, error) {
	return nil, nil
}

func (c *fakeChain) PossibleAuthors(context.Context, uint64) ([]string, error) {
	return []string{"miner"}, nil
}

func (c *fakeChain) MiningReward(context.Context, uint64) (*uint256.Int, error) {
	return uint256.NewInt(c.reward), nil
}

func (c *fakeChain) RegularKeyOwner(_ context.Context, publicKey string, _ uint64) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.regularKeys[publicKey], nil
}

func (c *fakeChain) GenesisAccounts(context.Context) ([]string, error) {
	return c.genesis, nil
}

func (c *fakeChain) PendingTransactions(context.Context) ([]chain.Transaction, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]chain.Transaction(nil), c.pending...), nil
}

func (c *fakeChain) Candidates(context.Context, uint64) ([]chain.Candidate, error) { return nil, nil }

func (c *fakeChain) Jailed(context.Context, uint64) ([]chain.Prisoner, error) { return nil, nil }

func (c *fakeChain) Banned(context.Context, uint64) ([]string, error) { return nil, nil }

func (c *fakeChain) Validators(context.Context, uint64) ([]chain.Validator, error) { return nil, nil }

func (c *fakeChain) Stakeholders(context.Context, uint64) ([]chain.Stakeholder, error) {
	return nil, nil
}
