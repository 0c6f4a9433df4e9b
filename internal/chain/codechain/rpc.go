package codechain

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/codechain-indexer/internal/chain"
	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/holiman/uint256"
)

var _ chain.Client = (*Client)(nil)

// BestBlockNumber returns the height of the node's best block.
func (c *Client) BestBlockNumber(ctx context.Context) (uint64, error) {
	var n uint64
	found, err := c.call(ctx, "chain_getBestBlockNumber", &n)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, errors.New("chain_getBestBlockNumber: empty result")
	}
	return n, nil
}

// BlockByNumber returns nil when the node has no block at number.
func (c *Client) BlockByNumber(ctx context.Context, number uint64) (*chain.Block, error) {
	var dto blockDTO
	found, err := c.call(ctx, "chain_getBlockByNumber", &dto, number)
	if err != nil || !found {
		return nil, err
	}
	block, err := c.convertBlock(dto)
	if err != nil {
		return nil, err
	}
	if err := c.fillResults(ctx, block.Transactions); err != nil {
		return nil, fmt.Errorf("block %d: %w", number, err)
	}
	return block, nil
}

// fillResults marks the transactions the node failed to apply. A failed transaction stays
// in its block and still pays its fee.
func (c *Client) fillResults(ctx context.Context, txs []chain.Transaction) error {
	for i := range txs {
		var hint string
		found, err := c.call(ctx, "mempool_getErrorHint", &hint, txs[i].Hash)
		if err != nil {
			return fmt.Errorf("error hint of %s: %w", txs[i].Hash, err)
		}
		if found {
			txs[i].Failed = true
			txs[i].ErrorHint = hint
		}
	}
	return nil
}

// BlockHash returns "" when the node has no block at number.
func (c *Client) BlockHash(ctx context.Context, number uint64) (string, error) {
	var hash string
	if _, err := c.call(ctx, "chain_getBlockHash", &hash, number); err != nil {
		return "", err
	}
	return hash, nil
}

func (c *Client) Balance(ctx context.Context, address string, blockNumber uint64) (*uint256.Int, error) {
	var q quantity
	if _, err := c.call(ctx, "chain_getBalance", &q, address, blockNumber); err != nil {
		return nil, err
	}
	return q.value(), nil
}

func (c *Client) Seq(ctx context.Context, address string, blockNumber uint64) (uint64, error) {
	var seq uint64
	if _, err := c.call(ctx, "chain_getSeq", &seq, address, blockNumber); err != nil {
		return 0, err
	}
	return seq, nil
}

func (c *Client) CommonParams(ctx context.Context, blockNumber uint64) (*chain.CommonParams, error) {
	var dto commonParamsDTO
	found, err := c.call(ctx, "chain_getCommonParams", &dto, blockNumber)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("chain_getCommonParams: no params at %d", blockNumber)
	}
	params := &chain.CommonParams{
		TermSeconds: dto.TermSeconds,
		MinFees:     make(map[model.TransactionType]*uint256.Int, len(dto.MinFees)),
	}
	for t, fee := range dto.MinFees {
		fee := fee
		params.MinFees[t] = fee.value()
	}
	return params, nil
}

// TermMetadata returns nil when the node does not track terms.
func (c *Client) TermMetadata(ctx context.Context, blockNumber uint64) (*chain.TermMetadata, error) {
	var pair [2]uint64
	found, err := c.call(ctx, "chain_getTermMetadata", &pair, blockNumber)
	if err != nil || !found {
		return nil, err
	}
	return &chain.TermMetadata{LastTermFinishedBlockNumber: pair[0], CurrentTermID: pair[1]}, nil
}

func (c *Client) PossibleAuthors(ctx context.Context, blockNumber uint64) ([]string, error) {
	var authors []string
	if _, err := c.call(ctx, "chain_getPossibleAuthors", &authors, blockNumber); err != nil {
		return nil, err
	}
	return authors, nil
}

func (c *Client) MiningReward(ctx context.Context, blockNumber uint64) (*uint256.Int, error) {
	var q quantity
	found, err := c.call(ctx, "chain_getMiningReward", &q, blockNumber)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("chain_getMiningReward: no reward for block %d", blockNumber)
	}
	return q.value(), nil
}

// RegularKeyOwner returns "" when publicKey is not a registered regular key.
func (c *Client) RegularKeyOwner(ctx context.Context, publicKey string, blockNumber uint64) (string, error) {
	var owner string
	if _, err := c.call(ctx, "chain_getRegularKeyOwner", &owner, publicKey, blockNumber); err != nil {
		return "", err
	}
	return owner, nil
}

func (c *Client) GenesisAccounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if _, err := c.call(ctx, "chain_getGenesisAccounts", &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c *Client) PendingTransactions(ctx context.Context) ([]chain.Transaction, error) {
	var dto pendingDTO
	if _, err := c.call(ctx, "mempool_getPendingTransactions", &dto); err != nil {
		return nil, err
	}
	out := make([]chain.Transaction, 0, len(dto.Transactions))
	for _, t := range dto.Transactions {
		tx, err := c.convertTransaction(t)
		if err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	return out, nil
}
