package model

import "github.com/pkg/errors"

// Error kinds surfaced by the indexer. Callers classify with errors.Is.
var (
	ErrInvalidBlockNumber = errors.New("invalid block number")
	ErrInvalidBlockHash   = errors.New("invalid block hash")
	ErrInvalidUTXO        = errors.New("invalid utxo")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrDB                 = errors.New("database error")
	ErrChainUnavailable   = errors.New("chain unavailable")
	ErrSyncInProgress     = errors.New("sync already in progress")
)
