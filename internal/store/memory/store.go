// Package memory is an in-memory store.Store. Transactions work on a copy of the state
// that replaces the committed state on success.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/goodnatureofminers/codechain-indexer/internal/store"
)

type utxoKey struct {
	hash  string
	index uint32
}

type state struct {
	blocks       map[uint64]model.Block
	transactions map[string]model.Transaction
	schemes      map[string]model.AssetScheme
	utxos        map[utxoKey]model.UTXO
	accounts     map[string]model.Account
	changes      []model.CCCChange
	logs         []model.AddressLog
}

func newState() *state {
	return &state{
		blocks:       make(map[uint64]model.Block),
		transactions: make(map[string]model.Transaction),
		schemes:      make(map[string]model.AssetScheme),
		utxos:        make(map[utxoKey]model.UTXO),
		accounts:     make(map[string]model.Account),
	}
}

func (s *state) clone() *state {
	c := &state{
		blocks:       make(map[uint64]model.Block, len(s.blocks)),
		transactions: make(map[string]model.Transaction, len(s.transactions)),
		schemes:      make(map[string]model.AssetScheme, len(s.schemes)),
		utxos:        make(map[utxoKey]model.UTXO, len(s.utxos)),
		accounts:     make(map[string]model.Account, len(s.accounts)),
		changes:      append([]model.CCCChange(nil), s.changes...),
		logs:         append([]model.AddressLog(nil), s.logs...),
	}
	for k, v := range s.blocks {
		c.blocks[k] = v
	}
	for k, v := range s.transactions {
		c.transactions[k] = v
	}
	for k, v := range s.schemes {
		c.schemes[k] = v
	}
	for k, v := range s.utxos {
		c.utxos[k] = v
	}
	for k, v := range s.accounts {
		c.accounts[k] = v
	}
	return c
}

// Store keeps every entity in maps guarded by a mutex. Transactions are serialized.
type Store struct {
	mu    sync.RWMutex
	state *state
}

var _ store.Store = (*Store)(nil)

// New returns an empty Store.
func New() *Store {
	return &Store{state: newState()}
}

// WithTx runs fn against a private copy of the state. Calling Store methods from fn deadlocks.
func (s *Store) WithTx(ctx context.Context, fn func(store.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	working := s.state.clone()
	if err := fn(&Tx{state: working}); err != nil {
		return err
	}
	s.state = working
	return nil
}

func (s *Store) LatestBlock(_ context.Context) (*model.Block, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.latestBlock(), nil
}

func (s *Store) BlockByNumber(_ context.Context, number uint64) (*model.Block, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.state.blocks[number]; ok {
		return &b, nil
	}
	return nil, nil
}

func (s *Store) ListUTXOs(_ context.Context, filter model.UTXOFilter) ([]model.UTXO, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tip uint64
	if b := s.state.latestBlock(); b != nil {
		tip = b.Number
	}
	var out []model.UTXO
	for _, u := range s.state.utxos {
		if filter.Address != "" && u.Address != filter.Address {
			continue
		}
		if filter.AssetType != "" && u.AssetType != filter.AssetType {
			continue
		}
		if filter.ShardID != nil && u.ShardID != *filter.ShardID {
			continue
		}
		if filter.OnlyConfirmed {
			if !u.IsConfirmedUnspent(tip, filter.ConfirmThreshold) {
				continue
			}
		} else if u.Used != nil {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BlockNumber != out[j].BlockNumber {
			return out[i].BlockNumber > out[j].BlockNumber
		}
		if out[i].TransactionIndex != out[j].TransactionIndex {
			return out[i].TransactionIndex > out[j].TransactionIndex
		}
		return out[i].TransactionOutputIndex < out[j].TransactionOutputIndex
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *Store) Account(_ context.Context, address string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.state.accounts[address]; ok {
		return &a, nil
	}
	return nil, nil
}

func (s *Store) CCCChanges(_ context.Context, address string, limit int) ([]model.CCCChange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.CCCChange
	for i := len(s.state.changes) - 1; i >= 0; i-- {
		c := s.state.changes[i]
		if c.Address != address {
			continue
		}
		out = append(out, c)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *state) latestBlock() *model.Block {
	var latest *model.Block
	for _, b := range s.blocks {
		if latest == nil || b.Number > latest.Number {
			b := b
			latest = &b
		}
	}
	return latest
}
