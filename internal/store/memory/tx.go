package memory

import (
	"context"
	"sort"

	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/goodnatureofminers/codechain-indexer/internal/store"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Tx mutates a working copy of the state.
type Tx struct {
	state *state
}

var _ store.Tx = (*Tx)(nil)

func (t *Tx) BlockByNumber(_ context.Context, number uint64) (*model.Block, error) {
	if b, ok := t.state.blocks[number]; ok {
		return &b, nil
	}
	return nil, nil
}

func (t *Tx) InsertBlock(_ context.Context, block model.Block) error {
	if _, ok := t.state.blocks[block.Number]; ok {
		return errors.Wrapf(model.ErrAlreadyExists, "block %d", block.Number)
	}
	for _, b := range t.state.blocks {
		if b.Hash == block.Hash {
			return errors.Wrapf(model.ErrAlreadyExists, "block hash %s", block.Hash)
		}
	}
	t.state.blocks[block.Number] = block
	return nil
}

func (t *Tx) DeleteBlock(_ context.Context, number uint64) error {
	if _, ok := t.state.blocks[number]; !ok {
		return errors.Wrapf(model.ErrNotFound, "block %d", number)
	}

	for _, u := range t.state.utxos {
		if u.BlockNumber != number {
			continue
		}
		tx := t.state.transactions[u.TransactionHash]
		if tx.Type != model.TransactionIncreaseAssetSupply && tx.Type != model.TransactionWrapCCC {
			continue
		}
		if scheme, ok := t.state.schemes[u.AssetType]; ok && scheme.BlockNumber != number {
			scheme.Supply = scheme.Supply.Sub(u.Quantity)
			t.state.schemes[u.AssetType] = scheme
		}
	}
	for assetType, s := range t.state.schemes {
		if s.BlockNumber == number {
			delete(t.state.schemes, assetType)
		}
	}
	for key, u := range t.state.utxos {
		switch {
		case u.BlockNumber == number:
			delete(t.state.utxos, key)
		case u.Used != nil && u.Used.BlockNumber == number:
			u.Used = nil
			t.state.utxos[key] = u
		}
	}

	changes := t.state.changes[:0]
	for _, c := range t.state.changes {
		if c.BlockNumber != number {
			changes = append(changes, c)
		}
	}
	t.state.changes = changes

	logs := t.state.logs[:0]
	for _, l := range t.state.logs {
		if l.BlockNumber == nil || *l.BlockNumber != number {
			logs = append(logs, l)
		}
	}
	t.state.logs = logs

	for hash, tx := range t.state.transactions {
		if tx.BlockNumber != nil && *tx.BlockNumber == number {
			delete(t.state.transactions, hash)
		}
	}
	delete(t.state.blocks, number)
	return nil
}

func (t *Tx) BlocksInRange(_ context.Context, from, to uint64) ([]model.Block, error) {
	var out []model.Block
	for n := from; n <= to; n++ {
		if b, ok := t.state.blocks[n]; ok {
			out = append(out, b)
		}
		if n == ^uint64(0) {
			break
		}
	}
	return out, nil
}

func (t *Tx) SetIntermediateRewards(_ context.Context, number uint64, amount decimal.Decimal) error {
	b, ok := t.state.blocks[number]
	if !ok {
		return errors.Wrapf(model.ErrNotFound, "block %d", number)
	}
	b.IntermediateRewards = amount
	t.state.blocks[number] = b
	return nil
}

func (t *Tx) InsertTransaction(_ context.Context, tx model.Transaction) error {
	if _, ok := t.state.transactions[tx.Hash]; ok {
		return errors.Wrapf(model.ErrAlreadyExists, "transaction %s", tx.Hash)
	}
	t.state.transactions[tx.Hash] = tx
	return nil
}

func (t *Tx) Transaction(_ context.Context, hash string) (*model.Transaction, error) {
	if tx, ok := t.state.transactions[hash]; ok {
		return &tx, nil
	}
	return nil, nil
}

func (t *Tx) ConfirmPendingTransaction(_ context.Context, tx model.Transaction) error {
	existing, ok := t.state.transactions[tx.Hash]
	if !ok || !existing.Pending {
		return errors.Wrapf(model.ErrNotFound, "pending transaction %s", tx.Hash)
	}
	t.state.transactions[tx.Hash] = tx
	t.dropPendingLogs(map[string]struct{}{tx.Hash: {}})
	return nil
}

func (t *Tx) LatestTransactionByTracker(_ context.Context, tracker string) (*model.Transaction, error) {
	var latest *model.Transaction
	for _, tx := range t.state.transactions {
		if tx.Tracker != tracker || tx.Pending || !tx.Success || tx.BlockNumber == nil {
			continue
		}
		if latest == nil ||
			*tx.BlockNumber > *latest.BlockNumber ||
			(*tx.BlockNumber == *latest.BlockNumber && tx.TransactionIndex > latest.TransactionIndex) {
			tx := tx
			latest = &tx
		}
	}
	return latest, nil
}

func (t *Tx) PendingTransactionHashes(_ context.Context) ([]string, error) {
	var out []string
	for hash, tx := range t.state.transactions {
		if tx.Pending {
			out = append(out, hash)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (t *Tx) DeletePendingTransactions(_ context.Context, hashes []string) error {
	set := make(map[string]struct{}, len(hashes))
	for _, h := range hashes {
		if tx, ok := t.state.transactions[h]; ok && tx.Pending {
			delete(t.state.transactions, h)
			set[h] = struct{}{}
		}
	}
	t.dropPendingLogs(set)
	return nil
}

func (t *Tx) dropPendingLogs(hashes map[string]struct{}) {
	logs := t.state.logs[:0]
	for _, l := range t.state.logs {
		if _, ok := hashes[l.TransactionHash]; ok && l.Pending {
			continue
		}
		logs = append(logs, l)
	}
	t.state.logs = logs
}

func (t *Tx) InsertAddressLogs(_ context.Context, logs []model.AddressLog) error {
	for _, l := range logs {
		if _, ok := t.state.transactions[l.TransactionHash]; !ok {
			return errors.Wrapf(model.ErrNotFound, "transaction %s of address log", l.TransactionHash)
		}
		duplicate := false
		for _, existing := range t.state.logs {
			if existing.Address == l.Address && existing.TransactionHash == l.TransactionHash && existing.Role == l.Role {
				duplicate = true
				break
			}
		}
		if !duplicate {
			t.state.logs = append(t.state.logs, l)
		}
	}
	return nil
}

func (t *Tx) TouchedAddresses(_ context.Context, number uint64) ([]string, error) {
	set := make(map[string]struct{})
	if b, ok := t.state.blocks[number]; ok && b.Author != "" {
		set[b.Author] = struct{}{}
	}
	for _, l := range t.state.logs {
		if l.BlockNumber != nil && *l.BlockNumber == number && l.Role.IsPlatform() {
			set[l.Address] = struct{}{}
		}
	}
	for _, c := range t.state.changes {
		if c.BlockNumber == number {
			set[c.Address] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for a := range set {
		out = append(out, a)
	}
	sort.Strings(out)
	return out, nil
}

func (t *Tx) AssetScheme(_ context.Context, assetType string) (*model.AssetScheme, error) {
	if s, ok := t.state.schemes[assetType]; ok {
		return &s, nil
	}
	return nil, nil
}

func (t *Tx) InsertAssetScheme(_ context.Context, scheme model.AssetScheme) error {
	if _, ok := t.state.schemes[scheme.AssetType]; ok {
		return errors.Wrapf(model.ErrAlreadyExists, "asset scheme %s", scheme.AssetType)
	}
	t.state.schemes[scheme.AssetType] = scheme
	return nil
}

func (t *Tx) IncreaseAssetSupply(_ context.Context, assetType string, quantity decimal.Decimal) error {
	s, ok := t.state.schemes[assetType]
	if !ok {
		return errors.Wrapf(model.ErrNotFound, "asset scheme %s", assetType)
	}
	s.Supply = s.Supply.Add(quantity)
	t.state.schemes[assetType] = s
	return nil
}

func (t *Tx) InsertUTXO(_ context.Context, u model.UTXO) error {
	if _, ok := t.state.schemes[u.AssetType]; !ok {
		return errors.Wrapf(model.ErrNotFound, "asset scheme %s", u.AssetType)
	}
	key := utxoKey{hash: u.TransactionHash, index: u.TransactionOutputIndex}
	if _, ok := t.state.utxos[key]; ok {
		return errors.Wrapf(model.ErrAlreadyExists, "utxo %s:%d", u.TransactionHash, u.TransactionOutputIndex)
	}
	t.state.utxos[key] = u
	return nil
}

func (t *Tx) UTXO(_ context.Context, transactionHash string, outputIndex uint32) (*model.UTXO, error) {
	if u, ok := t.state.utxos[utxoKey{hash: transactionHash, index: outputIndex}]; ok {
		return &u, nil
	}
	return nil, nil
}

func (t *Tx) MarkUTXOUsed(_ context.Context, transactionHash string, outputIndex uint32, spend model.UTXOSpend) error {
	key := utxoKey{hash: transactionHash, index: outputIndex}
	u, ok := t.state.utxos[key]
	if !ok || u.Used != nil {
		return errors.Wrapf(model.ErrInvalidUTXO, "utxo %s:%d", transactionHash, outputIndex)
	}
	u.Used = &spend
	t.state.utxos[key] = u
	return nil
}

func (t *Tx) InsertCCCChanges(_ context.Context, changes []model.CCCChange) error {
	for _, c := range changes {
		if _, ok := t.state.blocks[c.BlockNumber]; !ok {
			return errors.Wrapf(model.ErrNotFound, "block %d of ccc change", c.BlockNumber)
		}
	}
	t.state.changes = append(t.state.changes, changes...)
	return nil
}

func (t *Tx) UpsertAccounts(_ context.Context, accounts []model.Account) error {
	for _, a := range accounts {
		t.state.accounts[a.Address] = a
	}
	return nil
}

func (t *Tx) DeleteAccounts(_ context.Context, addresses []string) error {
	for _, a := range addresses {
		delete(t.state.accounts, a)
	}
	return nil
}
