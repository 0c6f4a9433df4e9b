package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/goodnatureofminers/codechain-indexer/pkg/safe"
	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type blockRow struct {
	Number              uint64          `db:"number"`
	Hash                string          `db:"hash"`
	ParentHash          string          `db:"parent_hash"`
	Timestamp           uint64          `db:"timestamp"`
	Author              string          `db:"author"`
	TransactionsCount   uint32          `db:"transactions_count"`
	MissedSignersOfPrev pq.StringArray  `db:"missed_signers_of_prev"`
	IntermediateRewards decimal.Decimal `db:"intermediate_rewards"`
	CreatedAt           time.Time       `db:"created_at"`
}

func newBlockRow(b model.Block) blockRow {
	createdAt := b.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	return blockRow{
		Number:              b.Number,
		Hash:                b.Hash,
		ParentHash:          b.ParentHash,
		Timestamp:           b.Timestamp,
		Author:              b.Author,
		TransactionsCount:   b.TransactionsCount,
		MissedSignersOfPrev: pq.StringArray(nonNil(b.MissedSignersOfPrev)),
		IntermediateRewards: b.IntermediateRewards,
		CreatedAt:           createdAt,
	}
}

func (r blockRow) model() model.Block {
	return model.Block{
		Number:              r.Number,
		Hash:                r.Hash,
		ParentHash:          r.ParentHash,
		Timestamp:           r.Timestamp,
		Author:              r.Author,
		TransactionsCount:   r.TransactionsCount,
		MissedSignersOfPrev: []string(r.MissedSignersOfPrev),
		IntermediateRewards: r.IntermediateRewards,
		CreatedAt:           r.CreatedAt,
	}
}

type transactionRow struct {
	Hash             string          `db:"hash"`
	Type             string          `db:"type"`
	Tracker          sql.NullString  `db:"tracker"`
	BlockNumber      sql.NullInt64   `db:"block_number"`
	BlockHash        sql.NullString  `db:"block_hash"`
	TransactionIndex uint32          `db:"transaction_index"`
	Signer           string          `db:"signer"`
	FeePayer         string          `db:"fee_payer"`
	Fee              decimal.Decimal `db:"fee"`
	Seq              uint64          `db:"seq"`
	NetworkID        string          `db:"network_id"`
	Pending          bool            `db:"pending"`
	Success          bool            `db:"success"`
	ErrorHint        sql.NullString  `db:"error_hint"`
	Timestamp        uint64          `db:"timestamp"`
	Action           types.JSONText  `db:"action"`
}

func newTransactionRow(tx model.Transaction) (transactionRow, error) {
	number, err := nullBlockNumber(tx.BlockNumber)
	if err != nil {
		return transactionRow{}, fmt.Errorf("transaction %s: %w", tx.Hash, err)
	}
	action := types.JSONText(tx.Action)
	if len(action) == 0 {
		action = types.JSONText("null")
	}
	return transactionRow{
		Hash:             tx.Hash,
		Type:             string(tx.Type),
		Tracker:          nullString(tx.Tracker),
		BlockNumber:      number,
		BlockHash:        nullString(tx.BlockHash),
		TransactionIndex: tx.TransactionIndex,
		Signer:           tx.Signer,
		FeePayer:         tx.FeePayer,
		Fee:              tx.Fee,
		Seq:              tx.Seq,
		NetworkID:        tx.NetworkID,
		Pending:          tx.Pending,
		Success:          tx.Success,
		ErrorHint:        nullString(tx.ErrorHint),
		Timestamp:        tx.Timestamp,
		Action:           action,
	}, nil
}

func (r transactionRow) model() (model.Transaction, error) {
	number, err := blockNumberPtr(r.BlockNumber)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("transaction %s: %w", r.Hash, err)
	}
	var action json.RawMessage
	if string(r.Action) != "null" {
		action = json.RawMessage(r.Action)
	}
	return model.Transaction{
		Hash:             r.Hash,
		Type:             model.TransactionType(r.Type),
		Tracker:          r.Tracker.String,
		BlockNumber:      number,
		BlockHash:        r.BlockHash.String,
		TransactionIndex: r.TransactionIndex,
		Signer:           r.Signer,
		FeePayer:         r.FeePayer,
		Fee:              r.Fee,
		Seq:              r.Seq,
		NetworkID:        r.NetworkID,
		Pending:          r.Pending,
		Success:          r.Success,
		ErrorHint:        r.ErrorHint.String,
		Timestamp:        r.Timestamp,
		Action:           action,
	}, nil
}

type addressLogRow struct {
	Address          string        `db:"address"`
	TransactionHash  string        `db:"transaction_hash"`
	BlockNumber      sql.NullInt64 `db:"block_number"`
	TransactionIndex uint32        `db:"transaction_index"`
	Role             string        `db:"role"`
	Pending          bool          `db:"pending"`
}

type assetSchemeRow struct {
	AssetType           string          `db:"asset_type"`
	ShardID             uint16          `db:"shard_id"`
	Supply              decimal.Decimal `db:"supply"`
	Approver            string          `db:"approver"`
	Registrar           string          `db:"registrar"`
	AllowedScriptHashes pq.StringArray  `db:"allowed_script_hashes"`
	Metadata            string          `db:"metadata"`
	TransactionHash     string          `db:"transaction_hash"`
	BlockNumber         uint64          `db:"block_number"`
}

func (r assetSchemeRow) model() model.AssetScheme {
	return model.AssetScheme{
		AssetType:           r.AssetType,
		ShardID:             r.ShardID,
		Supply:              r.Supply,
		Approver:            r.Approver,
		Registrar:           r.Registrar,
		AllowedScriptHashes: []string(r.AllowedScriptHashes),
		Metadata:            r.Metadata,
		TransactionHash:     r.TransactionHash,
		BlockNumber:         r.BlockNumber,
	}
}

type utxoRow struct {
	Address                string          `db:"address"`
	AssetType              string          `db:"asset_type"`
	ShardID                uint16          `db:"shard_id"`
	Quantity               decimal.Decimal `db:"quantity"`
	OrderHash              string          `db:"order_hash"`
	TransactionHash        string          `db:"transaction_hash"`
	TransactionTracker     string          `db:"transaction_tracker"`
	TransactionOutputIndex uint32          `db:"transaction_output_index"`
	TransactionIndex       uint32          `db:"transaction_index"`
	BlockNumber            uint64          `db:"block_number"`
	UsedTransactionHash    sql.NullString  `db:"used_transaction_hash"`
	UsedBlockNumber        sql.NullInt64   `db:"used_block_number"`
}

func (r utxoRow) model() (model.UTXO, error) {
	u := model.UTXO{
		Address:                r.Address,
		AssetType:              r.AssetType,
		ShardID:                r.ShardID,
		Quantity:               r.Quantity,
		OrderHash:              r.OrderHash,
		TransactionHash:        r.TransactionHash,
		TransactionTracker:     r.TransactionTracker,
		TransactionOutputIndex: r.TransactionOutputIndex,
		TransactionIndex:       r.TransactionIndex,
		BlockNumber:            r.BlockNumber,
	}
	if r.UsedTransactionHash.Valid {
		number, err := safe.Uint64(r.UsedBlockNumber.Int64)
		if err != nil {
			return model.UTXO{}, fmt.Errorf("utxo %s:%d spend: %w", r.TransactionHash, r.TransactionOutputIndex, err)
		}
		u.Used = &model.UTXOSpend{TransactionHash: r.UsedTransactionHash.String, BlockNumber: number}
	}
	return u, nil
}

type accountRow struct {
	Address     string          `db:"address"`
	Balance     decimal.Decimal `db:"balance"`
	Seq         uint64          `db:"seq"`
	BlockNumber uint64          `db:"block_number"`
}

type cccChangeRow struct {
	Address         string          `db:"address"`
	Change          decimal.Decimal `db:"change"`
	BlockNumber     uint64          `db:"block_number"`
	Reason          string          `db:"reason"`
	TransactionHash sql.NullString  `db:"transaction_hash"`
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullBlockNumber(n *uint64) (sql.NullInt64, error) {
	if n == nil {
		return sql.NullInt64{}, nil
	}
	v, err := safe.Int64(*n)
	if err != nil {
		return sql.NullInt64{}, err
	}
	return sql.NullInt64{Int64: v, Valid: true}, nil
}

func blockNumberPtr(n sql.NullInt64) (*uint64, error) {
	if !n.Valid {
		return nil, nil
	}
	v, err := safe.Uint64(n.Int64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
