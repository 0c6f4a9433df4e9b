package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/jmoiron/sqlx"
)

const utxoColumns = `address, asset_type, shard_id, quantity, order_hash, transaction_hash,
	transaction_tracker, transaction_output_index, transaction_index, block_number,
	used_transaction_hash, used_block_number`

func (q *queries) InsertUTXO(ctx context.Context, u model.UTXO) (err error) {
	defer q.observe("insert_utxo", time.Now(), &err)

	_, err = sqlx.NamedExecContext(ctx, q.db, `
		INSERT INTO utxos (address, asset_type, shard_id, quantity, order_hash, transaction_hash,
			transaction_tracker, transaction_output_index, transaction_index, block_number)
		VALUES (:address, :asset_type, :shard_id, :quantity, :order_hash, :transaction_hash,
			:transaction_tracker, :transaction_output_index, :transaction_index, :block_number)`, utxoRow{
		Address:                u.Address,
		AssetType:              u.AssetType,
		ShardID:                u.ShardID,
		Quantity:               u.Quantity,
		OrderHash:              u.OrderHash,
		TransactionHash:        u.TransactionHash,
		TransactionTracker:     u.TransactionTracker,
		TransactionOutputIndex: u.TransactionOutputIndex,
		TransactionIndex:       u.TransactionIndex,
		BlockNumber:            u.BlockNumber,
	})
	if err != nil {
		return dbError(err, "insert utxo %s:%d", u.TransactionHash, u.TransactionOutputIndex)
	}
	return nil
}

func (q *queries) UTXO(ctx context.Context, transactionHash string, outputIndex uint32) (_ *model.UTXO, err error) {
	defer q.observe("utxo", time.Now(), &err)

	var row utxoRow
	err = sqlx.GetContext(ctx, q.db, &row, `
		SELECT `+utxoColumns+` FROM utxos
		WHERE transaction_hash = $1 AND transaction_output_index = $2`, transactionHash, outputIndex)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dbError(err, "select utxo %s:%d", transactionHash, outputIndex)
	}
	u, err := row.model()
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (q *queries) MarkUTXOUsed(ctx context.Context, transactionHash string, outputIndex uint32, spend model.UTXOSpend) (err error) {
	defer q.observe("mark_utxo_used", time.Now(), &err)

	res, err := q.db.ExecContext(ctx, `
		UPDATE utxos SET used_transaction_hash = $3, used_block_number = $4
		WHERE transaction_hash = $1 AND transaction_output_index = $2 AND used_transaction_hash IS NULL`,
		transactionHash, outputIndex, spend.TransactionHash, spend.BlockNumber)
	if err != nil {
		return dbError(err, "mark utxo %s:%d used", transactionHash, outputIndex)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return dbError(err, "mark utxo %s:%d used", transactionHash, outputIndex)
	}
	if n == 0 {
		return fmt.Errorf("utxo %s:%d: %w", transactionHash, outputIndex, model.ErrInvalidUTXO)
	}
	return nil
}

// ListUTXOs applies the same availability rule as model.UTXO.IsConfirmedUnspent when
// filter.OnlyConfirmed is set, and plain "unused" otherwise.
func (q *queries) ListUTXOs(ctx context.Context, filter model.UTXOFilter) (_ []model.UTXO, err error) {
	defer q.observe("list_utxos", time.Now(), &err)

	var shard sql.NullInt32
	if filter.ShardID != nil {
		shard = sql.NullInt32{Int32: int32(*filter.ShardID), Valid: true}
	}
	var rows []utxoRow
	err = sqlx.SelectContext(ctx, q.db, &rows, `
		WITH tip AS (SELECT COALESCE(MAX(number), 0) AS number FROM blocks)
		SELECT `+utxoColumns+` FROM utxos, tip
		WHERE ($1::TEXT = '' OR address = $1)
			AND ($2::TEXT = '' OR asset_type = $2)
			AND ($3::INTEGER IS NULL OR shard_id = $3)
			AND (
				(NOT $4::BOOLEAN AND used_transaction_hash IS NULL)
				OR ($4::BOOLEAN
					AND block_number <= tip.number AND tip.number - block_number >= $5::BIGINT
					AND (used_block_number IS NULL
						OR NOT (used_block_number <= tip.number AND tip.number - used_block_number >= $5::BIGINT)))
			)
		ORDER BY block_number DESC, transaction_index DESC, transaction_output_index
		LIMIT NULLIF(GREATEST($6::INTEGER, 0), 0)`,
		filter.Address, filter.AssetType, shard, filter.OnlyConfirmed, filter.ConfirmThreshold, filter.Limit)
	if err != nil {
		return nil, dbError(err, "list utxos")
	}
	out := make([]model.UTXO, 0, len(rows))
	for _, r := range rows {
		u, err := r.model()
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}
