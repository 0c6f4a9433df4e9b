package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const blockColumns = `number, hash, parent_hash, timestamp, author, transactions_count,
	missed_signers_of_prev, intermediate_rewards, created_at`

func (q *queries) LatestBlock(ctx context.Context) (_ *model.Block, err error) {
	defer q.observe("latest_block", time.Now(), &err)

	var row blockRow
	err = sqlx.GetContext(ctx, q.db, &row, `SELECT `+blockColumns+` FROM blocks ORDER BY number DESC LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dbError(err, "select latest block")
	}
	b := row.model()
	return &b, nil
}

func (q *queries) BlockByNumber(ctx context.Context, number uint64) (_ *model.Block, err error) {
	defer q.observe("block_by_number", time.Now(), &err)

	var row blockRow
	err = sqlx.GetContext(ctx, q.db, &row, `SELECT `+blockColumns+` FROM blocks WHERE number = $1`, number)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dbError(err, "select block %d", number)
	}
	b := row.model()
	return &b, nil
}

func (q *queries) InsertBlock(ctx context.Context, block model.Block) (err error) {
	defer q.observe("insert_block", time.Now(), &err)

	_, err = sqlx.NamedExecContext(ctx, q.db, `
		INSERT INTO blocks (`+blockColumns+`)
		VALUES (:number, :hash, :parent_hash, :timestamp, :author, :transactions_count,
			:missed_signers_of_prev, :intermediate_rewards, :created_at)`, newBlockRow(block))
	if err != nil {
		return dbError(err, "insert block %d", block.Number)
	}
	return nil
}

func (q *queries) BlocksInRange(ctx context.Context, from, to uint64) (_ []model.Block, err error) {
	defer q.observe("blocks_in_range", time.Now(), &err)

	var rows []blockRow
	err = sqlx.SelectContext(ctx, q.db, &rows, `
		SELECT `+blockColumns+` FROM blocks
		WHERE number BETWEEN $1 AND $2
		ORDER BY number`, from, to)
	if err != nil {
		return nil, dbError(err, "select blocks %d..%d", from, to)
	}
	out := make([]model.Block, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.model())
	}
	return out, nil
}

func (q *queries) SetIntermediateRewards(ctx context.Context, number uint64, amount decimal.Decimal) (err error) {
	defer q.observe("set_intermediate_rewards", time.Now(), &err)

	res, err := q.db.ExecContext(ctx, `UPDATE blocks SET intermediate_rewards = $2 WHERE number = $1`, number, amount)
	if err != nil {
		return dbError(err, "update intermediate rewards of %d", number)
	}
	return requireAffected(res, "block %d", number)
}

// DeleteBlock undoes everything block number produced. Statement order follows the
// foreign keys: outputs before schemes, logs before transactions, children before the block.
func (q *queries) DeleteBlock(ctx context.Context, number uint64) (err error) {
	defer q.observe("delete_block", time.Now(), &err)

	var exists bool
	err = sqlx.GetContext(ctx, q.db, &exists, `SELECT EXISTS (SELECT 1 FROM blocks WHERE number = $1)`, number)
	if err != nil {
		return dbError(err, "check block %d", number)
	}
	if !exists {
		return fmt.Errorf("block %d: %w", number, model.ErrNotFound)
	}

	statements := []struct {
		name  string
		query string
	}{
		{"revert supply", `
			UPDATE asset_schemes s SET supply = s.supply - issued.quantity
			FROM (
				SELECT u.asset_type, SUM(u.quantity) AS quantity
				FROM utxos u JOIN transactions t ON t.hash = u.transaction_hash
				WHERE u.block_number = $1 AND t.type IN ('`+string(model.TransactionIncreaseAssetSupply)+`', '`+string(model.TransactionWrapCCC)+`')
				GROUP BY u.asset_type
			) issued
			WHERE s.asset_type = issued.asset_type AND s.block_number <> $1`},
		{"restore spent outputs", `
			UPDATE utxos SET used_transaction_hash = NULL, used_block_number = NULL
			WHERE used_block_number = $1`},
		{"delete outputs", `DELETE FROM utxos WHERE block_number = $1`},
		{"delete asset schemes", `DELETE FROM asset_schemes WHERE block_number = $1`},
		{"delete ccc changes", `DELETE FROM ccc_changes WHERE block_number = $1`},
		{"delete address logs", `DELETE FROM address_logs WHERE block_number = $1 AND NOT pending`},
		{"delete transactions", `DELETE FROM transactions WHERE block_number = $1 AND NOT pending`},
		{"delete block", `DELETE FROM blocks WHERE number = $1`},
	}
	for _, st := range statements {
		if _, err = q.db.ExecContext(ctx, st.query, number); err != nil {
			return dbError(err, "%s of block %d", st.name, number)
		}
	}
	return nil
}

func requireAffected(res sql.Result, format string, args ...any) error {
	n, err := res.RowsAffected()
	if err != nil {
		return dbError(err, "rows affected")
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), model.ErrNotFound)
	}
	return nil
}
