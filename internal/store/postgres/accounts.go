package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

func (q *queries) Account(ctx context.Context, address string) (_ *model.Account, err error) {
	defer q.observe("account", time.Now(), &err)

	var row accountRow
	err = sqlx.GetContext(ctx, q.db, &row, `
		SELECT address, balance, seq, block_number FROM accounts WHERE address = $1`, address)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dbError(err, "select account %s", address)
	}
	return &model.Account{
		Address:     row.Address,
		Balance:     row.Balance,
		Seq:         row.Seq,
		BlockNumber: row.BlockNumber,
	}, nil
}

func (q *queries) UpsertAccounts(ctx context.Context, accounts []model.Account) (err error) {
	defer q.observe("upsert_accounts", time.Now(), &err)

	if len(accounts) == 0 {
		return nil
	}
	rows := make([]accountRow, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, accountRow{
			Address:     a.Address,
			Balance:     a.Balance,
			Seq:         a.Seq,
			BlockNumber: a.BlockNumber,
		})
	}
	_, err = sqlx.NamedExecContext(ctx, q.db, `
		INSERT INTO accounts (address, balance, seq, block_number)
		VALUES (:address, :balance, :seq, :block_number)
		ON CONFLICT (address) DO UPDATE SET
			balance = EXCLUDED.balance, seq = EXCLUDED.seq, block_number = EXCLUDED.block_number`, rows)
	if err != nil {
		return dbError(err, "upsert %d accounts", len(accounts))
	}
	return nil
}

func (q *queries) DeleteAccounts(ctx context.Context, addresses []string) (err error) {
	defer q.observe("delete_accounts", time.Now(), &err)

	if len(addresses) == 0 {
		return nil
	}
	if _, err = q.db.ExecContext(ctx, `DELETE FROM accounts WHERE address = ANY($1)`, pq.Array(addresses)); err != nil {
		return dbError(err, "delete %d accounts", len(addresses))
	}
	return nil
}

func (q *queries) InsertCCCChanges(ctx context.Context, changes []model.CCCChange) (err error) {
	defer q.observe("insert_ccc_changes", time.Now(), &err)

	if len(changes) == 0 {
		return nil
	}
	rows := make([]cccChangeRow, 0, len(changes))
	for _, c := range changes {
		rows = append(rows, cccChangeRow{
			Address:         c.Address,
			Change:          c.Change,
			BlockNumber:     c.BlockNumber,
			Reason:          string(c.Reason),
			TransactionHash: nullString(c.TransactionHash),
		})
	}
	_, err = sqlx.NamedExecContext(ctx, q.db, `
		INSERT INTO ccc_changes (address, change, block_number, reason, transaction_hash)
		VALUES (:address, :change, :block_number, :reason, :transaction_hash)`, rows)
	if err != nil {
		return dbError(err, "insert %d ccc changes", len(changes))
	}
	return nil
}

// CCCChanges lists the changes of address, newest first. limit <= 0 means no limit.
func (q *queries) CCCChanges(ctx context.Context, address string, limit int) (_ []model.CCCChange, err error) {
	defer q.observe("ccc_changes", time.Now(), &err)

	var rows []cccChangeRow
	err = sqlx.SelectContext(ctx, q.db, &rows, `
		SELECT address, change, block_number, reason, transaction_hash FROM ccc_changes
		WHERE address = $1
		ORDER BY id DESC
		LIMIT NULLIF(GREATEST($2::INTEGER, 0), 0)`, address, limit)
	if err != nil {
		return nil, dbError(err, "select ccc changes of %s", address)
	}
	out := make([]model.CCCChange, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.CCCChange{
			Address:         r.Address,
			Change:          r.Change,
			BlockNumber:     r.BlockNumber,
			Reason:          model.Reason(r.Reason),
			TransactionHash: r.TransactionHash.String,
		})
	}
	return out, nil
}
