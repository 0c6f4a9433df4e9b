package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const transactionColumns = `hash, type, tracker, block_number, block_hash, transaction_index, signer,
	fee_payer, fee, seq, network_id, pending, success, error_hint, timestamp, action`

func (q *queries) InsertTransaction(ctx context.Context, tx model.Transaction) (err error) {
	defer q.observe("insert_transaction", time.Now(), &err)

	row, err := newTransactionRow(tx)
	if err != nil {
		return err
	}
	res, err := sqlx.NamedExecContext(ctx, q.db, `
		INSERT INTO transactions (`+transactionColumns+`)
		VALUES (:hash, :type, :tracker, :block_number, :block_hash, :transaction_index, :signer,
			:fee_payer, :fee, :seq, :network_id, :pending, :success, :error_hint, :timestamp, :action)
		ON CONFLICT (hash) DO NOTHING`, row)
	if err != nil {
		return dbError(err, "insert transaction %s", tx.Hash)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return dbError(err, "insert transaction %s", tx.Hash)
	}
	if n == 0 {
		return fmt.Errorf("transaction %s: %w", tx.Hash, model.ErrAlreadyExists)
	}
	return nil
}

func (q *queries) Transaction(ctx context.Context, hash string) (_ *model.Transaction, err error) {
	defer q.observe("transaction", time.Now(), &err)

	var row transactionRow
	err = sqlx.GetContext(ctx, q.db, &row, `SELECT `+transactionColumns+` FROM transactions WHERE hash = $1`, hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dbError(err, "select transaction %s", hash)
	}
	tx, err := row.model()
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (q *queries) ConfirmPendingTransaction(ctx context.Context, tx model.Transaction) (err error) {
	defer q.observe("confirm_pending_transaction", time.Now(), &err)

	row, err := newTransactionRow(tx)
	if err != nil {
		return err
	}
	res, err := sqlx.NamedExecContext(ctx, q.db, `
		UPDATE transactions SET
			type = :type, tracker = :tracker, block_number = :block_number, block_hash = :block_hash,
			transaction_index = :transaction_index, signer = :signer, fee_payer = :fee_payer, fee = :fee,
			seq = :seq, network_id = :network_id, pending = :pending, success = :success,
			error_hint = :error_hint, timestamp = :timestamp, action = :action
		WHERE hash = :hash AND pending`, row)
	if err != nil {
		return dbError(err, "confirm transaction %s", tx.Hash)
	}
	if err = requireAffected(res, "pending transaction %s", tx.Hash); err != nil {
		return err
	}
	if _, err = q.db.ExecContext(ctx, `DELETE FROM address_logs WHERE transaction_hash = $1 AND pending`, tx.Hash); err != nil {
		return dbError(err, "delete pending address logs of %s", tx.Hash)
	}
	return nil
}

func (q *queries) LatestTransactionByTracker(ctx context.Context, tracker string) (_ *model.Transaction, err error) {
	defer q.observe("latest_transaction_by_tracker", time.Now(), &err)

	var row transactionRow
	err = sqlx.GetContext(ctx, q.db, &row, `
		SELECT `+transactionColumns+` FROM transactions
		WHERE tracker = $1 AND NOT pending AND success AND block_number IS NOT NULL
		ORDER BY block_number DESC, transaction_index DESC
		LIMIT 1`, tracker)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dbError(err, "select transaction by tracker %s", tracker)
	}
	tx, err := row.model()
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (q *queries) PendingTransactionHashes(ctx context.Context) (_ []string, err error) {
	defer q.observe("pending_transaction_hashes", time.Now(), &err)

	var hashes []string
	if err = sqlx.SelectContext(ctx, q.db, &hashes, `SELECT hash FROM transactions WHERE pending ORDER BY hash`); err != nil {
		return nil, dbError(err, "select pending transactions")
	}
	return hashes, nil
}

func (q *queries) DeletePendingTransactions(ctx context.Context, hashes []string) (err error) {
	defer q.observe("delete_pending_transactions", time.Now(), &err)

	if len(hashes) == 0 {
		return nil
	}
	if _, err = q.db.ExecContext(ctx, `
		DELETE FROM address_logs
		WHERE pending AND transaction_hash = ANY($1)`, pq.Array(hashes)); err != nil {
		return dbError(err, "delete pending address logs")
	}
	if _, err = q.db.ExecContext(ctx, `
		DELETE FROM transactions
		WHERE pending AND hash = ANY($1)`, pq.Array(hashes)); err != nil {
		return dbError(err, "delete %d pending transactions", len(hashes))
	}
	return nil
}

func (q *queries) InsertAddressLogs(ctx context.Context, logs []model.AddressLog) (err error) {
	defer q.observe("insert_address_logs", time.Now(), &err)

	if len(logs) == 0 {
		return nil
	}
	rows := make([]addressLogRow, 0, len(logs))
	for _, l := range logs {
		number, err := nullBlockNumber(l.BlockNumber)
		if err != nil {
			return fmt.Errorf("address log of %s: %w", l.TransactionHash, err)
		}
		rows = append(rows, addressLogRow{
			Address:          l.Address,
			TransactionHash:  l.TransactionHash,
			BlockNumber:      number,
			TransactionIndex: l.TransactionIndex,
			Role:             string(l.Role),
			Pending:          l.Pending,
		})
	}
	_, err = sqlx.NamedExecContext(ctx, q.db, `
		INSERT INTO address_logs (address, transaction_hash, block_number, transaction_index, role, pending)
		VALUES (:address, :transaction_hash, :block_number, :transaction_index, :role, :pending)
		ON CONFLICT (address, transaction_hash, role) DO NOTHING`, rows)
	if err != nil {
		return dbError(err, "insert %d address logs", len(logs))
	}
	return nil
}

// TouchedAddresses returns the platform addresses of the block: its author, confirmed
// address logs with a platform role and CCC change holders.
func (q *queries) TouchedAddresses(ctx context.Context, number uint64) (_ []string, err error) {
	defer q.observe("touched_addresses", time.Now(), &err)

	var rows []struct {
		Address string         `db:"address"`
		Role    sql.NullString `db:"role"`
	}
	err = sqlx.SelectContext(ctx, q.db, &rows, `
		SELECT author AS address, NULL::TEXT AS role FROM blocks WHERE number = $1 AND author <> ''
		UNION ALL
		SELECT address, role FROM address_logs WHERE block_number = $1 AND NOT pending
		UNION ALL
		SELECT address, NULL::TEXT FROM ccc_changes WHERE block_number = $1`, number)
	if err != nil {
		return nil, dbError(err, "select addresses touched by %d", number)
	}

	set := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		if r.Role.Valid && !model.AddressRole(r.Role.String).IsPlatform() {
			continue
		}
		set[r.Address] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for a := range set {
		out = append(out, a)
	}
	sort.Strings(out)
	return out, nil
}
