package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const assetSchemeColumns = `asset_type, shard_id, supply, approver, registrar, allowed_script_hashes,
	metadata, transaction_hash, block_number`

func (q *queries) AssetScheme(ctx context.Context, assetType string) (_ *model.AssetScheme, err error) {
	defer q.observe("asset_scheme", time.Now(), &err)

	var row assetSchemeRow
	err = sqlx.GetContext(ctx, q.db, &row, `SELECT `+assetSchemeColumns+` FROM asset_schemes WHERE asset_type = $1`, assetType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dbError(err, "select asset scheme %s", assetType)
	}
	s := row.model()
	return &s, nil
}

func (q *queries) InsertAssetScheme(ctx context.Context, scheme model.AssetScheme) (err error) {
	defer q.observe("insert_asset_scheme", time.Now(), &err)

	_, err = sqlx.NamedExecContext(ctx, q.db, `
		INSERT INTO asset_schemes (`+assetSchemeColumns+`)
		VALUES (:asset_type, :shard_id, :supply, :approver, :registrar, :allowed_script_hashes,
			:metadata, :transaction_hash, :block_number)`, assetSchemeRow{
		AssetType:           scheme.AssetType,
		ShardID:             scheme.ShardID,
		Supply:              scheme.Supply,
		Approver:            scheme.Approver,
		Registrar:           scheme.Registrar,
		AllowedScriptHashes: pq.StringArray(nonNil(scheme.AllowedScriptHashes)),
		Metadata:            scheme.Metadata,
		TransactionHash:     scheme.TransactionHash,
		BlockNumber:         scheme.BlockNumber,
	})
	if err != nil {
		return dbError(err, "insert asset scheme %s", scheme.AssetType)
	}
	return nil
}

func (q *queries) IncreaseAssetSupply(ctx context.Context, assetType string, quantity decimal.Decimal) (err error) {
	defer q.observe("increase_asset_supply", time.Now(), &err)

	res, err := q.db.ExecContext(ctx, `UPDATE asset_schemes SET supply = supply + $2 WHERE asset_type = $1`, assetType, quantity)
	if err != nil {
		return dbError(err, "increase supply of %s", assetType)
	}
	if err = requireAffected(res, "asset scheme %s", assetType); err != nil {
		return fmt.Errorf("increase supply: %w", err)
	}
	return nil
}
