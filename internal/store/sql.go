package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/adatasks/internal/dbx"
)

const table = "kv_store"

// SQLRepository keeps pairs in the kv_store table created by the embedded
// migrations.
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	q := r.dialect.Rebind(`SELECT value FROM ` + table + ` WHERE name = ?`)
	err := r.db.QueryRowContext(ctx, q, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLRepository) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := r.db.ExecContext(ctx, r.dialect.Upsert(table, "name", "value"), key, value)
	if err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM `+table+` WHERE name = ?`), key)
	if err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM `+table)
	if err != nil {
		return fmt.Errorf("failed to clear kv: %w", err)
	}
	return nil
}

func (r *SQLRepository) List(ctx context.Context) (map[string][]byte, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, value FROM `+table)
	if err != nil {
		return nil, fmt.Errorf("failed to list kv: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan kv row: %w", err)
		}
		result[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate kv rows: %w", err)
	}

	return result, nil
}

// Apply writes sets and deletes in one transaction when the repository owns
// the *sql.DB; inside an outer transaction it just runs the statements.
func (r *SQLRepository) Apply(ctx context.Context, sets map[string][]byte, deletes []string) error {
	db, ok := r.db.(*sql.DB)
	if !ok {
		return r.apply(ctx, sets, deletes)
	}
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return NewSQLRepository(tx, r.dialect).apply(ctx, sets, deletes)
	})
}

func (r *SQLRepository) apply(ctx context.Context, sets map[string][]byte, deletes []string) error {
	for _, k := range deletes {
		if err := r.Delete(ctx, k); err != nil {
			return err
		}
	}
	for k, v := range sets {
		if err := r.Set(ctx, k, v); err != nil {
			return err
		}
	}
	return nil
}
