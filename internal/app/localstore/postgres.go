package localstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"ufresher/internal/app/db"
)

// Querier is the part of *pgxpool.Pool used by Postgres.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	getItemSQL    = `SELECT item_value FROM local_storage WHERE item_key = $1`
	setItemSQL    = `INSERT INTO local_storage (item_key, item_value, updated_at) VALUES ($1, $2, now()) ON CONFLICT (item_key) DO UPDATE SET item_value = EXCLUDED.item_value, updated_at = now()`
	removeItemSQL = `DELETE FROM local_storage WHERE item_key = $1`
)

// Postgres stores items in the local_storage table.
type Postgres struct {
	q Querier
}

// NewPostgres wraps q, typically a *pgxpool.Pool returned by db.NewPool.
func NewPostgres(q Querier) *Postgres {
	return &Postgres{q: q}
}

func (p *Postgres) GetItem(ctx context.Context, key string) ([]byte, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	var value []byte
	if err := p.q.QueryRow(ctx, getItemSQL, key).Scan(&value); err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get item %q: %w", key, err)
	}
	return value, nil
}

func (p *Postgres) SetItem(ctx context.Context, key string, value []byte) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	if _, err := p.q.Exec(ctx, setItemSQL, key, value); err != nil {
		return fmt.Errorf("set item %q: %w", key, err)
	}
	return nil
}

func (p *Postgres) RemoveItem(ctx context.Context, key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	if _, err := p.q.Exec(ctx, removeItemSQL, key); err != nil {
		return fmt.Errorf("remove item %q: %w", key, err)
	}
	return nil
}
