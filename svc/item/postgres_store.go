package item

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxConn is the subset of *pgxpool.Pool used by PostgresStore.
type PgxConn interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresStore reads items from the items table in ingestion order.
type PostgresStore struct {
	db PgxConn
}

func NewPostgresStore(db PgxConn) *PostgresStore {
	return &PostgresStore{db: db}
}

const (
	selectItems = `SELECT id, source, title, url, summary, published_at FROM items`

	queryAll       = selectItems + ` ORDER BY seq`
	queryBySources = selectItems + ` WHERE source = ANY($1) ORDER BY seq`

	insertItem = `INSERT INTO items (id, source, title, url, summary, published_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`
)

func (s *PostgresStore) All(ctx context.Context) ([]Item, error) {
	return s.query(ctx, queryAll)
}

func (s *PostgresStore) BySources(ctx context.Context, sources []string) ([]Item, error) {
	if len(sources) == 0 {
		return []Item{}, nil
	}
	return s.query(ctx, queryBySources, sources)
}

func (s *PostgresStore) query(ctx context.Context, sql string, args ...any) ([]Item, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Join(ErrStoreFailure, err)
	}

	items, err := pgx.CollectRows(rows, scanItem)
	if err != nil {
		return nil, errors.Join(ErrStoreFailure, err)
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

func scanItem(row pgx.CollectableRow) (Item, error) {
	var it Item
	err := row.Scan(&it.ID, &it.Source, &it.Title, &it.URL, &it.Summary, &it.PublishedAt)
	return it, err
}

// Insert writes items one statement at a time; existing ids are left untouched.
func (s *PostgresStore) Insert(ctx context.Context, items ...Item) error {
	for _, it := range items {
		if it.ID == "" || it.Source == "" {
			return ErrInvalidItem
		}
		if _, err := s.db.Exec(ctx, insertItem, it.ID, it.Source, it.Title, it.URL, it.Summary, it.PublishedAt); err != nil {
			return errors.Join(ErrStoreFailure, err)
		}
	}
	return nil
}
