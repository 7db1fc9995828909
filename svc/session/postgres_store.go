package session

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/sourcefeed/pkg/pg"
)

// PgxConn is the subset of *pgxpool.Pool used by PostgresStore.
type PgxConn interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresStore keeps sessions in the sessions table.
type PostgresStore struct {
	db PgxConn
}

func NewPostgresStore(db PgxConn) *PostgresStore {
	return &PostgresStore{db: db}
}

const (
	insertSession = `INSERT INTO sessions (identifier, sources, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (identifier) DO NOTHING`

	selectSession = `SELECT identifier, sources, created_at, updated_at
		FROM sessions WHERE identifier = $1`

	updateSession = `UPDATE sessions SET sources = $2, updated_at = $3 WHERE identifier = $1`
)

func (s *PostgresStore) Create(ctx context.Context, session *Session) error {
	if session == nil || session.Identifier == "" {
		return ErrInvalidSession
	}

	c := session.clone()
	tag, err := s.db.Exec(ctx, insertSession, c.Identifier, c.Sources, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return ErrSessionExists
		}
		return errors.Join(ErrStoreFailure, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionExists
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, identifier string) (*Session, error) {
	var out Session
	err := s.db.QueryRow(ctx, selectSession, identifier).
		Scan(&out.Identifier, &out.Sources, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, errors.Join(ErrStoreFailure, err)
	}
	return out.clone(), nil
}

func (s *PostgresStore) Update(ctx context.Context, session *Session) error {
	if session == nil || session.Identifier == "" {
		return ErrInvalidSession
	}

	c := session.clone()
	tag, err := s.db.Exec(ctx, updateSession, c.Identifier, c.Sources, c.UpdatedAt)
	if err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}
