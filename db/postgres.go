package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrMatchNotFound  error = errors.New("match not found")
	ErrPlayerNotFound error = errors.New("player not found")
	ErrFlagNotFound   error = errors.New("flag not found")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresDB) GetFlag(ctx context.Context, name string) (string, error) {
	const query = `SELECT value FROM app_flags WHERE name=@name`

	args := pgx.NamedArgs{
		"name": name,
	}
	var value string
	err := db.pool.QueryRow(ctx, query, args).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrFlagNotFound
		}
		return "", fmt.Errorf("error reading flag %s: %w", name, err)
	}
	return value, nil
}

func (db *postgresDB) SetFlag(ctx context.Context, name, value string) error {
	const query = `INSERT INTO app_flags (name, value, updated)
		VALUES (@name, @value, @updated)
		ON CONFLICT (name) DO UPDATE SET value=@value, updated=@updated`

	args := pgx.NamedArgs{
		"name":    name,
		"value":   value,
		"updated": db.now(),
	}
	_, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error setting flag %s: %w", name, err)
	}
	return nil
}

func (db *postgresDB) now() pgtype.Timestamptz {
	return pgtype.Timestamptz{
		Time:             db.clock.Now().UTC(),
		InfinityModifier: pgtype.Finite,
		Valid:            true,
	}
}
