package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/coach77777/straight-pool-league/model"
)

func (db *postgresDB) ListPlayers(ctx context.Context) ([]model.Player, error) {
	const query = `SELECT roster, name, phone, email, is_bye, updated
					FROM players ORDER BY roster ASC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying players: %w", err)
	}

	results := make([]model.Player, 0, 32)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *p)
	}

	return results, nil
}

func (db *postgresDB) GetPlayer(ctx context.Context, roster int) (*model.Player, error) {
	const query = `SELECT roster, name, phone, email, is_bye, updated
					FROM players WHERE roster=@roster`

	args := pgx.NamedArgs{
		"roster": roster,
	}
	row := db.pool.QueryRow(ctx, query, args)
	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("error scanning player %d: %w", roster, err)
	}
	return p, nil
}

func (db *postgresDB) UpsertPlayers(ctx context.Context, players []model.Player) error {
	const query = `INSERT INTO players (
		roster,
		name,
		phone,
		email,
		is_bye,
		updated
	) VALUES (
		@roster,
		@name,
		@phone,
		@email,
		@isBye,
		@updated
	) ON CONFLICT (roster) DO UPDATE SET
		name=@name,
		phone=@phone,
		email=@email,
		is_bye=@isBye,
		updated=@updated`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for i := range players {
		p := &players[i]
		args := pgx.NamedArgs{
			"roster": p.Roster,
			"name":   p.Name,
			"phone": sql.NullString{
				String: p.Phone,
				Valid:  p.Phone != "",
			},
			"email": sql.NullString{
				String: p.Email,
				Valid:  p.Email != "",
			},
			"isBye":   p.Bye,
			"updated": db.now(),
		}
		if _, err := tx.Exec(ctx, query, args); err != nil {
			return fmt.Errorf("error upserting player %d (%s): %w", p.Roster, p.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing player upsert: %w", err)
	}
	return nil
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var result model.Player
	var phone, email sql.NullString
	var updated pgtype.Timestamptz
	err := row.Scan(
		&result.Roster,
		&result.Name,
		&phone,
		&email,
		&result.Bye,
		&updated)

	if err != nil {
		return nil, err
	}

	result.Phone = valueOrEmpty(phone)
	result.Email = valueOrEmpty(email)
	result.Updated = updated.Time

	return &result, nil
}
