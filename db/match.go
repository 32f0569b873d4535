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

const matchColumns = `week, date_mmdd, a_roster, b_roster, a_score, b_score,
					status, note, counts_for_standings, updated`

func (db *postgresDB) GetAllMatches(ctx context.Context) ([]model.Match, error) {
	query := fmt.Sprintf(`SELECT %s FROM league_matches
					ORDER BY week ASC, a_roster ASC, b_roster ASC`, matchColumns)

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying matches: %w", err)
	}

	results := make([]model.Match, 0, 64)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *m)
	}

	return results, nil
}

func (db *postgresDB) GetMatchesForPlayer(ctx context.Context, roster int) ([]model.Match, error) {
	query := fmt.Sprintf(`SELECT %s FROM league_matches
					WHERE a_roster=@roster OR b_roster=@roster
					ORDER BY week ASC`, matchColumns)

	args := pgx.NamedArgs{
		"roster": roster,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error querying matches for player %d: %w", roster, err)
	}

	results := make([]model.Match, 0, 16)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *m)
	}

	return results, nil
}

func (db *postgresDB) FindFixture(ctx context.Context, week, r1, r2 int) (*model.Match, error) {
	query := fmt.Sprintf(`SELECT %s FROM league_matches
					WHERE week=@week AND (
						(a_roster=@r1 AND b_roster=@r2) OR (a_roster=@r2 AND b_roster=@r1)
					)
					LIMIT 1`, matchColumns)

	args := pgx.NamedArgs{
		"week": week,
		"r1":   r1,
		"r2":   r2,
	}
	row := db.pool.QueryRow(ctx, query, args)
	m, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("error scanning fixture week %d (%d vs %d): %w", week, r1, r2, err)
	}
	return m, nil
}

func (db *postgresDB) UpsertMatches(ctx context.Context, matches []model.Match) error {
	const query = `INSERT INTO league_matches (
		week,
		date_mmdd,
		a_roster,
		b_roster,
		a_score,
		b_score,
		status,
		note,
		counts_for_standings,
		updated
	) VALUES (
		@week,
		@dateMmDd,
		@aRoster,
		@bRoster,
		@aScore,
		@bScore,
		@status,
		@note,
		@countsForStandings,
		@updated
	) ON CONFLICT (week, a_roster, b_roster) DO UPDATE SET
		date_mmdd=@dateMmDd,
		a_score=@aScore,
		b_score=@bScore,
		status=@status,
		note=@note,
		counts_for_standings=@countsForStandings,
		updated=@updated`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for i := range matches {
		args := namedArgsForMatch(&matches[i], db.now())
		if _, err := tx.Exec(ctx, query, args); err != nil {
			return fmt.Errorf("error upserting match %s: %w", matches[i].String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing match upsert: %w", err)
	}
	return nil
}

func (db *postgresDB) UpdateMatch(ctx context.Context, m *model.Match) error {
	if m == nil {
		return errors.New("UpdateMatch - match is nil")
	}
	const query = `UPDATE league_matches
		SET date_mmdd=@dateMmDd,
			a_score=@aScore,
			b_score=@bScore,
			status=@status,
			note=@note,
			counts_for_standings=@countsForStandings,
			updated=@updated
		WHERE week=@week AND a_roster=@aRoster AND b_roster=@bRoster`

	args := namedArgsForMatch(m, db.now())
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error updating match %s: %w", m.String(), err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMatchNotFound
	}
	return nil
}

func scanMatch(row pgx.Row) (*model.Match, error) {
	var result model.Match
	var dateMmDd, note sql.NullString
	var aScore, bScore pgtype.Int4
	var updated pgtype.Timestamptz
	err := row.Scan(
		&result.Week,
		&dateMmDd,
		&result.ARoster,
		&result.BRoster,
		&aScore,
		&bScore,
		&result.Status,
		&note,
		&result.CountsForStandings,
		&updated)

	if err != nil {
		return nil, err
	}

	result.DateMmDd = valueOrEmpty(dateMmDd)
	result.Note = valueOrEmpty(note)
	result.AScore = intOrNil(aScore)
	result.BScore = intOrNil(bScore)
	result.Updated = updated.Time

	return &result, nil
}

func namedArgsForMatch(m *model.Match, updated pgtype.Timestamptz) pgx.NamedArgs {
	return pgx.NamedArgs{
		"week": m.Week,
		"dateMmDd": sql.NullString{
			String: m.DateMmDd,
			Valid:  m.DateMmDd != "",
		},
		"aRoster": m.ARoster,
		"bRoster": m.BRoster,
		"aScore":  int4OrNull(m.AScore),
		"bScore":  int4OrNull(m.BScore),
		"status":  m.Status,
		"note": sql.NullString{
			String: m.Note,
			Valid:  m.Note != "",
		},
		"countsForStandings": m.CountsForStandings,
		"updated":            updated,
	}
}

func valueOrEmpty(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}

func intOrNil(v pgtype.Int4) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int32)
	return &i
}

func int4OrNull(v *int) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{
		Int32: int32(*v),
		Valid: true,
	}
}
