package db

import (
	"context"

	"github.com/coach77777/straight-pool-league/model"
)

type DB interface {
	// The match ledger. Display order is week, then the two roster ids.
	GetAllMatches(ctx context.Context) ([]model.Match, error)
	// All matches a player appears in, on either side, ordered by week.
	GetMatchesForPlayer(ctx context.Context, roster int) ([]model.Match, error)
	// Fixture lookup by week and unordered roster pair. The same fixture may
	// be stored as (r1,r2) or (r2,r1) depending on its import source, so
	// both orderings are probed. Returns ErrMatchNotFound when neither
	// exists.
	FindFixture(ctx context.Context, week, r1, r2 int) (*model.Match, error)
	// Bulk insert-or-replace keyed by (week, aRoster, bRoster). A row with
	// an existing key fully replaces it.
	UpsertMatches(ctx context.Context, rows []model.Match) error
	// Single-row full replace. Returns ErrMatchNotFound if no row with that
	// exact key exists; callers load the row first via FindFixture.
	UpdateMatch(ctx context.Context, m *model.Match) error

	ListPlayers(ctx context.Context) ([]model.Player, error)
	GetPlayer(ctx context.Context, roster int) (*model.Player, error)
	UpsertPlayers(ctx context.Context, players []model.Player) error

	// Durable key-value flags, used for the one-time seed markers.
	GetFlag(ctx context.Context, name string) (string, error)
	SetFlag(ctx context.Context, name, value string) error
}
