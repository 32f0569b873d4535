package mockdb

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/coach77777/straight-pool-league/model"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetAllMatches(ctx context.Context) ([]model.Match, error) {
	args := db.Called(ctx)

	var m []model.Match
	if args.Get(0) != nil {
		m = args.Get(0).([]model.Match)
	}
	return m, args.Error(1)
}

func (db *DB) GetMatchesForPlayer(ctx context.Context, roster int) ([]model.Match, error) {
	args := db.Called(ctx, roster)

	var m []model.Match
	if args.Get(0) != nil {
		m = args.Get(0).([]model.Match)
	}
	return m, args.Error(1)
}

func (db *DB) FindFixture(ctx context.Context, week, r1, r2 int) (*model.Match, error) {
	args := db.Called(ctx, week, r1, r2)

	var m *model.Match
	if args.Get(0) != nil {
		m = args.Get(0).(*model.Match)
	}
	return m, args.Error(1)
}

func (db *DB) UpsertMatches(ctx context.Context, rows []model.Match) error {
	args := db.Called(ctx, rows)
	return args.Error(0)
}

func (db *DB) UpdateMatch(ctx context.Context, m *model.Match) error {
	args := db.Called(ctx, m)
	return args.Error(0)
}

func (db *DB) ListPlayers(ctx context.Context) ([]model.Player, error) {
	args := db.Called(ctx)

	var p []model.Player
	if args.Get(0) != nil {
		p = args.Get(0).([]model.Player)
	}
	return p, args.Error(1)
}

func (db *DB) GetPlayer(ctx context.Context, roster int) (*model.Player, error) {
	args := db.Called(ctx, roster)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (db *DB) UpsertPlayers(ctx context.Context, players []model.Player) error {
	args := db.Called(ctx, players)
	return args.Error(0)
}

func (db *DB) GetFlag(ctx context.Context, name string) (string, error) {
	args := db.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (db *DB) SetFlag(ctx context.Context, name, value string) error {
	args := db.Called(ctx, name, value)
	return args.Error(0)
}
