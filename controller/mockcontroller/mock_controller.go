package mockcontroller

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/coach77777/straight-pool-league/model"
	"github.com/coach77777/straight-pool-league/standings"
)

type C struct {
	mock.Mock
}

func (c *C) EnsureSeeded(ctx context.Context, r io.Reader) error {
	args := c.Called(ctx, r)
	return args.Error(0)
}

func (c *C) ImportMatches(ctx context.Context, r io.Reader) (int, error) {
	args := c.Called(ctx, r)
	return args.Int(0), args.Error(1)
}

func (c *C) ImportMatchesFromURL(ctx context.Context, fetchURL string) (int, error) {
	args := c.Called(ctx, fetchURL)
	return args.Int(0), args.Error(1)
}

func (c *C) ImportPlayers(ctx context.Context, r io.Reader) (int, error) {
	args := c.Called(ctx, r)
	return args.Int(0), args.Error(1)
}

func (c *C) ListMatches(ctx context.Context) ([]model.Match, error) {
	args := c.Called(ctx)

	var m []model.Match
	if args.Get(0) != nil {
		m = args.Get(0).([]model.Match)
	}
	return m, args.Error(1)
}

func (c *C) MatchesForPlayer(ctx context.Context, roster int) ([]model.Match, error) {
	args := c.Called(ctx, roster)

	var m []model.Match
	if args.Get(0) != nil {
		m = args.Get(0).([]model.Match)
	}
	return m, args.Error(1)
}

func (c *C) GetMatch(ctx context.Context, week, r1, r2 int) (*model.Match, error) {
	args := c.Called(ctx, week, r1, r2)

	var m *model.Match
	if args.Get(0) != nil {
		m = args.Get(0).(*model.Match)
	}
	return m, args.Error(1)
}

func (c *C) UpdateMatch(ctx context.Context, m *model.Match) error {
	args := c.Called(ctx, m)
	return args.Error(0)
}

func (c *C) ListPlayers(ctx context.Context) ([]model.Player, error) {
	args := c.Called(ctx)

	var p []model.Player
	if args.Get(0) != nil {
		p = args.Get(0).([]model.Player)
	}
	return p, args.Error(1)
}

func (c *C) GetPlayer(ctx context.Context, roster int) (*model.Player, error) {
	args := c.Called(ctx, roster)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (c *C) ActivePlayers(ctx context.Context) ([]model.Player, error) {
	args := c.Called(ctx)

	var p []model.Player
	if args.Get(0) != nil {
		p = args.Get(0).([]model.Player)
	}
	return p, args.Error(1)
}

func (c *C) Standings(ctx context.Context) ([]standings.Row, error) {
	args := c.Called(ctx)

	var rows []standings.Row
	if args.Get(0) != nil {
		rows = args.Get(0).([]standings.Row)
	}
	return rows, args.Error(1)
}

func (c *C) ExportMatchesCSV(ctx context.Context) ([]byte, error) {
	args := c.Called(ctx)

	var b []byte
	if args.Get(0) != nil {
		b = args.Get(0).([]byte)
	}
	return b, args.Error(1)
}

func (c *C) ExportWeekGridCSV(ctx context.Context) ([]byte, error) {
	args := c.Called(ctx)

	var b []byte
	if args.Get(0) != nil {
		b = args.Get(0).([]byte)
	}
	return b, args.Error(1)
}

func (c *C) RefreshRemoteCSVs(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) RunPeriodicRemoteRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}
