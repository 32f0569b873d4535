package controller

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/itbasis/go-clock"

	"github.com/coach77777/straight-pool-league/db"
	"github.com/coach77777/straight-pool-league/model"
	"github.com/coach77777/straight-pool-league/remotecsv"
	"github.com/coach77777/straight-pool-league/standings"
)

// ErrNoRowsImported is returned when an import parses to zero rows, usually
// because the header is missing or the format is wrong. Nothing is written
// in that case.
var ErrNoRowsImported = errors.New("no rows imported (check header/format)")

// C encapsulates business logic without worrying about any web layers
type C interface {
	// Seeds the ledger from the bundled dataset exactly once across the
	// application's lifetime. The marker is durable, so restarts and
	// repeated calls are no-ops.
	EnsureSeeded(ctx context.Context, r io.Reader) error

	// Bulk CSV imports. Rows replace existing ledger entries with the same
	// (week, aRoster, bRoster) key. Returns the number of rows imported.
	ImportMatches(ctx context.Context, r io.Reader) (int, error)
	ImportMatchesFromURL(ctx context.Context, fetchURL string) (int, error)
	ImportPlayers(ctx context.Context, r io.Reader) (int, error)

	ListMatches(ctx context.Context) ([]model.Match, error)
	MatchesForPlayer(ctx context.Context, roster int) ([]model.Match, error)
	// Fixture lookup by week and unordered roster pair.
	GetMatch(ctx context.Context, week, r1, r2 int) (*model.Match, error)
	// Full replace of score/status/note/counted fields. The caller is
	// expected to have loaded the row first, so the key orientation matches
	// the stored row.
	UpdateMatch(ctx context.Context, m *model.Match) error

	ListPlayers(ctx context.Context) ([]model.Player, error)
	// ListPlayers without bye placeholders, for pickers and standings.
	ActivePlayers(ctx context.Context) ([]model.Player, error)
	GetPlayer(ctx context.Context, roster int) (*model.Player, error)

	// The league table, recomputed from the ledger on every call.
	Standings(ctx context.Context) ([]standings.Row, error)

	ExportMatchesCSV(ctx context.Context) ([]byte, error)
	ExportWeekGridCSV(ctx context.Context) ([]byte, error)

	// Re-downloads the league's published CSV files into the local data dir.
	RefreshRemoteCSVs(ctx context.Context) error
	RunPeriodicRemoteRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock  clock.Clock
	db     db.DB
	remote remotecsv.Client
	links  map[string]string
}

func New(clock clock.Clock, db db.DB, remote remotecsv.Client) (C, error) {
	c := &controller{
		clock:  clock,
		db:     db,
		remote: remote,
		links:  remotecsv.DefaultLinks,
	}
	return c, nil
}
