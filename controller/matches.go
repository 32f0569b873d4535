package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/coach77777/straight-pool-league/csvio"
	"github.com/coach77777/straight-pool-league/db"
	"github.com/coach77777/straight-pool-league/model"
)

// seedFlag is the durable marker recording that the ledger has been
// populated. It is also set by explicit imports and edits so that a later
// seed call never overwrites real data.
const seedFlag = "matches_seeded_v1"

func (c *controller) EnsureSeeded(ctx context.Context, r io.Reader) error {
	_, err := c.db.GetFlag(ctx, seedFlag)
	if err == nil {
		return nil
	}
	if !errors.Is(err, db.ErrFlagNotFound) {
		return fmt.Errorf("error checking seed marker: %w", err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading seed data: %w", err)
	}

	rows := csvio.ParseMatches(string(data))
	if len(rows) == 0 {
		log.Printf("seed data contained no usable rows, skipping")
		return nil
	}

	if err := c.db.UpsertMatches(ctx, rows); err != nil {
		return fmt.Errorf("error seeding matches: %w", err)
	}
	if err := c.db.SetFlag(ctx, seedFlag, "true"); err != nil {
		return fmt.Errorf("error setting seed marker: %w", err)
	}

	log.Printf("seeded %d matches", len(rows))
	return nil
}

func (c *controller) ImportMatches(ctx context.Context, r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("error reading import data: %w", err)
	}

	rows := csvio.ParseMatches(string(data))
	if len(rows) == 0 {
		return 0, ErrNoRowsImported
	}

	if err := c.db.UpsertMatches(ctx, rows); err != nil {
		return 0, fmt.Errorf("error importing matches: %w", err)
	}
	if err := c.db.SetFlag(ctx, seedFlag, "true"); err != nil {
		return 0, fmt.Errorf("error setting seed marker: %w", err)
	}

	return len(rows), nil
}

func (c *controller) ImportMatchesFromURL(ctx context.Context, fetchURL string) (int, error) {
	text, err := c.remote.FetchText(ctx, fetchURL)
	if err != nil {
		return 0, fmt.Errorf("error downloading %s: %w", fetchURL, err)
	}

	rows := csvio.ParseMatches(text)
	if len(rows) == 0 {
		return 0, ErrNoRowsImported
	}

	if err := c.db.UpsertMatches(ctx, rows); err != nil {
		return 0, fmt.Errorf("error importing matches: %w", err)
	}
	if err := c.db.SetFlag(ctx, seedFlag, "true"); err != nil {
		return 0, fmt.Errorf("error setting seed marker: %w", err)
	}

	return len(rows), nil
}

func (c *controller) ListMatches(ctx context.Context) ([]model.Match, error) {
	return c.db.GetAllMatches(ctx)
}

func (c *controller) MatchesForPlayer(ctx context.Context, roster int) ([]model.Match, error) {
	return c.db.GetMatchesForPlayer(ctx, roster)
}

func (c *controller) GetMatch(ctx context.Context, week, r1, r2 int) (*model.Match, error) {
	m, err := c.db.FindFixture(ctx, week, r1, r2)
	if err != nil {
		if errors.Is(err, db.ErrMatchNotFound) {
			return nil, fmt.Errorf("match not found for week %d (%d vs %d): %w", week, r1, r2, err)
		}
		return nil, err
	}
	return m, nil
}

func (c *controller) UpdateMatch(ctx context.Context, m *model.Match) error {
	if err := c.db.UpdateMatch(ctx, m); err != nil {
		return err
	}
	return c.db.SetFlag(ctx, seedFlag, "true")
}

func (c *controller) RefreshRemoteCSVs(ctx context.Context) error {
	start := time.Now()
	log.Printf("remote csv refresh starting at %v", start.Format(time.DateTime))

	if err := c.remote.FetchAll(ctx, c.links); err != nil {
		return err
	}

	log.Printf("remote csv refresh finished, took %v", time.Since(start))
	return nil
}

func (c *controller) RunPeriodicRemoteRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()

			if err := c.RefreshRemoteCSVs(ctx); err != nil {
				log.Printf("%v", err)
			}
		}
	}
}
