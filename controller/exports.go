package controller

import (
	"context"

	"github.com/coach77777/straight-pool-league/csvio"
)

func (c *controller) ExportMatchesCSV(ctx context.Context) ([]byte, error) {
	matches, err := c.db.GetAllMatches(ctx)
	if err != nil {
		return nil, err
	}
	return []byte(csvio.WriteMatches(matches)), nil
}

func (c *controller) ExportWeekGridCSV(ctx context.Context) ([]byte, error) {
	players, err := c.db.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := c.db.GetAllMatches(ctx)
	if err != nil {
		return nil, err
	}
	return []byte(csvio.WriteWeekGrid(players, matches)), nil
}
