package controller

import (
	"context"

	"github.com/coach77777/straight-pool-league/standings"
)

// Standings recomputes the league table from scratch. Bye placeholders are
// filtered here; the aggregator itself takes whatever roster it is given.
func (c *controller) Standings(ctx context.Context) ([]standings.Row, error) {
	roster, err := c.ActivePlayers(ctx)
	if err != nil {
		return nil, err
	}

	matches, err := c.db.GetAllMatches(ctx)
	if err != nil {
		return nil, err
	}

	return standings.Compute(roster, matches), nil
}
