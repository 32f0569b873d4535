package controller

import (
	"context"
	"fmt"
	"io"

	"github.com/coach77777/straight-pool-league/csvio"
	"github.com/coach77777/straight-pool-league/model"
)

func (c *controller) ImportPlayers(ctx context.Context, r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("error reading import data: %w", err)
	}

	rows := csvio.ParsePlayers(string(data))
	if len(rows) == 0 {
		return 0, ErrNoRowsImported
	}

	if err := c.db.UpsertPlayers(ctx, rows); err != nil {
		return 0, fmt.Errorf("error importing players: %w", err)
	}

	return len(rows), nil
}

func (c *controller) ListPlayers(ctx context.Context) ([]model.Player, error) {
	return c.db.ListPlayers(ctx)
}

func (c *controller) GetPlayer(ctx context.Context, roster int) (*model.Player, error) {
	return c.db.GetPlayer(ctx, roster)
}

func (c *controller) ActivePlayers(ctx context.Context) ([]model.Player, error) {
	players, err := c.db.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]model.Player, 0, len(players))
	for _, p := range players {
		if !p.Bye {
			active = append(active, p)
		}
	}
	return active, nil
}
