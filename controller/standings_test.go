package controller

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/coach77777/straight-pool-league/db/mockdb"
	"github.com/coach77777/straight-pool-league/model"
	"github.com/coach77777/straight-pool-league/standings"
)

func TestStandings(t *testing.T) {
	a98, b125 := 98, 125

	players := []model.Player{
		{Roster: 11, Name: "Mika Immonen"},
		{Roster: 24, Name: "Earl Strickland"},
		{Roster: 99, Name: "BYE", Bye: true},
	}
	matches := []model.Match{
		{Week: 1, ARoster: 24, BRoster: 11, AScore: &a98, BScore: &b125, Status: model.StatusPlayed, CountsForStandings: true},
	}

	mockDB := &mockdb.DB{}
	ctrl := newTestController(t, mockDB, &mockRemote{})

	mockDB.On("ListPlayers", mock.Anything).Return(players, nil)
	mockDB.On("GetAllMatches", mock.Anything).Return(matches, nil)

	got, err := ctrl.Standings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The bye placeholder must not appear in the table.
	want := []standings.Row{
		{Roster: 11, Name: "Mika Immonen", Wins: 1, Losses: 0, Played: 1},
		{Roster: 24, Name: "Earl Strickland", Wins: 0, Losses: 1, Played: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	mockDB.AssertExpectations(t)
}

func TestStandingsDBError(t *testing.T) {
	dbErr := errors.New("connection refused")

	mockDB := &mockdb.DB{}
	ctrl := newTestController(t, mockDB, &mockRemote{})

	mockDB.On("ListPlayers", mock.Anything).Return(nil, dbErr)

	if _, err := ctrl.Standings(context.Background()); !errors.Is(err, dbErr) {
		t.Errorf("unexpected err value, wanted: '%v', got: '%v'", dbErr, err)
	}
	mockDB.AssertNotCalled(t, "GetAllMatches", mock.Anything)
}
