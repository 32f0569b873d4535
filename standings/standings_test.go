package standings

import (
	"reflect"
	"testing"

	"github.com/coach77777/straight-pool-league/model"
)

func intp(v int) *int {
	return &v
}

func TestCompute(t *testing.T) {
	roster := []model.Player{
		{Roster: 1, Name: "A"},
		{Roster: 2, Name: "B"},
		{Roster: 3, Name: "C"},
	}
	matches := []model.Match{
		{Week: 1, ARoster: 1, BRoster: 2, AScore: intp(100), BScore: intp(80), Status: "played", CountsForStandings: true},
		{Week: 2, ARoster: 1, BRoster: 3, AScore: intp(50), BScore: intp(50), Status: "played", CountsForStandings: true},
		{Week: 3, ARoster: 2, BRoster: 3, AScore: intp(90), BScore: intp(60), Status: "scheduled", CountsForStandings: true},
	}

	expected := []Row{
		{Roster: 1, Name: "A", Wins: 1, Losses: 0, Played: 2},
		{Roster: 3, Name: "C", Wins: 0, Losses: 0, Played: 1},
		{Roster: 2, Name: "B", Wins: 0, Losses: 1, Played: 1},
	}

	got := Compute(roster, matches)
	if !reflect.DeepEqual(expected, got) {
		t.Errorf("standings were not as expected - actual: %v", got)
	}
}

func TestComputeTieCountsAsPlayedOnly(t *testing.T) {
	roster := []model.Player{
		{Roster: 4, Name: "Dee"},
		{Roster: 7, Name: "Gus"},
	}
	matches := []model.Match{
		{Week: 1, ARoster: 4, BRoster: 7, AScore: intp(75), BScore: intp(75), Status: "Played", CountsForStandings: true},
	}

	for _, row := range Compute(roster, matches) {
		if row.Played != 1 {
			t.Errorf("player %d - expected played=1, got %d", row.Roster, row.Played)
		}
		if row.Wins != 0 || row.Losses != 0 {
			t.Errorf("player %d - tie should leave W/L at zero, got W%d L%d", row.Roster, row.Wins, row.Losses)
		}
	}
}

func TestComputeSkipsNonCountable(t *testing.T) {
	roster := []model.Player{
		{Roster: 1, Name: "A"},
		{Roster: 2, Name: "B"},
	}

	tests := map[string]model.Match{
		"missing a score":  {Week: 1, ARoster: 1, BRoster: 2, BScore: intp(80), Status: "played", CountsForStandings: true},
		"missing b score":  {Week: 1, ARoster: 1, BRoster: 2, AScore: intp(80), Status: "played", CountsForStandings: true},
		"not counted":      {Week: 1, ARoster: 1, BRoster: 2, AScore: intp(80), BScore: intp(70), Status: "played", CountsForStandings: false},
		"not played":       {Week: 1, ARoster: 1, BRoster: 2, AScore: intp(80), BScore: intp(70), Status: "refund", CountsForStandings: true},
		"freeform status":  {Week: 1, ARoster: 1, BRoster: 2, AScore: intp(80), BScore: intp(70), Status: "forfeit", CountsForStandings: true},
	}

	for name, m := range tests {
		t.Run(name, func(t *testing.T) {
			for _, row := range Compute(roster, []model.Match{m}) {
				if row.Wins != 0 || row.Losses != 0 || row.Played != 0 {
					t.Errorf("player %d - expected zero tallies, got %+v", row.Roster, row)
				}
			}
		})
	}
}

func TestComputeUnknownPlayersDropped(t *testing.T) {
	roster := []model.Player{
		{Roster: 1, Name: "A"},
	}
	// Roster 99 is not in the roster list; its tally is accumulated but the
	// output only has rows for roster entries.
	matches := []model.Match{
		{Week: 1, ARoster: 1, BRoster: 99, AScore: intp(100), BScore: intp(90), Status: "played", CountsForStandings: true},
	}

	got := Compute(roster, matches)
	expected := []Row{
		{Roster: 1, Name: "A", Wins: 1, Losses: 0, Played: 1},
	}
	if !reflect.DeepEqual(expected, got) {
		t.Errorf("standings were not as expected - actual: %v", got)
	}
}

func TestComputeEmptyLedger(t *testing.T) {
	roster := []model.Player{
		{Roster: 2, Name: "B"},
		{Roster: 1, Name: "A"},
	}

	got := Compute(roster, nil)
	expected := []Row{
		{Roster: 1, Name: "A"},
		{Roster: 2, Name: "B"},
	}
	if !reflect.DeepEqual(expected, got) {
		t.Errorf("expected a zeroed row per player sorted by roster - actual: %v", got)
	}
}
