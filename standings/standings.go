// Package standings computes the league table from the match ledger. The
// computation is a pure function of its inputs and is recomputed on demand,
// never stored.
package standings

import (
	"slices"

	"github.com/coach77777/straight-pool-league/model"
)

type Row struct {
	Roster int
	Name   string
	Wins   int
	Losses int
	Played int
}

type acc struct {
	w, l, p int
}

// Compute aggregates win/loss/played counts for every player in roster.
// A match contributes only when its status is "played" (case-insensitive),
// it is flagged as counting for standings, and both scores are recorded.
// Ties count as played for both sides with no win or loss. Matches involving
// roster ids not present in the roster list are tallied but dropped from the
// output, which is driven by the roster. The caller filters bye entries
// before calling.
//
// Output order: wins descending, then losses ascending, then roster id.
func Compute(roster []model.Player, matches []model.Match) []Row {
	tallies := make(map[int]*acc)
	get := func(id int) *acc {
		a, ok := tallies[id]
		if !ok {
			a = &acc{}
			tallies[id] = a
		}
		return a
	}

	for _, m := range matches {
		if !m.IsPlayed() || !m.CountsForStandings {
			continue
		}
		// Missing scores make the match non-countable even when it is
		// marked played and counted.
		if m.AScore == nil || m.BScore == nil {
			continue
		}

		a := get(m.ARoster)
		b := get(m.BRoster)

		a.p++
		b.p++

		switch {
		case *m.AScore > *m.BScore:
			a.w++
			b.l++
		case *m.BScore > *m.AScore:
			b.w++
			a.l++
		}
	}

	rows := make([]Row, 0, len(roster))
	for _, p := range roster {
		a := tallies[p.Roster]
		if a == nil {
			a = &acc{}
		}
		rows = append(rows, Row{
			Roster: p.Roster,
			Name:   p.Name,
			Wins:   a.w,
			Losses: a.l,
			Played: a.p,
		})
	}

	slices.SortFunc(rows, func(a, b Row) int {
		if a.Wins != b.Wins {
			return b.Wins - a.Wins
		}
		if a.Losses != b.Losses {
			return a.Losses - b.Losses
		}
		return a.Roster - b.Roster
	})

	return rows
}
