package csvio

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/coach77777/straight-pool-league/model"
)

// WriteWeekGrid renders the transposed league sheet: two header rows (week
// labels, then date labels), followed by two rows per non-bye player: the
// opponents row and the scores row. Weeks are the distinct set present in
// the full match list. An opponent cell shows "$" for a played match whose
// note marks it dropped, the opponent's roster id otherwise, and is blank
// when the player has no match that week. A score cell is filled only for
// played matches with a recorded score.
func WriteWeekGrid(players []model.Player, matches []model.Match) string {
	rostered := make([]model.Player, 0, len(players))
	for _, p := range players {
		if !p.Bye {
			rostered = append(rostered, p)
		}
	}
	slices.SortFunc(rostered, func(a, b model.Player) int {
		return a.Roster - b.Roster
	})

	weeks := make([]int, 0, 16)
	for _, m := range matches {
		if !slices.Contains(weeks, m.Week) {
			weeks = append(weeks, m.Week)
		}
	}
	slices.Sort(weeks)

	// First non-blank date label wins for each week.
	dateByWeek := make(map[int]string, len(weeks))
	for _, m := range matches {
		if m.DateMmDd == "" {
			continue
		}
		if _, ok := dateByWeek[m.Week]; !ok {
			dateByWeek[m.Week] = m.DateMmDd
		}
	}

	matchFor := func(week, roster int) *model.Match {
		for i := range matches {
			m := &matches[i]
			if m.Week == week && (m.ARoster == roster || m.BRoster == roster) {
				return m
			}
		}
		return nil
	}

	var sb strings.Builder

	header := []string{"Roster", "Name", "Phone", "Email"}
	for _, wk := range weeks {
		header = append(header, fmt.Sprintf("Wk-%d", wk))
	}
	writeRow(&sb, header)

	dates := []string{"", "", "", ""}
	for _, wk := range weeks {
		dates = append(dates, dateByWeek[wk])
	}
	writeRow(&sb, dates)

	for _, p := range rostered {
		oppRow := []string{strconv.Itoa(p.Roster), p.Name, p.Phone, p.Email}
		scoreRow := []string{"", "", "", ""}

		for _, wk := range weeks {
			m := matchFor(wk, p.Roster)
			if m == nil {
				oppRow = append(oppRow, "")
				scoreRow = append(scoreRow, "")
				continue
			}

			if m.IsPlayed() && m.IsDropped() {
				oppRow = append(oppRow, "$")
			} else {
				oppRow = append(oppRow, strconv.Itoa(m.Opponent(p.Roster)))
			}

			if m.IsPlayed() {
				scoreRow = append(scoreRow, model.FormatScore(m.ScoreFor(p.Roster)))
			} else {
				scoreRow = append(scoreRow, "")
			}
		}

		writeRow(&sb, oppRow)
		writeRow(&sb, scoreRow)
	}

	return sb.String()
}
