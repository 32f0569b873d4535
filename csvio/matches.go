package csvio

import (
	"slices"
	"strconv"
	"strings"

	"github.com/coach77777/straight-pool-league/model"
)

// MatchesHeader is the exact column order of the ledger export. Imports
// accept the same columns by position once the header passes a light check.
const MatchesHeader = "week,dateMmDd,aRoster,bRoster,aScore,bScore,status,note,countsForStandings"

// ParseMatches reads the ledger import/export format. The header only has to
// mention "week" and "countsForStandings" (case and space insensitive); a
// file without them yields no rows. Data rows need at least nine fields and
// integer week/roster values, otherwise the row is dropped.
func ParseMatches(text string) []model.Match {
	rows := readTable(text, false)
	if len(rows) == 0 {
		return nil
	}

	header := strings.ReplaceAll(strings.ToLower(strings.Join(rows[0], ",")), " ", "")
	if !strings.Contains(header, "week") || !strings.Contains(header, "countsforstandings") {
		return nil
	}

	out := make([]model.Match, 0, len(rows)-1)
	for _, p := range rows[1:] {
		if len(p) < 9 {
			continue
		}

		week, err := strconv.Atoi(p[0])
		if err != nil {
			continue
		}
		aRoster, err := strconv.Atoi(p[2])
		if err != nil {
			continue
		}
		bRoster, err := strconv.Atoi(p[3])
		if err != nil {
			continue
		}

		out = append(out, model.Match{
			Week:               week,
			DateMmDd:           p[1],
			ARoster:            aRoster,
			BRoster:            bRoster,
			AScore:             looseInt(p[4]),
			BScore:             looseInt(p[5]),
			Status:             p[6],
			Note:               p[7],
			CountsForStandings: looseBool(p[8]),
		})
	}
	return out
}

// WriteMatches renders the full ledger in the export column order, sorted by
// week then roster pair. Null scores become empty cells so the file
// round-trips through ParseMatches unchanged.
func WriteMatches(matches []model.Match) string {
	sorted := slices.Clone(matches)
	slices.SortFunc(sorted, func(a, b model.Match) int {
		if a.Week != b.Week {
			return a.Week - b.Week
		}
		if a.ARoster != b.ARoster {
			return a.ARoster - b.ARoster
		}
		return a.BRoster - b.BRoster
	})

	var sb strings.Builder
	sb.WriteString(MatchesHeader)
	sb.WriteByte('\n')

	for _, m := range sorted {
		writeRow(&sb, []string{
			strconv.Itoa(m.Week),
			m.DateMmDd,
			strconv.Itoa(m.ARoster),
			strconv.Itoa(m.BRoster),
			model.FormatScore(m.AScore),
			model.FormatScore(m.BScore),
			m.Status,
			m.Note,
			boolCell(m.CountsForStandings),
		})
	}
	return sb.String()
}
