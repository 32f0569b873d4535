package model

import (
	"fmt"
	"strings"
	"time"
)

// The statuses the league actually uses. Status is free text everywhere else;
// anything unrecognized is kept as-is and only uppercased for display.
const (
	StatusPlayed    = "played"
	StatusScheduled = "scheduled"
	StatusRefund    = "refund"
)

// Match is one fixture in the league ledger: two players in a given week,
// with scores once the match has been played. The composite key is
// (Week, ARoster, BRoster). The A/B labels are positional only. The same
// fixture may be stored with either ordering depending on where the row was
// imported from, so lookups probe both.
type Match struct {
	Week               int
	DateMmDd           string
	ARoster            int
	BRoster            int
	AScore             *int
	BScore             *int
	Status             string
	Note               string
	CountsForStandings bool
	Updated            time.Time
}

func (m Match) IsPlayed() bool {
	return strings.EqualFold(m.Status, StatusPlayed)
}

// IsDropped reports whether the note marks an administratively voided or
// forfeited participation. Those render as "$" in the week-grid export.
func (m Match) IsDropped() bool {
	n := strings.ToLower(m.Note)
	return strings.Contains(n, "$") || strings.Contains(n, "dropped")
}

func (m Match) DisplayStatus() string {
	if m.Status == "" {
		return strings.ToUpper(StatusScheduled)
	}
	return strings.ToUpper(m.Status)
}

// Opponent returns the other participant's roster id. The given roster is
// assumed to be one of the two participants.
func (m Match) Opponent(roster int) int {
	if m.ARoster == roster {
		return m.BRoster
	}
	return m.ARoster
}

// ScoreFor returns the score belonging to the given roster id, or nil if it
// has not been recorded.
func (m Match) ScoreFor(roster int) *int {
	if m.ARoster == roster {
		return m.AScore
	}
	return m.BScore
}

func (m Match) String() string {
	return fmt.Sprintf("week %d: %d vs %d (%s)", m.Week, m.ARoster, m.BRoster, m.Status)
}

func FormatScore(s *int) string {
	if s == nil {
		return ""
	}
	return fmt.Sprintf("%d", *s)
}
