package csvio

import (
	"strconv"

	"github.com/coach77777/straight-pool-league/model"
)

var playerColumns = []column{
	{name: "roster", aliases: []string{"roster", "roster_num", "rosternum", "number", "id"}, required: true},
	{name: "name", aliases: []string{"name", "player", "player_name", "playername"}, required: true},
	{name: "phone", aliases: []string{"phone", "phone_number", "cell"}},
	{name: "email", aliases: []string{"email", "e-mail", "mail"}},
	{name: "isbye", aliases: []string{"isbye", "is_bye", "bye"}},
}

// ParsePlayers reads the roster format. Column names are matched against
// aliases case-insensitively; roster and name are required, the rest are
// optional. A row without an integer roster id is dropped.
func ParsePlayers(text string) []model.Player {
	rows := readTable(text, true)
	if len(rows) == 0 {
		return nil
	}

	idx, ok := resolveColumns(rows[0], playerColumns)
	if !ok {
		return nil
	}

	out := make([]model.Player, 0, len(rows)-1)
	for _, rec := range rows[1:] {
		roster, err := strconv.Atoi(field(rec, idx["roster"]))
		if err != nil {
			continue
		}

		out = append(out, model.Player{
			Roster: roster,
			Name:   field(rec, idx["name"]),
			Phone:  field(rec, idx["phone"]),
			Email:  field(rec, idx["email"]),
			Bye:    looseBool(field(rec, idx["isbye"])),
		})
	}
	return out
}
