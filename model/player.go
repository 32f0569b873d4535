package model

import (
	"fmt"
	"time"
)

// Player is a league participant. Roster is the stable identity: it doubles
// as the display number and is referenced by matches, so it never changes
// once assigned. Bye marks a placeholder slot used to even out the schedule;
// bye entries are excluded from standings and pickers.
type Player struct {
	Roster  int
	Name    string
	Phone   string
	Email   string
	Bye     bool
	Updated time.Time
}

func (p Player) DisplayName() string {
	return fmt.Sprintf("#%d %s", p.Roster, p.Name)
}
