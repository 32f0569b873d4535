package csvio

import "strconv"

// ScheduleRow is one line of the read-only match schedule reference file.
// Unlike the ledger it carries no scores; the setup flow uses it to find
// which week a given pairing belongs to.
type ScheduleRow struct {
	Week      int
	DateLabel string
	ARoster   int
	BRoster   int
	Status    string
}

var scheduleColumns = []column{
	{name: "week", aliases: []string{"week"}, required: true},
	{name: "date", aliases: []string{"date_mmdd", "date", "datelabel"}, required: true},
	{name: "a", aliases: []string{"playerA_roster", "playerA", "aRoster"}, required: true},
	{name: "b", aliases: []string{"playerB_roster", "playerB", "bRoster"}, required: true},
	{name: "status", aliases: []string{"status"}},
}

// ParseSchedule reads the schedule reference format. Rows missing an integer
// week or roster id are dropped.
func ParseSchedule(text string) []ScheduleRow {
	rows := readTable(text, true)
	if len(rows) == 0 {
		return nil
	}

	idx, ok := resolveColumns(rows[0], scheduleColumns)
	if !ok {
		return nil
	}

	out := make([]ScheduleRow, 0, len(rows)-1)
	for _, rec := range rows[1:] {
		week, err := strconv.Atoi(field(rec, idx["week"]))
		if err != nil {
			continue
		}
		a, err := strconv.Atoi(field(rec, idx["a"]))
		if err != nil {
			continue
		}
		b, err := strconv.Atoi(field(rec, idx["b"]))
		if err != nil {
			continue
		}

		out = append(out, ScheduleRow{
			Week:      week,
			DateLabel: field(rec, idx["date"]),
			ARoster:   a,
			BRoster:   b,
			Status:    field(rec, idx["status"]),
		})
	}
	return out
}

// FindScheduledWeek returns the first schedule row pairing the two roster
// ids, in either order.
func FindScheduledWeek(rows []ScheduleRow, r1, r2 int) (ScheduleRow, bool) {
	for _, r := range rows {
		if (r.ARoster == r1 && r.BRoster == r2) || (r.ARoster == r2 && r.BRoster == r1) {
			return r, true
		}
	}
	return ScheduleRow{}, false
}
