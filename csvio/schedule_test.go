package csvio

import (
	"reflect"
	"testing"
)

func TestParseSchedule(t *testing.T) {
	tests := map[string]struct {
		csvData  string
		expected []ScheduleRow
	}{
		"canonical": {
			csvData: "week,date_mmdd,playerA_roster,playerB_roster,status\n1,09/08,11,24,scheduled\n",
			expected: []ScheduleRow{
				{Week: 1, DateLabel: "09/08", ARoster: 11, BRoster: 24, Status: "scheduled"},
			},
		},
		"alias columns no status": {
			csvData: "Week,Date,PlayerA,PlayerB\n2,09/15,5,9\n",
			expected: []ScheduleRow{
				{Week: 2, DateLabel: "09/15", ARoster: 5, BRoster: 9},
			},
		},
		"tab delimited": {
			csvData: "week\tdate\tplayerA\tplayerB\tstatus\n3\t09/22\t11\t5\tplayed\n",
			expected: []ScheduleRow{
				{Week: 3, DateLabel: "09/22", ARoster: 11, BRoster: 5, Status: "played"},
			},
		},
		"missing date column": {
			csvData:  "week,playerA,playerB\n1,11,24\n",
			expected: nil,
		},
		"bad week dropped": {
			csvData: "week,date,playerA,playerB\nn/a,09/08,11,24\n4,09/29,9,11\n",
			expected: []ScheduleRow{
				{Week: 4, DateLabel: "09/29", ARoster: 9, BRoster: 11},
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := ParseSchedule(tc.csvData)
			if len(got) == 0 && len(tc.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(tc.expected, got) {
				t.Errorf("schedule was not as expected - actual: %+v", got)
			}
		})
	}
}

func TestFindScheduledWeek(t *testing.T) {
	rows := []ScheduleRow{
		{Week: 1, ARoster: 11, BRoster: 24},
		{Week: 2, ARoster: 5, BRoster: 9},
	}

	r, ok := FindScheduledWeek(rows, 9, 5)
	if !ok || r.Week != 2 {
		t.Errorf("expected week 2 for reversed pair, got %v (found=%v)", r, ok)
	}

	if _, ok := FindScheduledWeek(rows, 11, 5); ok {
		t.Error("expected no schedule row for unpaired players")
	}
}
