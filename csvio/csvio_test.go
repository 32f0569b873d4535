package csvio

import "testing"

func TestLooseBool(t *testing.T) {
	trues := []string{"TRUE", "true", "t", "1", "yes", "Y", " yes "}
	for _, s := range trues {
		if !looseBool(s) {
			t.Errorf("looseBool(%q) - expected true", s)
		}
	}

	falses := []string{"false", "", "no", "2", "0", "maybe"}
	for _, s := range falses {
		if looseBool(s) {
			t.Errorf("looseBool(%q) - expected false", s)
		}
	}
}

func TestLooseInt(t *testing.T) {
	tests := map[string]struct {
		in       string
		expected *int
	}{
		"plain":           {in: "80", expected: intp(80)},
		"whitespace":      {in: " 80 ", expected: intp(80)},
		"decimal":         {in: "80.0", expected: intp(80)},
		"truncates":       {in: "80.9", expected: intp(80)},
		"negative":        {in: "-3.7", expected: intp(-3)},
		"empty is null":   {in: "", expected: nil},
		"blank is null":   {in: "   ", expected: nil},
		"garbage is null": {in: "abc", expected: nil},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := looseInt(tc.in)
			if (got == nil) != (tc.expected == nil) {
				t.Fatalf("looseInt(%q) - expected %v, got %v", tc.in, tc.expected, got)
			}
			if got != nil && *got != *tc.expected {
				t.Errorf("looseInt(%q) - expected %d, got %d", tc.in, *tc.expected, *got)
			}
		})
	}
}

func TestCleanField(t *testing.T) {
	tests := map[string]struct {
		in       string
		expected string
	}{
		"plain":           {in: "hello", expected: "hello"},
		"whitespace":      {in: "  hello  ", expected: "hello"},
		"quoted":          {in: `"hello"`, expected: "hello"},
		"quoted + spaces": {in: ` " 5 " `, expected: "5"},
		"lone quote kept": {in: `"oops`, expected: `"oops`},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := cleanField(tc.in); got != tc.expected {
				t.Errorf("cleanField(%q) - expected %q, got %q", tc.in, tc.expected, got)
			}
		})
	}
}

func TestCsvCell(t *testing.T) {
	tests := map[string]struct {
		in       string
		expected string
	}{
		"plain":          {in: "abc", expected: "abc"},
		"comma":          {in: "a,b", expected: `"a,b"`},
		"quote":          {in: `say "hi"`, expected: `"say ""hi"""`},
		"newline":        {in: "a\nb", expected: "\"a\nb\""},
		"spaces alone":   {in: " abc ", expected: " abc "},
		"empty":          {in: "", expected: ""},
		"numeric-ish":    {in: "007", expected: "007"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := csvCell(tc.in); got != tc.expected {
				t.Errorf("csvCell(%q) - expected %q, got %q", tc.in, tc.expected, got)
			}
		})
	}
}

func TestReadTableDelimiterFromHeader(t *testing.T) {
	tabbed := "week\tname\n1\tAlice\n"
	rows := readTable(tabbed, true)
	if len(rows) != 2 || rows[1][1] != "Alice" {
		t.Errorf("tab-delimited table not parsed - actual: %v", rows)
	}

	// Blank lines and mixed line endings are dropped/normalized.
	messy := "week,name\r\n\r\n1,Alice\r2,Bob\n\n"
	rows = readTable(messy, true)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d: %v", len(rows), rows)
	}
	if rows[2][1] != "Bob" {
		t.Errorf("expected Bob in last row - actual: %v", rows[2])
	}
}

func TestReadTableQuoteTrimModes(t *testing.T) {
	// A cell whose content is itself quote-wrapped: the CSV layer unwraps
	// the outer doubling, and only the loose mode strips the inner pair.
	in := "note\n\"\"\"double hill\"\"\"\n"

	rows := readTable(in, false)
	if len(rows) != 2 || rows[1][0] != `"double hill"` {
		t.Errorf("positional mode should keep inner quotes - actual: %v", rows)
	}

	rows = readTable(in, true)
	if len(rows) != 2 || rows[1][0] != "double hill" {
		t.Errorf("loose mode should strip inner quotes - actual: %v", rows)
	}
}

func TestReadTableQuotedMultilineField(t *testing.T) {
	in := "note,week\n\"line one\n\nline two\",3\n"

	rows := readTable(in, false)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d: %v", len(rows), rows)
	}
	if rows[1][0] != "line one\n\nline two" {
		t.Errorf("blank line inside a quoted field was lost - actual: %q", rows[1][0])
	}
	if rows[1][1] != "3" {
		t.Errorf("expected week 3 - actual: %v", rows[1])
	}
}

func intp(v int) *int {
	return &v
}
