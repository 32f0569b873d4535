// Package csvio reads and writes the league's CSV formats. Parsing is
// deliberately forgiving: these files are hand-edited in spreadsheets, so a
// malformed row is skipped rather than failing the file, and a file missing
// its required header columns parses to zero rows.
package csvio

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
)

// readTable normalizes line endings, fixes the delimiter from the header
// line (tab if present, comma otherwise) and returns cleaned records. Blank
// lines between records are ignored, quoted fields may span lines, and rows
// the CSV reader cannot make sense of are skipped. trimQuotes additionally
// strips one pair of surrounding double quotes per field; that belongs to
// the loose hand-edited formats (players, schedule) only. The positional
// ledger format trims whitespace alone, so note content that is itself
// quote-wrapped survives an export/import cycle.
func readTable(text string, trimQuotes bool) [][]string {
	norm := strings.ReplaceAll(text, "\r\n", "\n")
	norm = strings.ReplaceAll(norm, "\r", "\n")

	delim := ','
	for _, ln := range strings.Split(norm, "\n") {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		if strings.ContainsRune(ln, '\t') {
			delim = '\t'
		}
		break
	}

	r := csv.NewReader(strings.NewReader(norm))
	r.Comma = delim
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	rows := make([][]string, 0, 64)
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			// Unparseable row, move on to the next one.
			continue
		}

		empty := true
		for i := range rec {
			if trimQuotes {
				rec[i] = cleanField(rec[i])
			} else {
				rec[i] = strings.TrimSpace(rec[i])
			}
			if rec[i] != "" {
				empty = false
			}
		}
		// Whitespace-only lines parse as a record of empty fields.
		if empty {
			continue
		}
		rows = append(rows, rec)
	}
	return rows
}

// cleanField trims whitespace and a single pair of surrounding double quotes.
// Properly quoted fields were already unwrapped by the CSV reader; this
// catches hand-edited leftovers like ` "5"`.
func cleanField(s string) string {
	t := strings.TrimSpace(s)
	if len(t) >= 2 && t[0] == '"' && t[len(t)-1] == '"' {
		t = strings.TrimSpace(t[1 : len(t)-1])
	}
	return t
}

// column is one logical field of a CSV schema: the header names it answers
// to, and whether the file is useless without it.
type column struct {
	name     string
	aliases  []string
	required bool
}

// resolveColumns maps each schema column to its index in the header row,
// matching aliases case-insensitively. Returns false when any required
// column is missing, in which case the whole file yields no rows.
func resolveColumns(header []string, cols []column) (map[string]int, bool) {
	idx := make(map[string]int, len(cols))
	for _, c := range cols {
		idx[c.name] = -1
		for i, h := range header {
			if containsFold(c.aliases, h) {
				idx[c.name] = i
				break
			}
		}
		if c.required && idx[c.name] < 0 {
			return nil, false
		}
	}
	return idx, true
}

func containsFold(aliases []string, h string) bool {
	for _, a := range aliases {
		if strings.EqualFold(a, h) {
			return true
		}
	}
	return false
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}

// looseInt parses an integer the way the spreadsheets write them: plain int
// first, then a decimal truncated toward zero ("80.0" → 80). Empty means no
// value, not zero.
func looseInt(s string) *int {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	if v, err := strconv.Atoi(t); err == nil {
		return &v
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil {
		v := int(f)
		return &v
	}
	return nil
}

// looseBool accepts the usual spreadsheet spellings of true; everything
// else, including empty, is false.
func looseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "1", "yes", "y":
		return true
	default:
		return false
	}
}

// csvCell quotes a cell only when it has to: embedded comma, quote or line
// break. Quotes inside are doubled.
func csvCell(s string) string {
	needsQuotes := strings.ContainsAny(s, ",\"\n\r")
	if !needsQuotes {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func boolCell(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func writeRow(sb *strings.Builder, cells []string) {
	for i, c := range cells {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(csvCell(c))
	}
	sb.WriteByte('\n')
}
