// Package seed carries the bundled league dataset used to populate an empty
// ledger on first run.
package seed

import (
	"bytes"
	_ "embed"
	"io"
)

//go:embed matches.csv
var matchesCSV []byte

// Matches returns a fresh reader over the bundled match schedule.
func Matches() io.Reader {
	return bytes.NewReader(matchesCSV)
}
