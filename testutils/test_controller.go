package testutils

import (
	"log"
	"os"

	"github.com/itbasis/go-clock"

	"github.com/coach77777/straight-pool-league/remotecsv"
)

// TestController bundles the non-database pieces a controller needs in
// tests: a fake host publishing CSV files and a remote client downloading
// into a throwaway data dir.
type TestController struct {
	Clock   clock.Clock
	Host    *FakeCSVHost
	Remote  remotecsv.Client
	dataDir string
}

func (c *TestController) Close() {
	c.Host.Close()
	os.RemoveAll(c.dataDir)
}

func NewTestController(db *TestDB) *TestController {
	dataDir, err := os.MkdirTemp("", "league-remote-*")
	if err != nil {
		log.Fatalf("error creating temp data dir: %v", err)
	}

	remote, err := remotecsv.New(dataDir)
	if err != nil {
		log.Fatalf("error creating remote csv client: %v", err)
	}

	return &TestController{
		Clock:   db.Clock,
		Host:    NewFakeCSVHost(),
		Remote:  remote,
		dataDir: dataDir,
	}
}
