package controller

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/coach77777/straight-pool-league/seed"
	"github.com/coach77777/straight-pool-league/testutils"
)

// A global testDB instance to use for all of the tests instead of setting up a new one each time.
var testDB *testutils.TestDB

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			if testDB != nil {
				testDB.Shutdown()
			}
			fmt.Printf("panic - %v\n", r)
		}
	}()

	// Setup the global testDB variable
	testDB = testutils.NewTestDB()
	defer testDB.Shutdown()
	code := m.Run()
	os.Exit(code)
}

// Runs the full seed-then-report flow against a real database: populate the
// ledger from the bundled schedule, then check the standings and exports see
// the data.
func TestSeedAndStandingsIntegration(t *testing.T) {
	testCtrl := testutils.NewTestController(testDB)
	defer testCtrl.Close()

	ctrl, err := New(testCtrl.Clock, testDB.DB, testCtrl.Remote)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	ctx := context.Background()
	if err := ctrl.EnsureSeeded(ctx, seed.Matches()); err != nil {
		t.Fatalf("error seeding: %v", err)
	}

	// A second call must be a no-op.
	if err := ctrl.EnsureSeeded(ctx, seed.Matches()); err != nil {
		t.Fatalf("error on repeated seed: %v", err)
	}

	matches, err := ctrl.ListMatches(ctx)
	if err != nil {
		t.Fatalf("error listing matches: %v", err)
	}
	if len(matches) == 0 {
		t.Fatal("expected seeded matches, got none")
	}

	rows, err := ctrl.Standings(ctx)
	if err != nil {
		t.Fatalf("error computing standings: %v", err)
	}
	for _, r := range rows {
		if r.Roster == testutils.ByeSlot.Roster {
			t.Errorf("bye placeholder should not appear in standings")
		}
	}

	out, err := ctrl.ExportMatchesCSV(ctx)
	if err != nil {
		t.Fatalf("error exporting matches: %v", err)
	}
	if len(out) == 0 {
		t.Error("expected a non-empty matches export")
	}
}

func TestImportMatchesFromURLIntegration(t *testing.T) {
	testCtrl := testutils.NewTestController(testDB)
	defer testCtrl.Close()

	ctrl, err := New(testCtrl.Clock, testDB.DB, testCtrl.Remote)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	testCtrl.Host.SetFile("matches.csv",
		"week,dateMmDd,aRoster,bRoster,aScore,bScore,status,note,countsForStandings\n"+
			"401,05-05,11,24,125,90,played,,true\n")

	ctx := context.Background()
	n, err := ctrl.ImportMatchesFromURL(ctx, testCtrl.Host.FileURL("matches.csv"))
	if err != nil {
		t.Fatalf("error importing from url: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 row imported, got %d", n)
	}

	m, err := ctrl.GetMatch(ctx, 401, 24, 11)
	if err != nil {
		t.Fatalf("error fetching imported match: %v", err)
	}
	if m.ARoster != 11 || m.BRoster != 24 {
		t.Errorf("stored orientation should match the import, got %d vs %d", m.ARoster, m.BRoster)
	}

	// A missing file is an import error, not a zero-row import.
	if _, err := ctrl.ImportMatchesFromURL(ctx, testCtrl.Host.FileURL("nope.csv")); err == nil {
		t.Error("expected an error fetching a missing file")
	} else if errors.Is(err, ErrNoRowsImported) {
		t.Errorf("expected a fetch error, got: %v", err)
	}
}
