package testutils

import (
	"context"
	"log"
	"time"

	"github.com/itbasis/go-clock"

	"github.com/coach77777/straight-pool-league/containers"
	"github.com/coach77777/straight-pool-league/db"
	"github.com/coach77777/straight-pool-league/model"
)

var (
	MikaImmonen = model.Player{
		Roster: 11,
		Name:   "Mika Immonen",
		Phone:  "555-0111",
		Email:  "mika@example.com",
	}
	EarlStrickland = model.Player{
		Roster: 24,
		Name:   "Earl Strickland",
		Phone:  "555-0124",
		Email:  "earl@example.com",
	}
	ThorstenHohmann = model.Player{
		Roster: 3,
		Name:   "Thorsten Hohmann",
		Phone:  "555-0103",
		Email:  "thorsten@example.com",
	}
	JohnSchmidt = model.Player{
		Roster: 7,
		Name:   "John Schmidt",
		Phone:  "555-0107",
		Email:  "john@example.com",
	}
	ByeSlot = model.Player{
		Roster: 99,
		Name:   "BYE",
		Bye:    true,
	}
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	if err := InsertTestPlayers(db); err != nil {
		log.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

func InsertTestPlayers(db db.DB) error {
	players := []model.Player{
		MikaImmonen,
		EarlStrickland,
		ThorstenHohmann,
		JohnSchmidt,
		ByeSlot,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return db.UpsertPlayers(ctx, players)
}
