package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"

	"github.com/coach77777/straight-pool-league/controller"
	"github.com/coach77777/straight-pool-league/db"
	"github.com/coach77777/straight-pool-league/remotecsv"
	"github.com/coach77777/straight-pool-league/seed"
	"github.com/coach77777/straight-pool-league/web"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	connString := os.Getenv("POSTGRES_CONN_STR")

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	adminUser := os.Getenv("ADMIN_USER")
	adminPass := os.Getenv("ADMIN_PASS")
	if adminUser == "" || adminPass == "" {
		log.Fatalf("ADMIN_USER and ADMIN_PASS must be set")
	}

	clock := clock.New()
	db, err := db.New(context.Background(), connString, clock)
	if err != nil {
		log.Fatalf("cannot connect to DB: %v", err)
	}

	remote, err := remotecsv.New(dataDir)
	if err != nil {
		log.Fatalf("error creating remote csv client: %v", err)
	}

	ctrl, err := controller.New(clock, db, remote)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	// Populate an empty ledger from the bundled schedule. A no-op on every
	// run after the first.
	if err := ctrl.EnsureSeeded(context.Background(), seed.Matches()); err != nil {
		log.Fatalf("error seeding matches: %v", err)
	}

	server, err := web.NewServer(portNum, ctrl, adminUser, adminPass)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Setup a job that re-downloads the published CSV files every 24-hours
	wg.Add(1)
	go ctrl.RunPeriodicRemoteRefresh(24*time.Hour, shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
