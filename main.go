package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/mww/roast_reporter/controller"
	"github.com/mww/roast_reporter/email"
	"github.com/mww/roast_reporter/platforms/yahoo"
	"github.com/mww/roast_reporter/scheduler"
	"github.com/mww/roast_reporter/store"
	"github.com/mww/roast_reporter/waiver"
	"github.com/mww/roast_reporter/web"
	"golang.org/x/oauth2"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	clock := clock.New()
	st := newStore()

	seasonStart := scheduler.DefaultSeasonStart
	if s := os.Getenv("SEASON_START"); s != "" {
		seasonStart, err = time.Parse("2006-01-02", s)
		if err != nil {
			log.Fatalf("error parsing SEASON_START: %v", err)
		}
	}
	sched := scheduler.New(clock, st, seasonStart)

	yahooClient, err := yahoo.New()
	if err != nil {
		log.Fatalf("error creating yahoo client: %v", err)
	}

	mailer, err := email.New(email.Config{
		Host: os.Getenv("SMTP_HOST"),
		Port: envInt("SMTP_PORT", 587),
		User: os.Getenv("SMTP_USER"),
		Pass: os.Getenv("SMTP_PASS"),
		From: os.Getenv("EMAIL_FROM"),
	})
	if err != nil {
		log.Fatalf("error creating email sender: %v", err)
	}

	season := strconv.Itoa(seasonStart.Year())
	ctrl, err := controller.New(clock, sched, yahooClient, newYahooHTTPClient(), mailer, waiver.StaticCandidates, season)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(portNum, ctrl, os.Getenv("CRON_SECRET"))
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

	// Run the notification jobs on their weekly timers.
	wg.Add(1)
	go ctrl.RunPeriodicNotificationJobs(shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

// newStore prefers postgres when POSTGRES_CONN_STR is set; otherwise
// everything lives in memory and is lost on restart.
func newStore() store.Store {
	connString := os.Getenv("POSTGRES_CONN_STR")
	if connString == "" {
		log.Printf("POSTGRES_CONN_STR not set, using in-memory store")
		return store.NewMemory()
	}

	st, err := store.New(context.Background(), connString)
	if err != nil {
		log.Fatalf("cannot connect to DB: %v", err)
	}
	return st
}

// newYahooHTTPClient builds an http client that attaches and refreshes
// the Yahoo OAuth token. Without credentials it falls back to a plain
// client, which Yahoo will reject; useful only for local poking.
func newYahooHTTPClient() *http.Client {
	clientID := os.Getenv("YAHOO_CLIENT_ID")
	clientSecret := os.Getenv("YAHOO_CLIENT_SECRET")
	refreshToken := os.Getenv("YAHOO_REFRESH_TOKEN")

	if clientID == "" || clientSecret == "" || refreshToken == "" {
		log.Printf("yahoo oauth credentials not set, using unauthenticated client")
		return http.DefaultClient
	}

	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://api.login.yahoo.com/oauth2/request_auth",
			TokenURL: "https://api.login.yahoo.com/oauth2/get_token",
		},
	}
	token := &oauth2.Token{RefreshToken: refreshToken}
	return config.Client(context.Background(), token)
}

func envInt(name string, def int) int {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("error parsing %s: %v", name, err)
	}
	return n
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
