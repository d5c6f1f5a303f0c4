package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/footworks/footyscope/authapi"
	"github.com/footworks/footyscope/platforms/news"
	"github.com/footworks/footyscope/platforms/sportsdata"
	"github.com/footworks/footyscope/session"
	"github.com/footworks/footyscope/storage"
	"github.com/footworks/footyscope/store"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatal().Err(err).Msg("error loading .env file")
	}

	dsn := os.Getenv("STORAGE_PATH")
	if dsn == "" {
		dsn = "file:./footyscope.db"
	}

	lps, err := storage.NewSQLStore(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open local storage")
	}
	defer lps.Close()

	clk := clock.New()

	sportsClient, err := sportsdata.New()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating sportsdata client")
	}

	authClient, err := authapi.New()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating auth client")
	}

	newsClient, err := news.New(os.Getenv("NEWS_API_KEY"), clk, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating news client")
	}

	st := store.New(store.FootyScopeConfig(), store.Deps{
		Clock:  clk,
		Log:    log,
		LPS:    lps,
		Auth:   authClient,
		Sports: sportsClient,
		News:   newsClient,
	})

	ui := newUI(st)
	gate := session.New(st, session.GraphFunc(ui.runAuthScreens), session.GraphFunc(ui.runMainScreens), log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	gate.Run(ctx)
	st.Flush()
}
