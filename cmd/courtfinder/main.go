package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/footworks/footyscope/authapi"
	"github.com/footworks/footyscope/platforms/places"
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
		dsn = "file:./courtfinder.db"
	}

	lps, err := storage.NewSQLStore(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open local storage")
	}
	defer lps.Close()

	authClient, err := authapi.New()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating auth client")
	}

	placesClient, err := places.New(os.Getenv("PLACES_API_KEY"), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating places client")
	}

	st := store.New(store.CourtFinderConfig(), store.Deps{
		Clock:  clock.New(),
		Log:    log,
		LPS:    lps,
		Auth:   authClient,
		Places: placesClient,
	})

	ui := newUI(st)
	gate := session.New(st, session.GraphFunc(ui.runAuthScreens), session.GraphFunc(ui.runMainScreens), log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	gate.Run(ctx)
	st.Flush()
}
