package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/footworks/footyscope/cli"
	"github.com/footworks/footyscope/store"
)

// ui is the line-oriented stand-in for the app's screens. It only reads
// store state and dispatches thunks; all data shaping lives in the store.
type ui struct {
	st *store.Store
	p  *cli.Prompter
}

func newUI(st *store.Store) *ui {
	return &ui{st: st, p: cli.NewPrompter(os.Stdin)}
}

// runAuthScreens is the unauthenticated graph: login and registration.
func (u *ui) runAuthScreens(ctx context.Context) {
	if cli.AuthScreens(ctx, u.st, "FootyScope", u.p) {
		os.Exit(0)
	}
}

// runMainScreens is the authenticated graph.
func (u *ui) runMainScreens(ctx context.Context) {
	if user := u.st.State().Auth.User(); user != nil {
		fmt.Printf("Welcome, %s!\n", user.DisplayName())
	}
	fmt.Println("commands: leagues, teams <leagueID>, team <id>, players <teamID>, player <id>,")
	fmt.Println("          matches <leagueID>, match <id>, search, news, fav <id>, favs, theme, logout, quit")

	for ctx.Err() == nil {
		line, ok := u.p.Prompt("> ")
		if !ok {
			return
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "leagues":
			u.st.FetchLeagues(ctx)
			u.showCatalog(store.ResLeagues)
		case "teams":
			u.st.FetchTeams(ctx, arg)
			u.showCatalog(store.ResTeams)
		case "team":
			u.st.FetchTeamDetails(ctx, arg)
			u.showCatalog(store.ResTeamDetail)
		case "players":
			u.st.FetchPlayers(ctx, arg)
			u.showCatalog(store.ResPlayers)
		case "player":
			u.st.FetchPlayerDetails(ctx, arg)
			u.showCatalog(store.ResPlayerDetail)
		case "matches":
			u.st.FetchNextEvents(ctx, arg)
			u.st.FetchLastEvents(ctx, arg)
			u.showCatalog(store.ResNextEvents)
			u.showCatalog(store.ResLastEvents)
		case "match":
			u.st.FetchEventDetails(ctx, arg)
			u.showCatalog(store.ResEventDetail)
		case "search":
			u.runSearch(ctx)
		case "news":
			u.st.FetchNews(ctx, 10)
			for _, a := range u.st.State().News.Articles {
				fmt.Printf("  %s: %s\n", a.Source, a.Title)
			}
		case "fav":
			u.st.ToggleFavorite(arg)
			if u.st.IsFavorite(arg) {
				fmt.Println("added to favorites")
			} else {
				fmt.Println("removed from favorites")
			}
		case "favs":
			for _, id := range u.st.State().Favorites.IDs {
				fmt.Println(" ", id)
			}
		case "theme":
			u.st.ToggleTheme()
			if u.st.State().Theme.IsDarkMode {
				fmt.Println("dark mode on")
			} else {
				fmt.Println("dark mode off")
			}
		case "logout":
			u.st.Logout()
			return
		case "quit":
			os.Exit(0)
		case "":
		default:
			fmt.Println("unknown command:", cmd)
		}
	}
}

// runSearch loads the player pool once, then filters it locally per line of
// input.
func (u *ui) runSearch(ctx context.Context) {
	fmt.Println("loading player pool...")
	u.st.LoadSearchPool(ctx)
	if st := u.st.State().Catalog.StatusOf(store.ResSearchPool); st.Err != "" {
		fmt.Println("error:", st.Err)
		return
	}
	pool := u.st.State().Catalog.SearchPool
	fmt.Printf("%d players loaded; type to filter, empty line to exit\n", len(pool))

	for ctx.Err() == nil {
		query, ok := u.p.Prompt("search> ")
		if !ok || query == "" {
			return
		}
		for _, p := range store.FilterPlayers(pool, query) {
			mark := " "
			if u.st.IsFavorite(p.ID) {
				mark = "*"
			}
			fmt.Printf(" %s %-8s %-28s %-16s %s\n", mark, p.ID, p.Name, p.Nationality, p.Team)
		}
	}
}

func (u *ui) showCatalog(res store.Resource) {
	c := u.st.State().Catalog
	if st := c.StatusOf(res); st.Err != "" {
		fmt.Println("error:", st.Err)
		return
	}

	switch res {
	case store.ResLeagues:
		for _, l := range c.Leagues {
			fmt.Printf("  %-8s %s\n", l.ID, l.Name)
		}
	case store.ResTeams:
		for _, t := range c.Teams {
			fmt.Printf("  %-8s %-24s %s\n", t.ID, t.Name, t.Stadium)
		}
	case store.ResTeamDetail:
		if c.CurrentTeam == nil {
			fmt.Println("team not found")
			return
		}
		t := c.CurrentTeam
		fmt.Printf("%s (%s, formed %s)\n%s\n", t.Name, t.Country, t.Formed, t.Overview)
	case store.ResPlayers:
		for _, p := range c.Players {
			mark := " "
			if u.st.IsFavorite(p.ID) {
				mark = "*"
			}
			fmt.Printf(" %s %-8s %-28s %s\n", mark, p.ID, p.Name, p.Position)
		}
	case store.ResPlayerDetail:
		if c.CurrentPlayer == nil {
			fmt.Println("player not found")
			return
		}
		p := c.CurrentPlayer
		fmt.Printf("%s: %s, %s (%s)\nborn %s, height %s\n", p.Name, p.Position, p.Team, p.Nationality, p.BirthDate, p.Height)
	case store.ResNextEvents:
		fmt.Println("upcoming:")
		for _, e := range c.NextEvents {
			fmt.Printf("  %-8s %s  %s %s\n", e.ID, e.Date, e.Time, e.Name)
		}
	case store.ResLastEvents:
		fmt.Println("results:")
		for _, e := range c.LastEvents {
			fmt.Printf("  %-8s %s  %s %s-%s %s\n", e.ID, e.Date, e.HomeTeam, e.HomeScore, e.AwayScore, e.AwayTeam)
		}
	case store.ResEventDetail:
		if c.CurrentEvent == nil {
			fmt.Println("match not found")
			return
		}
		e := c.CurrentEvent
		if e.Played() {
			fmt.Printf("%s: %s %s-%s %s (%s, %s)\n", e.League, e.HomeTeam, e.HomeScore, e.AwayScore, e.AwayTeam, e.Date, e.Venue)
		} else {
			fmt.Printf("%s: %s vs %s (%s %s, %s)\n", e.League, e.HomeTeam, e.AwayTeam, e.Date, e.Time, e.Venue)
		}
	}
}
