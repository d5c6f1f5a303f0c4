package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/footworks/footyscope/cli"
	"github.com/footworks/footyscope/model"
	"github.com/footworks/footyscope/store"
)

type ui struct {
	st *store.Store
	p  *cli.Prompter
}

func newUI(st *store.Store) *ui {
	return &ui{st: st, p: cli.NewPrompter(os.Stdin)}
}

func (u *ui) runAuthScreens(ctx context.Context) {
	if cli.AuthScreens(ctx, u.st, "CourtFinder", u.p) {
		os.Exit(0)
	}
}

func (u *ui) runMainScreens(ctx context.Context) {
	if user := u.st.State().Auth.User(); user != nil {
		fmt.Printf("Welcome, %s!\n", user.DisplayName())
	}
	fmt.Println("commands: venues, find <text>, fav <id>, favs, theme, logout, quit")

	for ctx.Err() == nil {
		line, ok := u.p.Prompt("> ")
		if !ok {
			return
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "venues":
			u.st.FetchVenues(ctx)
			u.showVenues(u.st.State().Venues.Items)
		case "find":
			u.showVenues(store.FilterVenues(u.st.State().Venues.Items, arg))
		case "fav":
			u.st.ToggleFavorite(arg)
			if u.st.IsFavorite(arg) {
				fmt.Println("added to favorites")
			} else {
				fmt.Println("removed from favorites")
			}
		case "favs":
			favs := []model.Venue{}
			for _, v := range u.st.State().Venues.Items {
				if u.st.IsFavorite(v.ID) {
					favs = append(favs, v)
				}
			}
			u.showVenues(favs)
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

func (u *ui) showVenues(venues []model.Venue) {
	for _, v := range venues {
		mark := " "
		if u.st.IsFavorite(v.ID) {
			mark = "*"
		}
		open := ""
		if v.OpenNow {
			open = "open now"
		}
		fmt.Printf(" %s %-10s %-32s %-12s %.1f  %s\n", mark, v.ID, v.Name, v.SportType, v.Rating, open)
	}
}
