// Package cli holds the pieces of the line-oriented front-ends that both
// app variants share: line prompting and the sign-in screens.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/footworks/footyscope/store"
)

// Prompter reads one trimmed line of input per prompt.
type Prompter struct {
	in *bufio.Scanner
}

func NewPrompter(r io.Reader) *Prompter {
	return &Prompter{in: bufio.NewScanner(r)}
}

// Prompt prints the label and returns the next input line. ok is false when
// input is exhausted.
func (p *Prompter) Prompt(label string) (string, bool) {
	fmt.Print(label)
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

// AuthScreens runs the sign-in loop against the store's auth slice. It
// returns once a login or registration succeeds, input ends, or ctx is
// cancelled; quit is true when the user asked to leave the app instead.
func AuthScreens(ctx context.Context, st *store.Store, appName string, p *Prompter) (quit bool) {
	fmt.Printf("%s sign in (commands: login, register, quit)\n", appName)
	for ctx.Err() == nil {
		cmd, ok := p.Prompt("auth> ")
		if !ok {
			return false
		}
		switch cmd {
		case "login":
			username, _ := p.Prompt("username: ")
			password, _ := p.Prompt("password: ")
			st.Login(ctx, username, password)
			if err := st.State().Auth.Error; err != "" {
				fmt.Println("error:", err)
			}
			if st.State().Auth.IsAuthenticated {
				return false
			}
		case "register":
			username, _ := p.Prompt("username: ")
			email, _ := p.Prompt("email: ")
			password, _ := p.Prompt("password: ")
			confirm, _ := p.Prompt("confirm password: ")
			st.Register(ctx, username, email, password, confirm)
			if err := st.State().Auth.Error; err != "" {
				fmt.Println("error:", err)
			}
			if st.State().Auth.IsAuthenticated {
				return false
			}
		case "quit":
			return true
		case "":
		default:
			fmt.Println("commands: login, register, quit")
		}
	}
	return false
}
