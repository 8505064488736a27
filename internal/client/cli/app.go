// Package cli implements the interactive authgate command line client.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/authgate/internal/client/api"
	"github.com/dmitrijs2005/authgate/internal/client/config"
)

type App struct {
	config       *config.Config
	api          *api.Client
	reader       *bufio.Reader
	accessToken  string
	refreshToken string
	email        string
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerURL, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.accessToken != ""
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.email
	}
	return "not logged in"
}

func (a *App) Run(ctx context.Context) {
	printlnFn("authgate CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) Register(ctx context.Context) error {

	username, err := GetSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	user, err := a.api.Register(ctx, username, email, password)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Registered %s (%s)\n", user.Username, user.Email)
	return nil
}

func (a *App) Login(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	tokens, err := a.api.Login(ctx, email, password)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.accessToken = tokens.AccessToken
	a.refreshToken = tokens.RefreshToken
	a.email = tokens.User.Email

	fmt.Println("Success!")
	return nil
}

// Refresh exchanges the stored refresh token for a new access token.
func (a *App) Refresh(ctx context.Context) error {

	if a.refreshToken == "" {
		fmt.Println("Not logged in")
		return nil
	}

	access, err := a.api.Refresh(ctx, a.refreshToken)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.accessToken = access
	fmt.Println("Access token refreshed")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {

	user, err := a.api.Me(ctx, a.accessToken)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("%s (%s), registered %s\n", user.Username, user.Email,
		user.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func (a *App) Users(ctx context.Context) error {

	users, err := a.api.Users(ctx, a.accessToken)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	for _, u := range users {
		fmt.Printf("%s  %s (%s)\n", u.ID, u.Username, u.Email)
	}
	fmt.Printf("%d user(s)\n", len(users))
	return nil
}

func (a *App) Logout(ctx context.Context) error {

	if err := a.api.Logout(ctx, a.accessToken); err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.accessToken = ""
	a.refreshToken = ""
	a.email = ""

	fmt.Println("Logged out")
	return nil
}
