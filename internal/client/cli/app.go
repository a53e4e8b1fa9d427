// Package cli implements the interactive authctl command loop.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/cctv-platform/authd/internal/client"
	"github.com/cctv-platform/authd/internal/client/config"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

type App struct {
	client       *client.Client
	reader       *bufio.Reader
	userName     string
	refreshToken string
}

func NewApp(c *config.Config) *App {
	return &App{
		client: client.New(c.ServerAddr),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) Run(ctx context.Context) {
	runREPL(ctx, a, bufio.NewScanner(os.Stdin))
}

func (a *App) isSignedIn() bool {
	return a.refreshToken != ""
}

// SignUp prompts for the profile fields and creates an account.
func (a *App) SignUp(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	birthday, err := getSimpleText(a.reader, "Enter birthday (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.client.SignUp(ctx, fullName, birthday, email, userName, password)
	if err != nil {
		return err
	}

	fmt.Printf("Created user %s (%s)\n", res.Username, res.UserID)
	return nil
}

// SignIn prompts for credentials and keeps the refresh token for later
// refresh calls.
func (a *App) SignIn(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.client.SignIn(ctx, userName, password)
	if err != nil {
		return err
	}

	a.userName = res.Username
	a.refreshToken = res.Token

	fmt.Printf("Signed in as %s\n", res.Username)
	return nil
}

// Refresh exchanges the kept refresh token for an access token and prints the
// profile that came with it.
func (a *App) Refresh(ctx context.Context) error {
	if !a.isSignedIn() {
		return fmt.Errorf("sign in first")
	}

	profile, err := a.client.Refresh(ctx, a.refreshToken)
	if err != nil {
		return err
	}

	fmt.Printf("User: %s (%s, role %s)\n", profile.Username, profile.FullName, profile.Role)
	fmt.Printf("Access token: %s\n", profile.Token)
	return nil
}
