package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/cryptox"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// readCredentials prompts for a username and password and returns the
// username with its derived credential secret. The password is wiped before
// returning.
func (a *App) readCredentials(passwordPrompt string) (string, string, error) {
	userName, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return "", "", err
	}

	password, err := getPassword(a.reader, a.stdinFd, passwordPrompt, a.out)
	if err != nil {
		return "", "", err
	}
	defer common.WipeByteArray(password)

	return userName, cryptox.DeriveSecret(userName, password), nil
}

// Register prompts for credentials and creates the account. On success it
// prints "Success!".
func (a *App) Register(ctx context.Context) error {
	userName, secret, err := a.readCredentials("Choose a password")
	if err != nil {
		return err
	}

	if err := a.client.Register(ctx, userName, secret); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Login prompts for credentials and prints the issued session token.
func (a *App) Login(ctx context.Context) error {
	userName, secret, err := a.readCredentials("Enter password")
	if err != nil {
		return err
	}

	token, err := a.client.Login(ctx, userName, secret)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, token)
	return nil
}
