package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/common"
)

var ErrUnknownCommand = errors.New("unknown command")

type App struct {
	config  *config.Config
	client  client.Client
	reader  *bufio.Reader
	stdinFd int
	out     io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &App{
		config:  c,
		client:  apiClient,
		reader:  bufio.NewReader(os.Stdin),
		stdinFd: int(os.Stdin.Fd()),
		out:     os.Stdout,
	}, nil
}

// Run executes the command named by args[0] and closes the connection.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.client.Close()

	if len(args) == 0 {
		a.usage()
		return ErrUnknownCommand
	}

	var err error
	switch args[0] {
	case "register":
		err = a.Register(ctx)
	case "login":
		err = a.Login(ctx)
	case "help":
		a.usage()
		return nil
	default:
		fmt.Fprintln(a.out, "Unknown command:", args[0])
		a.usage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	if err != nil {
		fmt.Fprintln(a.out, describe(err))
	}
	return err
}

func (a *App) usage() {
	fmt.Fprintln(a.out, "Available commands: register, login")
}

func describe(err error) string {
	switch {
	case errors.Is(err, common.ErrUsernameTaken):
		return "That username is already taken."
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Username or password is incorrect."
	case errors.Is(err, client.ErrUnavailable):
		return "Server is unavailable, try again later."
	case errors.Is(err, client.ErrInvalidRequest):
		return "Request rejected: " + err.Error()
	default:
		return "Error: " + err.Error()
	}
}
