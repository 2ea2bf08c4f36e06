package client

import "context"

type Client interface {
	Close() error
	Register(ctx context.Context, username string, secret string) error
	Login(ctx context.Context, username string, secret string) (string, error)
}
