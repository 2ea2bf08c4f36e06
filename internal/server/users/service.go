// Package users implements the register and login operations against the
// shared credential store.
package users

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/credentials"
)

// Authenticator owns a reference to the process-wide credential store and
// the token issuer. It is safe for concurrent use.
type Authenticator struct {
	store  *credentials.Store
	issuer auth.TokenIssuer
	logger logging.Logger
}

func NewAuthenticator(store *credentials.Store, issuer auth.TokenIssuer, l logging.Logger) *Authenticator {
	return &Authenticator{
		store:  store,
		issuer: issuer,
		logger: l.With("module", "authenticator"),
	}
}

// Register stores the user's secret under its username.
//
// It returns common.ErrUserRequired when user is nil and
// common.ErrUsernameTaken when the username is already registered. The store
// is left untouched on both paths.
func (a *Authenticator) Register(ctx context.Context, user *User) error {
	if user == nil {
		return common.ErrUserRequired
	}

	log := logging.FromContext(ctx, a.logger)

	if !a.store.InsertIfAbsent(user.Username, user.Secret) {
		log.Info(ctx, "username taken", "username", user.Username)
		return common.ErrUsernameTaken
	}

	log.Info(ctx, "registered", "username", user.Username)
	return nil
}

// Login checks the presented secret against the stored one and returns a
// session token on a match.
//
// An unknown username and a wrong secret both yield
// common.ErrInvalidCredentials so the caller cannot probe for accounts.
func (a *Authenticator) Login(ctx context.Context, user *User) (string, error) {
	if user == nil {
		return "", common.ErrUserRequired
	}

	log := logging.FromContext(ctx, a.logger)

	stored, ok := a.store.Lookup(user.Username)
	if !ok || !checkSecret(stored, user.Secret) {
		log.Info(ctx, "login rejected", "username", user.Username)
		return "", common.ErrInvalidCredentials
	}

	token, err := a.issuer.IssueToken(user.Username)
	if err != nil {
		log.Error(ctx, "token issue failed", "username", user.Username, "error", err)
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	log.Info(ctx, "logged in", "username", user.Username)
	return token, nil
}

func checkSecret(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
