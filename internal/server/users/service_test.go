package users

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type failingIssuer struct{ err error }

func (f failingIssuer) IssueToken(string) (string, error) { return "", f.err }

type recordingIssuer struct{ got []string }

func (r *recordingIssuer) IssueToken(username string) (string, error) {
	r.got = append(r.got, username)
	return "token-for-" + username, nil
}

func newAuthenticator(t *testing.T) (*Authenticator, *credentials.Store) {
	t.Helper()
	store := credentials.NewStore()
	return NewAuthenticator(store, auth.PlaceholderIssuer{}, logging.Nop{}), store
}

func TestRegister_MissingUser(t *testing.T) {
	a, store := newAuthenticator(t)

	err := a.Register(context.Background(), nil)
	require.ErrorIs(t, err, common.ErrUserRequired)
	assert.Zero(t, store.Len())
}

func TestRegister_UsernameTaken(t *testing.T) {
	a, store := newAuthenticator(t)
	ctx := context.Background()

	require.NoError(t, a.Register(ctx, &User{Username: "alice", Secret: "h1"}))
	err := a.Register(ctx, &User{Username: "alice", Secret: "h2"})
	require.ErrorIs(t, err, common.ErrUsernameTaken)

	secret, ok := store.Lookup("alice")
	require.True(t, ok)
	assert.Equal(t, "h1", secret)
	assert.Equal(t, 1, store.Len())
}

func TestLogin_MissingUser(t *testing.T) {
	a, _ := newAuthenticator(t)

	_, err := a.Login(context.Background(), nil)
	require.ErrorIs(t, err, common.ErrUserRequired)
}

func TestLogin_RoundTrip(t *testing.T) {
	a, _ := newAuthenticator(t)
	ctx := context.Background()

	require.NoError(t, a.Register(ctx, &User{Username: "alice", Secret: "h1"}))

	token, err := a.Login(ctx, &User{Username: "alice", Secret: "h1"})
	require.NoError(t, err)
	assert.Equal(t, common.PlaceholderToken, token)
}

func TestLogin_UnknownUserAndWrongSecretIndistinguishable(t *testing.T) {
	a, _ := newAuthenticator(t)
	ctx := context.Background()

	require.NoError(t, a.Register(ctx, &User{Username: "alice", Secret: "h1"}))

	tokenWrong, errWrong := a.Login(ctx, &User{Username: "alice", Secret: "h2"})
	tokenUnknown, errUnknown := a.Login(ctx, &User{Username: "bob", Secret: "h1"})

	require.ErrorIs(t, errWrong, common.ErrInvalidCredentials)
	require.ErrorIs(t, errUnknown, common.ErrInvalidCredentials)
	assert.Equal(t, errWrong.Error(), errUnknown.Error())
	assert.Empty(t, tokenWrong)
	assert.Empty(t, tokenUnknown)
}

func TestLogin_DoesNotMutateStore(t *testing.T) {
	a, store := newAuthenticator(t)
	ctx := context.Background()

	_, _ = a.Login(ctx, &User{Username: "ghost", Secret: "x"})
	assert.Zero(t, store.Len())
}

func TestLogin_IssuerReceivesUsername(t *testing.T) {
	store := credentials.NewStore()
	issuer := &recordingIssuer{}
	a := NewAuthenticator(store, issuer, logging.Nop{})
	ctx := context.Background()

	require.NoError(t, a.Register(ctx, &User{Username: "alice", Secret: "h1"}))
	token, err := a.Login(ctx, &User{Username: "alice", Secret: "h1"})
	require.NoError(t, err)

	assert.Equal(t, "token-for-alice", token)
	assert.Equal(t, []string{"alice"}, issuer.got)
}

func TestLogin_IssuerFailureIsInternal(t *testing.T) {
	store := credentials.NewStore()
	a := NewAuthenticator(store, failingIssuer{err: errors.New("hsm offline")}, logging.Nop{})
	ctx := context.Background()

	require.NoError(t, a.Register(ctx, &User{Username: "alice", Secret: "h1"}))
	_, err := a.Login(ctx, &User{Username: "alice", Secret: "h1"})
	require.ErrorIs(t, err, common.ErrorInternal)
	assert.NotErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestScenario_AliceAndBob(t *testing.T) {
	a, _ := newAuthenticator(t)
	ctx := context.Background()

	require.NoError(t, a.Register(ctx, &User{Username: "alice", Secret: "h1"}))
	require.ErrorIs(t, a.Register(ctx, &User{Username: "alice", Secret: "h2"}), common.ErrUsernameTaken)

	token, err := a.Login(ctx, &User{Username: "alice", Secret: "h1"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = a.Login(ctx, &User{Username: "alice", Secret: "h2"})
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, err = a.Login(ctx, &User{Username: "bob", Secret: "x"})
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestRegister_ConcurrentSameUsername(t *testing.T) {
	const n = 50
	a, store := newAuthenticator(t)
	ctx := context.Background()

	results := make([]error, n)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			results[i] = a.Register(ctx, &User{Username: "alice", Secret: fmt.Sprintf("h%d", i)})
			return nil
		})
	}
	require.NoError(t, g.Wait())

	var ok, taken int
	winner := -1
	for i, err := range results {
		switch {
		case err == nil:
			ok++
			winner = i
		case errors.Is(err, common.ErrUsernameTaken):
			taken++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, taken)

	// The winning secret is the one stored.
	secret, found := store.Lookup("alice")
	require.True(t, found)
	assert.Equal(t, fmt.Sprintf("h%d", winner), secret)
}
