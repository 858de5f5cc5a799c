package auth

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erlanggafajar/nilai-ict/core"
	"github.com/erlanggafajar/nilai-ict/core/user"
	inmemdb "github.com/erlanggafajar/nilai-ict/storage/database/inmem"
)

type testLogger struct{}

func (testLogger) Debug(string, ...interface{}) {}
func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}
func (testLogger) Fatal(string, ...interface{}) {}

// brokenRepository simulates an unreachable credential store.
type brokenRepository struct{}

func (brokenRepository) GetUserByUsername(context.Context, string) (user.User, error) {
	return user.User{}, errors.New("dial tcp 10.0.0.5:5432: connection refused")
}
func (brokenRepository) CountUsers(context.Context) (int, error) {
	return 0, errors.New("dial tcp 10.0.0.5:5432: connection refused")
}
func (brokenRepository) CreateUser(context.Context, user.User) (user.User, error) {
	return user.User{}, errors.New("dial tcp 10.0.0.5:5432: connection refused")
}

func setup(t *testing.T) *Authenticator {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	svc := user.NewService(inmemdb.NewUserRepository(db))
	return newTestAuthenticator(svc)
}

func newTestAuthenticator(svc *user.Service) *Authenticator {
	conf := &core.Config{Database: core.DatabaseConfig{Timeout: time.Second}}
	return NewAuthenticator(svc, testLogger{}, conf)
}

func register(t *testing.T, authn *Authenticator, uname, pwd string) user.User {
	usr, err := authn.Register(context.Background(), user.RegisterUser{
		Username:        uname,
		Password:        pwd,
		PasswordConfirm: pwd,
	})
	if err != nil {
		t.Fatalf("Register(%q) failed: %v", uname, err)
	}
	return usr
}

func TestAuthenticator_scenario(t *testing.T) {
	authn := setup(t)
	ctx := context.Background()

	// empty store: first registration becomes admin, second viewer
	alice := register(t, authn, "alice", "pw1")
	assert.Equal(t, user.RoleAdmin, alice.Role)
	bob := register(t, authn, "bob", "pw2")
	assert.Equal(t, user.RoleViewer, bob.Role)

	// registration does not authenticate; an explicit login is required
	var sess Session
	assert.False(t, sess.IsAuthenticated())

	_, err := authn.Login(ctx, &sess, "alice", "pw1")
	require.NoError(t, err)
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, "alice", sess.Username())
	assert.Equal(t, user.RoleAdmin, sess.Role())

	sess.Logout()

	_, err = authn.Login(ctx, &sess, "bob", "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)
	assert.False(t, sess.IsAuthenticated())

	_, err = authn.Login(ctx, &sess, "bob", "pw2")
	require.NoError(t, err)
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, "bob", sess.Username())
	assert.Equal(t, user.RoleViewer, sess.Role())
}

func TestAuthenticator_Login_invalidCredentialsIndistinguishable(t *testing.T) {
	authn := setup(t)
	ctx := context.Background()

	register(t, authn, "alice", "pw1")

	var sess Session
	_, unknownUserErr := authn.Login(ctx, &sess, "nobody", "whatever")
	_, wrongPwdErr := authn.Login(ctx, &sess, "alice", "wrong")

	// unknown username and wrong password yield the exact same error
	assert.Equal(t, ErrInvalidCredentials, unknownUserErr)
	assert.Equal(t, ErrInvalidCredentials, wrongPwdErr)
	assert.False(t, sess.IsAuthenticated())
}

func TestAuthenticator_Login_normalizesUsername(t *testing.T) {
	authn := setup(t)

	register(t, authn, "alice", "pw1")

	var sess Session
	_, err := authn.Login(context.Background(), &sess, "  ALICE ", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "alice", sess.Username())
}

func TestAuthenticator_Login_missingCredentials(t *testing.T) {
	// a broken store proves validation fires before any store call
	svc := user.NewService(brokenRepository{})
	authn := newTestAuthenticator(svc)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "no username", username: "", password: "pw"},
		{name: "no password", username: "alice", password: ""},
		{name: "neither", username: "", password: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sess Session
			_, err := authn.Login(context.Background(), &sess, tt.username, tt.password)
			var vErr *core.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.False(t, sess.IsAuthenticated())
		})
	}
}

func TestAuthenticator_storeFailures(t *testing.T) {
	svc := user.NewService(brokenRepository{})
	authn := newTestAuthenticator(svc)
	ctx := context.Background()

	var sess Session
	_, err := authn.Login(ctx, &sess, "alice", "pw1")
	assert.Equal(t, ErrServiceUnavailable, err)
	assert.False(t, sess.IsAuthenticated())
	// connection details must not leak to the caller
	assert.NotContains(t, err.Error(), "10.0.0.5")

	_, err = authn.Register(ctx, user.RegisterUser{Username: "alice", Password: "pw1", PasswordConfirm: "pw1"})
	assert.Equal(t, ErrServiceUnavailable, err)
	assert.NotContains(t, err.Error(), "5432")
}

func TestAuthenticator_Register_duplicateStaysAnonymous(t *testing.T) {
	authn := setup(t)
	ctx := context.Background()

	register(t, authn, "alice", "pw1")

	_, err := authn.Register(ctx, user.RegisterUser{Username: "alice", Password: "other", PasswordConfirm: "other"})
	var vErr *core.ValidationError
	require.ErrorAs(t, err, &vErr)

	// original credentials still work
	var sess Session
	_, err = authn.Login(ctx, &sess, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, sess.Role())
}
