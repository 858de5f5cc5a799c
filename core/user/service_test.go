package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erlanggafajar/nilai-ict/core"
	"github.com/erlanggafajar/nilai-ict/core/user"
	inmemdb "github.com/erlanggafajar/nilai-ict/storage/database/inmem"
)

func setup(t *testing.T) (*user.Service, user.Repository) {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	repo := inmemdb.NewUserRepository(db)
	return user.NewService(repo), repo
}

func register(t *testing.T, svc *user.Service, uname, pwd string) user.User {
	usr, err := svc.Register(context.Background(), user.RegisterUser{
		Username:        uname,
		Password:        pwd,
		PasswordConfirm: pwd,
	})
	if err != nil {
		t.Fatalf("Register(%q) failed: %v", uname, err)
	}
	return usr
}

func TestService_Register_bootstrapAdmin(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	// first ever account becomes admin
	alice := register(t, svc, "alice", "pw1")
	assert.Equal(t, user.RoleAdmin, alice.Role)

	// all subsequent registrations default to viewer
	bob := register(t, svc, "bob", "pw2")
	assert.Equal(t, user.RoleViewer, bob.Role)
	carol := register(t, svc, "carol", "pw3")
	assert.Equal(t, user.RoleViewer, carol.Role)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestService_CreateAdmin(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	// admin role is granted explicitly even on a populated store
	register(t, svc, "alice", "pw1")
	register(t, svc, "bob", "pw2")

	carol, err := svc.CreateAdmin(ctx, user.RegisterUser{Username: "carol", Password: "pw3", PasswordConfirm: "pw3"})
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, carol.Role)

	// uniqueness still enforced
	_, err = svc.CreateAdmin(ctx, user.RegisterUser{Username: "alice", Password: "other", PasswordConfirm: "other"})
	var vErr *core.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestService_Register_duplicateUsername(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	register(t, svc, "alice", "pw1")

	_, err := svc.Register(ctx, user.RegisterUser{Username: "alice", Password: "other", PasswordConfirm: "other"})
	require.Error(t, err)

	var vErr *core.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, "username", vErr.Fields[0].Field)

	// still exactly one account for that username
	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestService_Register_storesVerifierNotPlaintext(t *testing.T) {
	svc, _ := setup(t)

	usr := register(t, svc, "alice", "pw1")
	assert.NotContains(t, string(usr.PasswordHash), "pw1")
	assert.NoError(t, usr.CheckPassword("pw1"))
}

func TestService_GetByUsername(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	register(t, svc, "alice", "pw1")

	usr, err := svc.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", usr.Username)

	// lookups are case/space insensitive on the username
	usr, err = svc.GetByUsername(ctx, "  ALICE ")
	require.NoError(t, err)
	assert.Equal(t, "alice", usr.Username)

	_, err = svc.GetByUsername(ctx, "nobody")
	assert.Equal(t, user.ErrNotFound, err)
}
