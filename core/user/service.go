package user

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/erlanggafajar/nilai-ict/core"
)

var (
	// errors
	ErrNotFound       = errors.New("account not found")
	ErrUsernameExists = errors.New("an account with this username already exists")
)

type (
	// Repository is the credential store contract. CreateUser must enforce
	// username uniqueness atomically and return ErrUsernameExists on collision.
	Repository interface {
		GetUserByUsername(ctx context.Context, username string) (User, error)
		CountUsers(ctx context.Context) (int, error)
		CreateUser(ctx context.Context, usr User) (User, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates an account from ru. The first account ever registered
// becomes admin; every subsequent registration defaults to viewer.
// Registration does not authenticate: callers must still log in afterwards.
func (svc *Service) Register(ctx context.Context, ru RegisterUser) (User, error) {
	role := RoleViewer
	count, err := svc.repo.CountUsers(ctx)
	if err != nil {
		return User{}, errors.Wrap(err, "counting accounts")
	}
	if count == 0 {
		role = RoleAdmin
	}
	return svc.create(ctx, ru, role)
}

// CreateAdmin creates an account with the admin role regardless of how many
// accounts exist. Only the admin CLI grants admin explicitly; the public
// registration path always derives the role.
func (svc *Service) CreateAdmin(ctx context.Context, ru RegisterUser) (User, error) {
	return svc.create(ctx, ru, RoleAdmin)
}

func (svc *Service) create(ctx context.Context, ru RegisterUser, role string) (User, error) {
	now := time.Now().UTC()
	usr := User{
		Username:  ru.Username,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := usr.SetPassword(ru.Password); err != nil {
		return User{}, errors.Wrap(err, "hashing password")
	}

	usr, err := svc.repo.CreateUser(ctx, usr)
	if err != nil {
		if errors.Cause(err) == ErrUsernameExists {
			return User{}, core.NewValidationError(err, core.FieldError{Field: "username", Error: ErrUsernameExists.Error()})
		}
		return User{}, errors.Wrap(err, "creating account")
	}
	return usr, nil
}

func (svc *Service) GetByUsername(ctx context.Context, uname string) (User, error) {
	return svc.repo.GetUserByUsername(ctx, core.CleanString(uname, true /* lower */))
}

func (svc *Service) Count(ctx context.Context) (int, error) {
	return svc.repo.CountUsers(ctx)
}
