package auth

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/erlanggafajar/nilai-ict/core"
	"github.com/erlanggafajar/nilai-ict/core/user"
)

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong passwords;
	// callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrServiceUnavailable is surfaced when the credential store is
	// unreachable or timed out. Connection details stay out of the message.
	ErrServiceUnavailable = errors.New("service unavailable, please try again later")

	errMissingCredentials = errors.New("username and password are required")
)

// unknownUserHash keeps a failed lookup as expensive as a wrong password.
var unknownUserHash = user.User{PasswordHash: []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")}

const defaultTimeout = 10 * time.Second

// Authenticator verifies credentials against the credential store and owns the
// Anonymous -> Authenticated transition of a Session.
type Authenticator struct {
	users   *user.Service
	logger  core.Logger
	timeout time.Duration
}

func NewAuthenticator(users *user.Service, logger core.Logger, conf *core.Config) *Authenticator {
	timeout := conf.Database.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Authenticator{
		users:   users,
		logger:  logger,
		timeout: timeout,
	}
}

// Login authenticates (username, password) and, on success, promotes sess and
// returns the matched account. On any failure sess stays anonymous. Store
// errors are logged with their cause and reported to the caller as
// ErrServiceUnavailable.
func (a *Authenticator) Login(ctx context.Context, sess *Session, username, password string) (user.User, error) {
	username = core.CleanString(username, true /* lower */)
	if username == "" || password == "" {
		return user.User{}, core.NewValidationError(errMissingCredentials)
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	usr, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Cause(err) == user.ErrNotFound {
			_ = unknownUserHash.CheckPassword(password)
			return user.User{}, ErrInvalidCredentials
		}
		a.logger.Error("credential store lookup failed", errors.Wrap(err, "finding account by username"))
		return user.User{}, ErrServiceUnavailable
	}

	if err := usr.CheckPassword(password); err != nil {
		return user.User{}, ErrInvalidCredentials
	}

	sess.promote(usr.Username, usr.Role)
	return usr, nil
}

// Register creates a new account. It does not authenticate the caller:
// a successful registration must be followed by an explicit Login.
func (a *Authenticator) Register(ctx context.Context, ru user.RegisterUser) (user.User, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	usr, err := a.users.Register(ctx, ru)
	if err != nil {
		switch errors.Cause(err).(type) {
		case *core.ValidationError:
			return user.User{}, err
		}
		a.logger.Error("credential store insert failed", errors.Wrap(err, "registering account"))
		return user.User{}, ErrServiceUnavailable
	}
	return usr, nil
}

// Logout transitions sess back to anonymous. Idempotent.
func (a *Authenticator) Logout(sess *Session) {
	sess.Logout()
}
