package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/erlanggafajar/nilai-ict/core/user"
)

// uniqueViolation is the postgres error code raised when the users_username_idx
// unique index rejects an insert; it makes the check-then-insert atomic.
const uniqueViolation = "23505"

type dbUser struct {
	ID           int       `db:"id"`
	Username     string    `db:"username"`
	PasswordHash []byte    `db:"password"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (u dbUser) unpack() user.User {
	return user.User{
		ID:           u.ID,
		Username:     u.Username,
		Role:         u.Role,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt.UTC(),
		UpdatedAt:    u.UpdatedAt.UTC(),
	}
}

type userRepository struct {
	db *sqlx.DB
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{db: db}
}

func (repo userRepository) GetUserByUsername(ctx context.Context, username string) (user.User, error) {
	var u dbUser
	err := repo.db.GetContext(ctx, &u,
		`SELECT id, username, password, role, created_at, updated_at FROM users WHERE username = $1`,
		username,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, errors.Wrap(err, "getting account by username")
	}
	return u.unpack(), nil
}

func (repo userRepository) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := repo.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, errors.Wrap(err, "counting accounts")
	}
	return count, nil
}

func (repo userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	err := repo.db.QueryRowContext(ctx,
		`INSERT INTO users (username, password, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		usr.Username, usr.PasswordHash, usr.Role, usr.CreatedAt, usr.UpdatedAt,
	).Scan(&usr.ID)
	if err != nil {
		if pqErr, ok := errors.Cause(err).(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return user.User{}, user.ErrUsernameExists
		}
		return user.User{}, errors.Wrap(err, "inserting account")
	}
	return usr, nil
}
