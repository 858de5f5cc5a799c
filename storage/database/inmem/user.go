package inmemdb

import (
	"context"

	"github.com/erlanggafajar/nilai-ict/core/user"
)

type userRepository struct {
	db *userTable
}

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db.user}
}

func (repo *userRepository) GetUserByUsername(_ context.Context, username string) (user.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, usr := range repo.db.table {
		if usr.Username == username {
			return *usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) CountUsers(_ context.Context) (int, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return len(repo.db.table), nil
}

// CreateUser checks uniqueness under the write lock so concurrent same-name
// registrations cannot both succeed.
func (repo *userRepository) CreateUser(_ context.Context, usr user.User) (user.User, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, u := range repo.db.table {
		if u.Username == usr.Username {
			return user.User{}, user.ErrUsernameExists
		}
	}

	repo.db.pk++
	usr.ID = repo.db.pk
	repo.db.table[usr.ID] = &usr
	return usr, nil
}
