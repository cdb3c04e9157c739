package mockdb

import (
	"context"
	"strings"

	"github.com/trezcool/masterly/core/user"
)

type userRepository struct {
	db *userTable
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db.user}
}

func (repo *userRepository) QueryAllUsers(ctx context.Context) ([]user.User, error) {
	if err := repo.db.check(ctx); err != nil {
		return nil, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()
	return cloneRows(repo.db.rows), nil
}

func (repo *userRepository) GetUser(ctx context.Context, id int) (user.User, error) {
	if err := repo.db.check(ctx); err != nil {
		return user.User{}, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, usr := range repo.db.rows {
		if usr.ID == id {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	if err := repo.db.check(ctx); err != nil {
		return user.User{}, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, usr := range repo.db.rows {
		if strings.EqualFold(usr.Email, email) {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}
