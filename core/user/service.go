package user

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/masterly/core"
	"github.com/trezcool/masterly/core/listing"
)

var ErrNotFound = errors.New("user not found")

type (
	Repository interface {
		// QueryAllUsers returns every user in display order.
		QueryAllUsers(ctx context.Context) ([]User, error)
		GetUser(ctx context.Context, id int) (User, error)
		GetUserByEmail(ctx context.Context, email string) (User, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Query applies filter to all users, keeping their order.
func (svc *Service) Query(ctx context.Context, filter QueryFilter) (listing.Page[User], error) {
	users, err := svc.repo.QueryAllUsers(ctx)
	if err != nil {
		return listing.Page[User]{}, errors.Wrap(err, "querying users")
	}
	filter.Clean()
	return listing.NewPage(listing.Filter(users, filter.Spec()), TotalLabel), nil
}

// Get returns the user identified by id, or ErrNotFound.
func (svc *Service) Get(ctx context.Context, id int) (User, error) {
	return svc.repo.GetUser(ctx, id)
}

func (svc *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	return svc.repo.GetUserByEmail(ctx, core.CleanString(email, true /* lower */))
}
